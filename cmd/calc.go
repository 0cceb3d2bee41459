package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/cbudget/internal/chart"
	"github.com/theirongolddev/cbudget/internal/cli"
	"github.com/theirongolddev/cbudget/internal/config"
	"github.com/theirongolddev/cbudget/internal/controller"
	"github.com/theirongolddev/cbudget/internal/export"
	"github.com/theirongolddev/cbudget/internal/logging"
	"github.com/theirongolddev/cbudget/internal/model"
	"github.com/theirongolddev/cbudget/internal/store"
	"github.com/theirongolddev/cbudget/internal/tui/theme"
)

var (
	flagIncome   string
	flagGoal     string
	flagExpenses []string
	flagXLSX     string
	flagNoChart  bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run one budget calculation and print the result",
	Example: "  cbudget calc --income 5000 --goal 1000 \\\n" +
		"    --expense Housing=1200 --expense Food=300 --xlsx budget.xlsx",
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&flagIncome, "income", "i", "", "Monthly income")
	calcCmd.Flags().StringVarP(&flagGoal, "goal", "g", "", "Savings goal")
	calcCmd.Flags().StringArrayVarP(&flagExpenses, "expense", "e", nil, "Expense as Category=Amount (repeatable)")
	calcCmd.Flags().StringVar(&flagXLSX, "xlsx", "", "Also write the report to this .xlsx file")
	calcCmd.Flags().BoolVar(&flagNoChart, "no-chart", false, "Skip the terminal pie chart")
	rootCmd.AddCommand(calcCmd)
}

// parseExpenseFlag splits "Category=Amount". The amount is validated later
// with the rest of the input.
func parseExpenseFlag(s string) (model.RowInput, error) {
	name, amount, ok := strings.Cut(s, "=")
	if !ok {
		return model.RowInput{}, fmt.Errorf("expense %q: want Category=Amount", s)
	}
	cat, err := model.ParseCategory(name)
	if err != nil {
		return model.RowInput{}, fmt.Errorf("expense %q: %w", s, err)
	}
	return model.RowInput{Category: cat, Amount: amount}, nil
}

func runCalc(cmd *cobra.Command, _ []string) error {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}
	if err := logging.Console(os.Stderr, logLevel(cfg)); err != nil {
		log.Warn().Err(err).Msg("bad log level, using info")
	}
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("config unreadable, using defaults")
	}

	rows := make([]model.RowInput, 0, len(flagExpenses))
	for _, s := range flagExpenses {
		r, err := parseExpenseFlag(s)
		if err != nil {
			return err
		}
		rows = append(rows, r)
	}

	history, err := store.OpenHistory()
	if err != nil {
		return err
	}
	defer history.Close()

	currency := config.CurrencySymbol(cfg)
	th := theme.ByName(cfg.Appearance.Theme)
	renderer := chart.NewTerminalRenderer(cfg.Appearance.ChartHeight, currency)
	renderer.Palette = th.Palette

	ctrl := controller.New(history, renderer, controller.WithInitialRows(len(rows)))
	ctrl.SetIncome(flagIncome)
	ctrl.SetSavingsGoal(flagGoal)
	for i, r := range rows {
		if err := ctrl.Form().SetCategory(i, r.Category); err != nil {
			return err
		}
		if err := ctrl.Form().SetAmount(i, r.Amount); err != nil {
			return err
		}
	}

	res, calcErr := ctrl.Calculate(cmd.Context())
	notice, _ := ctrl.Notice()

	fmt.Println()
	if calcErr != nil {
		fmt.Println(cli.RenderNotice(notice.Title, notice.Message, cli.ColorRed))
		return calcErr
	}

	fmt.Println(cli.RenderTitle("BUDGET"))
	fmt.Println()
	fmt.Println(cli.RenderNotice(notice.Title, notice.Message, noticeColor(notice.Kind)))
	fmt.Println()
	fmt.Print(cli.RenderTable(summaryTable(res, currency)))
	fmt.Println()
	fmt.Printf("  Goal  %s\n\n", cli.RenderGoalBar(res.ProgressPercent(), 30))

	entries, err := ctrl.History(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Print(cli.RenderTable(historyTable(entries, currency)))

	if !flagNoChart {
		fmt.Println()
		fmt.Println(ctrl.Chart().String())
	}

	if flagXLSX != "" {
		if err := export.WriteFile(flagXLSX, res, entries); err != nil {
			return fmt.Errorf("exporting workbook: %w", err)
		}
		fmt.Printf("\n  Saved workbook to %s\n", flagXLSX)
	}
	return nil
}

func noticeColor(k model.NoticeKind) lipgloss.Color {
	switch k {
	case model.NoticeSuccess:
		return cli.ColorGreen
	case model.NoticeShortfall:
		return cli.ColorOrange
	default:
		return cli.ColorRed
	}
}

func summaryTable(res model.BudgetResult, currency string) cli.Table {
	rows := [][]string{
		{"Income", cli.FormatMoney(res.Income, currency)},
		{"---"},
	}
	for _, e := range res.Expenses {
		rows = append(rows, []string{"  " + string(e.Category), cli.FormatMoney(e.Amount, currency)})
	}
	rows = append(rows,
		[]string{"Total Expenses", cli.FormatMoney(res.TotalExpenses, currency)},
		[]string{"---"},
		[]string{"Balance", cli.FormatMoney(res.Balance, currency)},
		[]string{"Savings Goal", cli.FormatMoney(res.SavingsGoal, currency)},
		[]string{"Progress", cli.FormatPercent(res.ProgressPercent())},
	)
	return cli.Table{
		Headers: []string{"Item", "Amount"},
		Rows:    rows,
		Align:   []cli.Align{cli.AlignLeft, cli.AlignRight},
	}
}

func historyTable(entries []model.HistoryEntry, currency string) cli.Table {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			e.Timestamp.Format(model.HistoryTimeLayout),
			cli.FormatMoney(e.Income, currency),
			string(e.Category),
			cli.FormatMoney(e.Amount, currency),
			cli.FormatMoney(e.SavingsGoal, currency),
			cli.FormatMoney(e.Balance, currency),
		}
	}
	return cli.Table{
		Title:   "History",
		Headers: export.HistoryHeaders,
		Rows:    rows,
		Align: []cli.Align{
			cli.AlignLeft, cli.AlignRight, cli.AlignLeft,
			cli.AlignRight, cli.AlignRight, cli.AlignRight,
		},
	}
}
