package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/cbudget/internal/cli"
	"github.com/theirongolddev/cbudget/internal/export"
	"github.com/theirongolddev/cbudget/internal/model"
	"github.com/theirongolddev/cbudget/internal/tui/theme"
)

const (
	dateColWidth     = 19
	categoryColWidth = 16
	minMoneyColWidth = 10
)

func newHistoryTable() table.Model {
	tbl := table.New(
		table.WithColumns(historyColumns(100)),
		table.WithFocused(false),
		table.WithHeight(5),
	)
	tbl.SetStyles(historyStyles())
	return tbl
}

func historyStyles() table.Styles {
	t := theme.Active
	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(t.TextMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Bold(true)
	s.Cell = s.Cell.Foreground(t.TextPrimary)
	// Selection is never shown; the table is read-only.
	s.Selected = lipgloss.NewStyle()
	return s
}

// historyColumns sizes the six history columns to fit width. Money columns
// share whatever the date and category columns leave.
func historyColumns(width int) []table.Column {
	// Each cell carries one column of padding on both sides.
	money := (width - dateColWidth - categoryColWidth - 6*2) / 4
	if money < minMoneyColWidth {
		money = minMoneyColWidth
	}
	widths := []int{dateColWidth, money, categoryColWidth, money, money, money}

	cols := make([]table.Column, len(export.HistoryHeaders))
	for i, title := range export.HistoryHeaders {
		cols[i] = table.Column{Title: title, Width: widths[i]}
	}
	return cols
}

func historyRows(entries []model.HistoryEntry, currency string) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			e.Timestamp.Format(model.HistoryTimeLayout),
			cli.FormatMoney(e.Income, currency),
			string(e.Category),
			cli.FormatMoney(e.Amount, currency),
			cli.FormatMoney(e.SavingsGoal, currency),
			cli.FormatMoney(e.Balance, currency),
		}
	}
	return rows
}

// balanceSeries returns one balance per calculation, oldest first.
func balanceSeries(entries []model.HistoryEntry) []float64 {
	var out []float64
	last := ""
	for _, e := range entries {
		if e.CalculationID == last {
			continue
		}
		last = e.CalculationID
		out = append(out, e.Balance.InexactFloat64())
	}
	return out
}
