package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/cbudget/internal/cli"
	"github.com/theirongolddev/cbudget/internal/model"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the expense categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	rows := make([][]string, len(model.Categories))
	for i, c := range model.Categories {
		rows[i] = []string{strconv.Itoa(i + 1), string(c)}
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Expense Categories",
		Headers: []string{"#", "Category"},
		Rows:    rows,
		Align:   []cli.Align{cli.AlignRight, cli.AlignLeft},
	}))
	return nil
}
