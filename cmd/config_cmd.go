package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/cbudget/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func orNotSet(s string) string {
	if s == "" {
		return "not set"
	}
	return s
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:     %s\n", config.CurrencySymbol(cfg))
	fmt.Printf("    Initial rows: %d\n", cfg.General.InitialRows)
	fmt.Println()

	fmt.Println("  [Budget]")
	fmt.Printf("    Default income:       %s\n", orNotSet(cfg.Budget.DefaultIncome))
	fmt.Printf("    Default savings goal: %s\n", orNotSet(cfg.Budget.DefaultSavingsGoal))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:        %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Chart height: %d\n", cfg.Appearance.ChartHeight)
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level: %s\n", logLevel(cfg))
	fmt.Printf("    File:  %s\n", config.LogFile(cfg))
	fmt.Println()

	fmt.Println("  Run `cbudget setup` to reconfigure.")
	return nil
}
