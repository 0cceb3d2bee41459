// Package cmd implements the cbudget CLI commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/cbudget/internal/config"
)

var flagLogLevel string

var rootCmd = &cobra.Command{
	Use:   "cbudget",
	Short: "Personal budget planner",
	Long: "Plan a monthly budget: enter income, expenses by category and a savings goal,\n" +
		"then see your balance, goal progress and where the money goes.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "",
		"Log level: debug, info, warn, error (overrides config and CBUDGET_LOG_LEVEL)")
}

// logLevel resolves the effective level: flag, then env, then config.
func logLevel(cfg config.Config) string {
	if flagLogLevel != "" {
		return flagLogLevel
	}
	return config.LogLevel(cfg)
}
