package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/cbudget/internal/config"
	"github.com/theirongolddev/cbudget/internal/logging"
	"github.com/theirongolddev/cbudget/internal/store"
	"github.com/theirongolddev/cbudget/internal/tui"
	"github.com/theirongolddev/cbudget/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive budget planner",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", cfgErr)
		cfg = config.DefaultConfig()
	}
	theme.SetActive(cfg.Appearance.Theme)

	// The TUI owns the terminal, so logs go to a file.
	closer, err := logging.File(config.LogFile(cfg), logLevel(cfg))
	if closer != nil {
		defer closer.Close()
	} else {
		logging.Discard()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Logging: %v\n", err)
	}
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("config unreadable, using defaults")
	}

	// Force TrueColor so background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	history, err := store.OpenHistory()
	if err != nil {
		return err
	}
	defer history.Close()

	log.Info().Str("theme", cfg.Appearance.Theme).Msg("starting tui")

	app := tui.NewApp(history, cfg, !config.Exists())
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
