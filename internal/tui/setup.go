package tui

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/theirongolddev/cbudget/internal/config"
	"github.com/theirongolddev/cbudget/internal/tui/theme"
)

// SetupValues is bound to the first-run form fields.
type SetupValues struct {
	Theme    string
	Currency string
}

// NewSetupForm builds the theme and currency wizard. It is used both inside
// the TUI on first run and by `cbudget setup`.
func NewSetupForm(vals *SetupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to cbudget").
				Description("Pick a look and a currency. Run `cbudget setup` anytime to change them."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.Theme),
			huh.NewInput().
				Title("Currency symbol").
				Placeholder("$").
				CharLimit(4).
				Value(&vals.Currency).
				Validate(validateCurrency),
		),
	).WithTheme(huh.ThemeCharm())
}

func validateCurrency(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if utf8.RuneCountInString(s) > 3 {
		return errors.New("use at most 3 characters")
	}
	if strings.ContainsAny(s, "0123456789.,-") {
		return errors.New("symbol cannot contain digits or separators")
	}
	return nil
}

// ApplySetup copies form values into cfg, activates the theme and saves.
func ApplySetup(cfg *config.Config, vals SetupValues) error {
	if vals.Theme != "" {
		cfg.Appearance.Theme = vals.Theme
	}
	if c := strings.TrimSpace(vals.Currency); c != "" {
		cfg.General.Currency = c
	}
	theme.SetActive(cfg.Appearance.Theme)

	if err := config.Save(*cfg); err != nil {
		log.Error().Err(err).Msg("saving setup config")
		return err
	}
	log.Info().Str("theme", cfg.Appearance.Theme).Str("currency", cfg.General.Currency).Msg("setup saved")
	return nil
}
