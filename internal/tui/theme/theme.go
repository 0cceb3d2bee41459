// Package theme defines color themes for the cbudget TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/cbudget/internal/model"
)

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name        string
	Background  lipgloss.Color
	Surface     lipgloss.Color // panels and cards
	Focus       lipgloss.Color // focused field background
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	TextDim     lipgloss.Color // hints
	TextMuted   lipgloss.Color // labels
	TextPrimary lipgloss.Color
	Accent      lipgloss.Color
	Success     lipgloss.Color // goal met
	Warning     lipgloss.Color // shortfall
	Error       lipgloss.Color // invalid input
	Palette     []lipgloss.Color
}

// tab10 is the matplotlib category palette, shared by the true-color themes.
var tab10 = []lipgloss.Color{
	"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728", "#9467BD",
	"#8C564B", "#E377C2", "#7F7F7F", "#BCBD22", "#17BECF",
}

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:        "flexoki-dark",
	Background:  "#100F0F",
	Surface:     "#1C1B1A",
	Focus:       "#282726",
	Border:      "#403E3C",
	BorderFocus: "#3AA99F",
	TextDim:     "#575653",
	TextMuted:   "#878580",
	TextPrimary: "#FFFCF0",
	Accent:      "#3AA99F",
	Success:     "#879A39",
	Warning:     "#DA702C",
	Error:       "#D14D41",
	Palette:     tab10,
}

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = Theme{
	Name:        "catppuccin-mocha",
	Background:  "#1E1E2E",
	Surface:     "#313244",
	Focus:       "#45475A",
	Border:      "#585B70",
	BorderFocus: "#89B4FA",
	TextDim:     "#6C7086",
	TextMuted:   "#A6ADC8",
	TextPrimary: "#CDD6F4",
	Accent:      "#89B4FA",
	Success:     "#A6E3A1",
	Warning:     "#FAB387",
	Error:       "#F38BA8",
	Palette: []lipgloss.Color{
		"#89B4FA", "#FAB387", "#A6E3A1", "#F38BA8", "#CBA6F7",
		"#F2CDCD", "#F5C2E7", "#9399B2", "#F9E2AF", "#94E2D5",
	},
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:        "tokyo-night",
	Background:  "#1A1B26",
	Surface:     "#24283B",
	Focus:       "#343A52",
	Border:      "#565F89",
	BorderFocus: "#7AA2F7",
	TextDim:     "#565F89",
	TextMuted:   "#A9B1D6",
	TextPrimary: "#C0CAF5",
	Accent:      "#7AA2F7",
	Success:     "#9ECE6A",
	Warning:     "#FF9E64",
	Error:       "#F7768E",
	Palette:     tab10,
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:        "terminal",
	Background:  "0",
	Surface:     "0",
	Focus:       "8",
	Border:      "8",
	BorderFocus: "6",
	TextDim:     "8",
	TextMuted:   "7",
	TextPrimary: "15",
	Accent:      "6",
	Success:     "2",
	Warning:     "3",
	Error:       "1",
	Palette:     []lipgloss.Color{"4", "3", "2", "1", "5", "6", "13", "7", "11", "14"},
}

// Active is the currently selected theme.
var Active = FlexokiDark

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Names lists theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// NoticeColor maps a notification kind to its theme color.
func (t Theme) NoticeColor(k model.NoticeKind) lipgloss.Color {
	switch k {
	case model.NoticeSuccess:
		return t.Success
	case model.NoticeShortfall:
		return t.Warning
	default:
		return t.Error
	}
}
