package components

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/cbudget/internal/cli"
	"github.com/theirongolddev/cbudget/internal/tui/theme"
)

// ColorForGoal returns the bar color for a savings progress percentage.
func ColorForGoal(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 100:
		return t.Success
	case pct >= 50:
		return t.Accent
	case pct > 0:
		return t.Warning
	default:
		return t.Error
	}
}

// GoalBar renders the savings goal indicator. The fill is clamped to 0-100
// while the label shows the raw percentage, so 350% reads as a full bar
// labelled "350.0%".
func GoalBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active
	color := ColorForGoal(pct)

	frac := pct / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	if barWidth < 4 {
		barWidth = 4
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(labelW)
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return labelStyle.Render(label) + " " + bar.ViewAs(frac) + " " + pctStyle.Render(cli.FormatPercent(pct))
}
