package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/cbudget/internal/tui/theme"
)

// RenderStatusBar renders the bottom bar: key hints on the left and a
// session summary on the right.
func RenderStatusBar(width int, hints, summary string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " " + hints
	right := summary
	if right != "" {
		right += " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Drop the summary before the hints when space runs out.
		right = ""
		padding = max(0, width-lipgloss.Width(left))
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
