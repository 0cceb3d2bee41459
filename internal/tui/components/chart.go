package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/cbudget/internal/tui/theme"
)

// Sparkline renders a unicode sparkline scaled between the series min and max.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := len(blocks) - 1
		if span > 0 {
			idx = int((v - lo) / span * float64(len(blocks)-1))
		}
		buf.WriteRune(blocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(buf.String())
}

// Bar is one horizontal bar in a HorizontalBars chart.
type Bar struct {
	Label string
	Value float64
	Text  string // rendered value, e.g. formatted money
}

// HorizontalBars renders one labelled bar per line, scaled to the largest
// value. Non-positive values draw an empty track.
func HorizontalBars(bars []Bar, palette []lipgloss.Color, width int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active

	labelW, textW := 0, 0
	peak := 0.0
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
		textW = max(textW, lipgloss.Width(b.Text))
		peak = max(peak, b.Value)
	}
	if peak == 0 {
		peak = 1
	}

	trackW := width - labelW - textW - 2
	if trackW < 5 {
		trackW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	trackStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	lines := make([]string, len(bars))
	for i, b := range bars {
		n := 0
		if b.Value > 0 {
			n = int(b.Value / peak * float64(trackW))
			if n == 0 {
				n = 1
			}
		}
		color := t.Accent
		if len(palette) > 0 {
			color = palette[i%len(palette)]
		}
		fill := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", n))
		lines[i] = fmt.Sprintf("%s %s%s %s",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, b.Label)),
			fill,
			trackStyle.Render(strings.Repeat("·", trackW-n)),
			textStyle.Render(fmt.Sprintf("%*s", textW, b.Text)),
		)
	}
	return strings.Join(lines, "\n")
}
