package tui

import (
	"github.com/theirongolddev/cbudget/internal/chart"
	"github.com/theirongolddev/cbudget/internal/tui/theme"
)

// ChartRenderer draws the terminal pie using the active theme. It is shared by
// pointer with the controller so setup changes apply to the next chart.
type ChartRenderer struct {
	Height   int
	Currency string
}

// Render implements chart.Renderer.
func (r *ChartRenderer) Render(d chart.Data) (chart.Image, error) {
	t := theme.Active
	tr := chart.NewTerminalRenderer(r.Height, r.Currency)
	tr.Palette = t.Palette
	tr.Text = t.TextPrimary
	tr.Muted = t.TextMuted
	return tr.Render(d)
}
