package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/cbudget/internal/cli"
)

// Tab10 is the default slice palette.
var Tab10 = []lipgloss.Color{
	"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728", "#9467BD",
	"#8C564B", "#E377C2", "#7F7F7F", "#BCBD22", "#17BECF",
}

// startAngle is where the first wedge begins, in degrees counter-clockwise from 3 o'clock.
const startAngle = 140.0

// minLabelShare hides percentage labels on wedges too thin to hold them.
const minLabelShare = 4.0

// TerminalRenderer draws a pie chart with a side legend using terminal cells.
type TerminalRenderer struct {
	Height   int // pie height in rows; width is derived for roughly round output
	Palette  []lipgloss.Color
	Currency string
	Text     lipgloss.Color // legend and title colour
	Muted    lipgloss.Color
}

// NewTerminalRenderer returns a renderer with the default palette.
func NewTerminalRenderer(height int, currency string) TerminalRenderer {
	if height < 5 {
		height = 5
	}
	if currency == "" {
		currency = cli.DefaultCurrency
	}
	return TerminalRenderer{
		Height:   height,
		Palette:  Tab10,
		Currency: currency,
		Text:     lipgloss.Color("#FFFCF0"),
		Muted:    lipgloss.Color("#878580"),
	}
}

// Render implements Renderer.
func (r TerminalRenderer) Render(d Data) (Image, error) {
	titleStyle := lipgloss.NewStyle().Foreground(r.Text).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(r.Muted)

	title := d.Title
	if title == "" {
		title = Title
	}

	shares := d.Shares()
	var body string
	if !hasPositive(shares) {
		body = mutedStyle.Render("No positive expenses to chart.")
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Center, r.pie(shares), "   ", r.legend(d))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Total: " + cli.FormatMoney(d.Total, r.Currency)))
	b.WriteString("\n\n")
	b.WriteString(body)

	return Image{MediaType: MediaTypeANSI, Data: []byte(b.String())}, nil
}

func (r TerminalRenderer) color(i int) lipgloss.Color {
	palette := r.Palette
	if len(palette) == 0 {
		palette = Tab10
	}
	return palette[i%len(palette)]
}

// pie rasterises the wedges onto a canvas. Terminal cells are about twice as
// tall as wide, so the horizontal radius is doubled.
func (r TerminalRenderer) pie(shares []float64) string {
	h := r.Height
	w := 2*h + 1
	c := canvas.New(w, h)

	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	ry := float64(h) / 2
	rx := ry * 2

	// Cumulative wedge boundaries as fractions of a full turn.
	bounds := make([]float64, len(shares)+1)
	for i, s := range shares {
		bounds[i+1] = bounds[i] + s/100
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) - cx) / rx
			dy := (cy - float64(y)) / ry
			if dx*dx+dy*dy > 1 {
				continue
			}
			idx := wedgeAt(bounds, shares, turnFraction(dx, dy))
			if idx < 0 {
				continue
			}
			style := lipgloss.NewStyle().Foreground(r.color(idx))
			c.SetRuneWithStyle(canvas.Point{X: x, Y: y}, '█', style)
		}
	}

	for i, s := range shares {
		if s < minLabelShare {
			continue
		}
		mid := (startAngle + (bounds[i]+s/200)*360) * math.Pi / 180
		label := fmt.Sprintf("%.1f%%", s)
		lx := int(math.Round(cx+0.6*rx*math.Cos(mid))) - len(label)/2
		ly := int(math.Round(cy - 0.6*ry*math.Sin(mid)))
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#100F0F")).
			Background(r.color(i)).
			Bold(true)
		for j, ch := range label {
			x := lx + j
			if x < 0 || x >= w || ly < 0 || ly >= h {
				continue
			}
			c.SetRuneWithStyle(canvas.Point{X: x, Y: ly}, ch, style)
		}
	}

	return c.View()
}

func (r TerminalRenderer) legend(d Data) string {
	textStyle := lipgloss.NewStyle().Foreground(r.Text)
	lines := make([]string, 0, len(d.Slices))
	for i, s := range d.Slices {
		swatch := lipgloss.NewStyle().Foreground(r.color(i)).Render("■")
		lines = append(lines, swatch+" "+textStyle.Render(fmt.Sprintf("%s: %s", s.Label, cli.FormatMoney(s.Value, r.Currency))))
	}
	return strings.Join(lines, "\n")
}

// turnFraction maps a point to the fraction of a counter-clockwise turn measured
// from startAngle.
func turnFraction(dx, dy float64) float64 {
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	rel := math.Mod(deg-startAngle+720, 360)
	return rel / 360
}

func wedgeAt(bounds, shares []float64, f float64) int {
	for i := range shares {
		if shares[i] <= 0 {
			continue
		}
		if f >= bounds[i] && f < bounds[i+1] {
			return i
		}
	}
	// Rounding can leave a sliver past the last boundary.
	for i := len(shares) - 1; i >= 0; i-- {
		if shares[i] > 0 {
			return i
		}
	}
	return -1
}

func hasPositive(shares []float64) bool {
	for _, s := range shares {
		if s > 0 {
			return true
		}
	}
	return false
}
