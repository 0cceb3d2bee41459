// Package chart renders the expense composition of a budget result.
package chart

import (
	"github.com/shopspring/decimal"
	"github.com/theirongolddev/cbudget/internal/model"
)

// Title is shown above every expense chart.
const Title = "Income vs Expenses"

// Media types produced by the bundled renderers.
const (
	MediaTypeANSI = "text/x-ansi"
	MediaTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Slice is one pie wedge.
type Slice struct {
	Label string
	Value decimal.Decimal
}

// Data is everything a renderer needs.
type Data struct {
	Title  string
	Total  decimal.Decimal
	Slices []Slice
}

// Image is a rendered chart ready for display.
type Image struct {
	MediaType string
	Data      []byte
}

// String returns the image payload as text, meaningful for terminal images.
func (i Image) String() string {
	return string(i.Data)
}

// IsZero reports whether nothing has been rendered.
func (i Image) IsZero() bool {
	return len(i.Data) == 0
}

// Renderer turns chart data into a displayable image.
type Renderer interface {
	Render(Data) (Image, error)
}

// FromResult builds pie data with one slice per expense row, in row order.
func FromResult(r model.BudgetResult) Data {
	slices := make([]Slice, 0, len(r.Expenses))
	for _, e := range r.Expenses {
		slices = append(slices, Slice{Label: string(e.Category), Value: e.Amount})
	}
	return Data{Title: Title, Total: r.TotalExpenses, Slices: slices}
}

// Shares returns each slice's percentage of the positive total. Non-positive
// slices get 0 and are left out of the pie.
func (d Data) Shares() []float64 {
	sum := decimal.Zero
	for _, s := range d.Slices {
		if s.Value.IsPositive() {
			sum = sum.Add(s.Value)
		}
	}

	shares := make([]float64, len(d.Slices))
	if sum.IsZero() {
		return shares
	}
	for i, s := range d.Slices {
		if s.Value.IsPositive() {
			shares[i] = s.Value.Div(sum).InexactFloat64() * 100
		}
	}
	return shares
}
