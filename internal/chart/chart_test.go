package chart

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/cbudget/internal/model"
	"github.com/xuri/excelize/v2"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func sampleResult() model.BudgetResult {
	return model.BudgetResult{
		Income:      decimal.NewFromInt(5000),
		SavingsGoal: decimal.NewFromInt(1000),
		Expenses: []model.ExpenseRow{
			{Category: model.Housing, Amount: decimal.NewFromInt(1200)},
			{Category: model.Food, Amount: decimal.NewFromInt(300)},
		},
		TotalExpenses: decimal.NewFromInt(1500),
		Balance:       decimal.NewFromInt(3500),
	}
}

func TestFromResultKeepsRowOrder(t *testing.T) {
	d := FromResult(sampleResult())
	assert.Equal(t, Title, d.Title)
	require.Len(t, d.Slices, 2)
	assert.Equal(t, "Housing", d.Slices[0].Label)
	assert.Equal(t, "Food", d.Slices[1].Label)
	assert.True(t, d.Total.Equal(decimal.NewFromInt(1500)))
}

func TestSharesSkipNonPositive(t *testing.T) {
	d := Data{Slices: []Slice{
		{Label: "Housing", Value: decimal.NewFromInt(75)},
		{Label: "Food", Value: decimal.NewFromInt(-10)},
		{Label: "Others", Value: decimal.NewFromInt(25)},
	}}
	shares := d.Shares()
	assert.InDelta(t, 75, shares[0], 1e-9)
	assert.Zero(t, shares[1])
	assert.InDelta(t, 25, shares[2], 1e-9)
}

func TestTerminalRendererLegendAndPercentages(t *testing.T) {
	img, err := NewTerminalRenderer(11, "$").Render(FromResult(sampleResult()))
	require.NoError(t, err)
	assert.Equal(t, MediaTypeANSI, img.MediaType)

	out := img.String()
	assert.Contains(t, out, Title)
	assert.Contains(t, out, "Housing: $1,200.00")
	assert.Contains(t, out, "Food: $300.00")
	assert.Contains(t, out, "80.0%")
	assert.Contains(t, out, "20.0%")
	assert.Contains(t, out, "█")
}

func TestTerminalRendererEmptyState(t *testing.T) {
	img, err := NewTerminalRenderer(9, "").Render(Data{Title: Title})
	require.NoError(t, err)
	assert.Contains(t, img.String(), "No positive expenses")
	assert.Contains(t, img.String(), "Total: $0.00")
}

func TestTurnFractionStartsAtStartAngle(t *testing.T) {
	rad := startAngle * math.Pi / 180
	f := turnFraction(math.Cos(rad), math.Sin(rad))
	if f > 1e-9 && f < 1-1e-9 {
		t.Fatalf("fraction at start angle = %f, want 0", f)
	}
	// A quarter turn counter-clockwise from the start.
	rad = (startAngle + 90) * math.Pi / 180
	assert.InDelta(t, 0.25, turnFraction(math.Cos(rad), math.Sin(rad)), 1e-9)
}

func TestWorkbookRendererWritesChartSheet(t *testing.T) {
	img, err := WorkbookRenderer{}.Render(FromResult(sampleResult()))
	require.NoError(t, err)
	assert.Equal(t, MediaTypeXLSX, img.MediaType)

	f, err := excelize.OpenReader(bytes.NewReader(img.Data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(ExpensesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Category", "Amount"}, rows[0])
	assert.Equal(t, "Housing", rows[1][0])
	assert.True(t, strings.HasPrefix(rows[2][1], "300"))
}
