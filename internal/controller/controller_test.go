package controller

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/cbudget/internal/budget"
	"github.com/theirongolddev/cbudget/internal/chart"
	"github.com/theirongolddev/cbudget/internal/model"
	"github.com/theirongolddev/cbudget/internal/store"
)

type countingRenderer struct {
	calls int
	err   error
}

func (r *countingRenderer) Render(d chart.Data) (chart.Image, error) {
	r.calls++
	if r.err != nil {
		return chart.Image{}, r.err
	}
	return chart.Image{MediaType: "text/plain", Data: []byte(fmt.Sprintf("chart %d: %d slices", r.calls, len(d.Slices)))}, nil
}

func newTestController(t *testing.T, r chart.Renderer) *Controller {
	t.Helper()
	h, err := store.OpenHistory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	at := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	ids := 0
	return New(h, r,
		WithClock(func() time.Time { return at }),
		WithIDs(func() string { ids++; return fmt.Sprintf("calc-%d", ids) }),
	)
}

func fill(t *testing.T, c *Controller, income, goal string, rows ...model.RowInput) {
	t.Helper()
	c.SetIncome(income)
	c.SetSavingsGoal(goal)
	for c.Form().Len() < len(rows) {
		c.AddExpense()
	}
	for i, r := range rows {
		require.NoError(t, c.Form().SetCategory(i, r.Category))
		require.NoError(t, c.Form().SetAmount(i, r.Amount))
	}
}

func TestCalculateSuccessUpdatesEverySink(t *testing.T) {
	r := &countingRenderer{}
	c := newTestController(t, r)
	fill(t, c, "5000", "1000",
		model.RowInput{Category: model.Housing, Amount: "1200"},
		model.RowInput{Category: model.Food, Amount: "300"},
	)

	res, err := c.Calculate(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Balance.Equal(decimal.NewFromInt(3500)))

	assert.InDelta(t, 350, c.Progress(), 1e-9)
	n, ok := c.Notice()
	require.True(t, ok)
	assert.Equal(t, model.NoticeSuccess, n.Kind)
	assert.Equal(t, 1, r.calls)
	assert.Equal(t, "chart 1: 2 slices", c.Chart().String())

	hist, err := c.History(context.Background())
	require.NoError(t, err)
	require.Len(t, hist, 2)
	for _, e := range hist {
		assert.True(t, e.Balance.Equal(decimal.NewFromInt(3500)))
		assert.Equal(t, "calc-1", e.CalculationID)
	}
	assert.Equal(t, 1, c.Calculations())
}

func TestCalculateInvalidInputLeavesStateUntouched(t *testing.T) {
	r := &countingRenderer{}
	c := newTestController(t, r)
	fill(t, c, "2000", "1000", model.RowInput{Category: model.Housing, Amount: "2500"})

	_, err := c.Calculate(context.Background())
	require.NoError(t, err)
	before := c.Chart()
	c.DismissNotice()

	c.SetIncome("abc")
	_, err = c.Calculate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, budget.ErrInvalidNumericInput))

	n, ok := c.Notice()
	require.True(t, ok)
	assert.Equal(t, budget.InvalidInputNotice(), n)
	assert.InDelta(t, -50, c.Progress(), 1e-9)
	assert.Equal(t, before, c.Chart())
	assert.Equal(t, 1, r.calls)

	hist, err := c.History(context.Background())
	require.NoError(t, err)
	assert.Len(t, hist, 1)

	last, ok := c.LastResult()
	require.True(t, ok)
	assert.True(t, last.Income.Equal(decimal.NewFromInt(2000)))
}

func TestCalculateRenderFailureIsAtomic(t *testing.T) {
	r := &countingRenderer{err: errors.New("boom")}
	c := newTestController(t, r)
	fill(t, c, "100", "10", model.RowInput{Category: model.Food, Amount: "5"})

	_, err := c.Calculate(context.Background())
	require.Error(t, err)

	n, ok := c.Notice()
	require.True(t, ok)
	assert.Equal(t, model.NoticeError, n.Kind)
	assert.True(t, c.Chart().IsZero())
	assert.Zero(t, c.Progress())

	hist, err := c.History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestHistoryGrowsBySumOfRowCounts(t *testing.T) {
	c := newTestController(t, &countingRenderer{})
	ctx := context.Background()

	fill(t, c, "3000", "500", model.RowInput{Category: model.Food, Amount: "10"})
	_, err := c.Calculate(ctx)
	require.NoError(t, err)

	fill(t, c, "3000", "500",
		model.RowInput{Category: model.Food, Amount: "10"},
		model.RowInput{Category: model.Clothing, Amount: "20"},
		model.RowInput{Category: model.Others, Amount: "30"},
	)
	_, err = c.Calculate(ctx)
	require.NoError(t, err)

	hist, err := c.History(ctx)
	require.NoError(t, err)
	require.Len(t, hist, 4)
	assert.Equal(t, "calc-1", hist[0].CalculationID)
	for _, e := range hist[1:] {
		assert.Equal(t, "calc-2", e.CalculationID)
	}
	assert.Equal(t, model.Others, hist[3].Category)

	totals, err := c.CategoryTotals(ctx)
	require.NoError(t, err)
	assert.True(t, totals[model.Food].Equal(decimal.NewFromInt(20)))
}

func TestAddExpenseIndependentOfCalculations(t *testing.T) {
	c := newTestController(t, &countingRenderer{})
	fill(t, c, "10", "1", model.RowInput{Category: model.Food, Amount: "1"})
	_, err := c.Calculate(context.Background())
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		c.AddExpense()
	}
	assert.Equal(t, 5, c.Form().Len())

	// The new rows are blank, so the next calculation fails without side effects.
	_, err = c.Calculate(context.Background())
	require.ErrorIs(t, err, budget.ErrInvalidNumericInput)
	hist, err := c.History(context.Background())
	require.NoError(t, err)
	assert.Len(t, hist, 1)
}

func TestZeroGoalScenario(t *testing.T) {
	c := newTestController(t, &countingRenderer{})
	fill(t, c, "100", "0", model.RowInput{Category: model.Food, Amount: "100"})

	res, err := c.Calculate(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Balance.IsZero())
	assert.Zero(t, c.Progress())
}
