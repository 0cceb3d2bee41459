package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/cbudget/internal/model"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := OpenHistory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func entry(calc string, at time.Time, cat model.Category, amount int64) model.HistoryEntry {
	return model.HistoryEntry{
		CalculationID: calc,
		Timestamp:     at,
		Income:        decimal.NewFromInt(5000),
		Category:      cat,
		Amount:        decimal.NewFromInt(amount),
		SavingsGoal:   decimal.NewFromInt(1000),
		Balance:       decimal.NewFromInt(3500),
	}
}

func TestAppendPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	h := openTestHistory(t)

	first := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	require.NoError(t, h.Append(ctx, []model.HistoryEntry{
		entry("a", first, model.Housing, 1200),
		entry("a", first, model.Food, 300),
	}))
	require.NoError(t, h.Append(ctx, []model.HistoryEntry{
		entry("b", second, model.Clothing, 80),
	}))

	got, err := h.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []model.Category{model.Housing, model.Food, model.Clothing},
		[]model.Category{got[0].Category, got[1].Category, got[2].Category})
	assert.True(t, got[0].Timestamp.Equal(first))
	assert.True(t, got[2].Timestamp.Equal(second))
	assert.Equal(t, "b", got[2].CalculationID)
	assert.True(t, got[1].Amount.Equal(decimal.NewFromInt(300)))
	assert.Less(t, got[0].Seq, got[1].Seq)

	n, err := h.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestAppendEmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	h := openTestHistory(t)

	require.NoError(t, h.Append(ctx, nil))
	n, err := h.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAppendCanceledContextWritesNothing(t *testing.T) {
	h := openTestHistory(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Append(ctx, []model.HistoryEntry{entry("a", time.Now(), model.Food, 1)})
	require.Error(t, err)

	n, err := h.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEntriesRejectsCorruptTimestamp(t *testing.T) {
	ctx := context.Background()
	h := openTestHistory(t)

	require.NoError(t, h.Append(ctx, []model.HistoryEntry{entry("a", time.Now(), model.Food, 1)}))
	_, err := h.db.ExecContext(ctx, `UPDATE history SET recorded_at = 'yesterday'`)
	require.NoError(t, err)

	_, err = h.Entries(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time")
}

func TestCategoryTotals(t *testing.T) {
	ctx := context.Background()
	h := openTestHistory(t)
	now := time.Now()

	require.NoError(t, h.Append(ctx, []model.HistoryEntry{
		entry("a", now, model.Food, 300),
		entry("a", now, model.Housing, 1200),
	}))
	require.NoError(t, h.Append(ctx, []model.HistoryEntry{
		entry("b", now, model.Food, 45),
	}))

	totals, err := h.CategoryTotals(ctx)
	require.NoError(t, err)
	assert.True(t, totals[model.Food].Equal(decimal.NewFromInt(345)))
	assert.True(t, totals[model.Housing].Equal(decimal.NewFromInt(1200)))
	_, ok := totals[model.Others]
	assert.False(t, ok)
}
