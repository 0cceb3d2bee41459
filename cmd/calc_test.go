package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/cbudget/internal/budget"
	"github.com/theirongolddev/cbudget/internal/config"
	"github.com/theirongolddev/cbudget/internal/model"
)

func TestParseExpenseFlag(t *testing.T) {
	r, err := parseExpenseFlag("food=300.50")
	require.NoError(t, err)
	assert.Equal(t, model.Food, r.Category)
	assert.Equal(t, "300.50", r.Amount)

	// Amount validation is left to the calculator.
	r, err = parseExpenseFlag("Others=abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", r.Amount)

	_, err = parseExpenseFlag("Housing")
	assert.Error(t, err)
	_, err = parseExpenseFlag("Pets=10")
	assert.Error(t, err)
}

func TestSummaryAndHistoryTables(t *testing.T) {
	res, err := budget.Calculate("5000", "1000", []model.RowInput{
		{Category: model.Housing, Amount: "1200"},
		{Category: model.Food, Amount: "300"},
	})
	require.NoError(t, err)

	out := summaryTable(res, "$")
	var labels []string
	for _, r := range out.Rows {
		labels = append(labels, r[0])
	}
	joined := strings.Join(labels, "|")
	assert.Contains(t, joined, "  Housing|  Food|Total Expenses")
	assert.Equal(t, []string{"Progress", "350.0%"}, out.Rows[len(out.Rows)-1])

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	hist := historyTable(budget.HistoryEntries(res, at, "c1"), "$")
	require.Len(t, hist.Rows, 2)
	assert.Equal(t, []string{"2026-01-02 03:04:05", "$5,000.00", "Food", "$300.00", "$1,000.00", "$3,500.00"}, hist.Rows[1])
}

func TestLogLevelFlagWins(t *testing.T) {
	t.Setenv("CBUDGET_LOG_LEVEL", "warn")
	cfg := config.DefaultConfig()
	assert.Equal(t, "warn", logLevel(cfg))

	flagLogLevel = "debug"
	t.Cleanup(func() { flagLogLevel = "" })
	assert.Equal(t, "debug", logLevel(cfg))
}
