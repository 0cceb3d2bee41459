package budget

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/cbudget/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Calculate parses the form input and derives totals, balance and goal progress.
// A single unparseable field fails the whole calculation.
func Calculate(income, savingsGoal string, rows []model.RowInput) (model.BudgetResult, error) {
	inc, err := parseField("income", income)
	if err != nil {
		return model.BudgetResult{}, err
	}
	goal, err := parseField("savings goal", savingsGoal)
	if err != nil {
		return model.BudgetResult{}, err
	}

	expenses := make([]model.ExpenseRow, 0, len(rows))
	total := decimal.Zero
	for i, row := range rows {
		amt, err := parseField(fmt.Sprintf("expense row %d", i+1), row.Amount)
		if err != nil {
			return model.BudgetResult{}, err
		}
		expenses = append(expenses, model.ExpenseRow{Category: row.Category, Amount: amt})
		total = total.Add(amt)
	}

	balance := inc.Sub(total)
	ratio := decimal.Zero
	if !goal.IsZero() {
		ratio = balance.Div(goal).Mul(hundred)
	}

	return model.BudgetResult{
		Income:        inc,
		SavingsGoal:   goal,
		Expenses:      expenses,
		TotalExpenses: total,
		Balance:       balance,
		ProgressRatio: ratio,
	}, nil
}

// HistoryEntries expands a result into one history row per expense line.
func HistoryEntries(r model.BudgetResult, at time.Time, calcID string) []model.HistoryEntry {
	entries := make([]model.HistoryEntry, 0, len(r.Expenses))
	for _, e := range r.Expenses {
		entries = append(entries, model.HistoryEntry{
			CalculationID: calcID,
			Timestamp:     at,
			Income:        r.Income,
			Category:      e.Category,
			Amount:        e.Amount,
			SavingsGoal:   r.SavingsGoal,
			Balance:       r.Balance,
		})
	}
	return entries
}
