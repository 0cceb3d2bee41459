// Package model defines domain types for cbudget calculations and history.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RowInput is one editable expense row as the user typed it.
type RowInput struct {
	Category Category
	Amount   string
}

// ExpenseRow is a parsed expense line.
type ExpenseRow struct {
	Category Category
	Amount   decimal.Decimal
}

// BudgetResult holds the outcome of one calculation.
type BudgetResult struct {
	Income        decimal.Decimal
	SavingsGoal   decimal.Decimal
	Expenses      []ExpenseRow
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
	ProgressRatio decimal.Decimal // balance as a percentage of the goal, 0 when goal is 0
}

// MeetsGoal reports whether the balance reaches the savings goal.
func (r BudgetResult) MeetsGoal() bool {
	return r.Balance.GreaterThanOrEqual(r.SavingsGoal)
}

// ProgressPercent returns ProgressRatio as a float for display widgets.
func (r BudgetResult) ProgressPercent() float64 {
	return r.ProgressRatio.InexactFloat64()
}

// HistoryEntry records one expense line of one calculation.
type HistoryEntry struct {
	Seq           int64
	CalculationID string
	Timestamp     time.Time
	Income        decimal.Decimal
	Category      Category
	Amount        decimal.Decimal
	SavingsGoal   decimal.Decimal
	Balance       decimal.Decimal
}

// HistoryTimeLayout is the Date column format.
const HistoryTimeLayout = "2006-01-02 15:04:05"

// NoticeKind selects the notification variant.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeShortfall
	NoticeError
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeShortfall:
		return "shortfall"
	default:
		return "error"
	}
}

// Notification is the modal message shown after a calculate action.
type Notification struct {
	Kind    NoticeKind
	Title   string
	Message string
}
