// Package controller owns the state of one budgeting session and applies the
// calculate action to it.
package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/theirongolddev/cbudget/internal/budget"
	"github.com/theirongolddev/cbudget/internal/chart"
	"github.com/theirongolddev/cbudget/internal/form"
	"github.com/theirongolddev/cbudget/internal/model"
	"github.com/theirongolddev/cbudget/internal/store"
)

// Controller holds the form, the history table and every displayed output.
// It is not safe for concurrent use; the UI drives it from a single goroutine.
type Controller struct {
	form     *form.Manager
	history  *store.History
	renderer chart.Renderer

	income      string
	savingsGoal string

	progress float64
	notice   *model.Notification
	chart    chart.Image
	last     *model.BudgetResult
	calcs    int

	now   func() time.Time
	newID func() string
}

// Option customises a Controller.
type Option func(*Controller)

// WithClock overrides the timestamp source for history rows.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithIDs overrides the calculation id generator.
func WithIDs(newID func() string) Option {
	return func(c *Controller) { c.newID = newID }
}

// WithInitialRows sets how many empty expense rows the form starts with.
func WithInitialRows(n int) Option {
	return func(c *Controller) { c.form = form.NewManager(n) }
}

// New returns a controller with one empty expense row.
func New(history *store.History, renderer chart.Renderer, opts ...Option) *Controller {
	c := &Controller{
		form:     form.NewManager(1),
		history:  history,
		renderer: renderer,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Form exposes the expense rows for editing.
func (c *Controller) Form() *form.Manager { return c.form }

// AddExpense appends an empty expense row and returns its index.
func (c *Controller) AddExpense() int {
	idx := c.form.AddRow()
	log.Debug().Int("rows", c.form.Len()).Msg("expense row added")
	return idx
}

// SetIncome stores the income text as typed.
func (c *Controller) SetIncome(s string) { c.income = s }

// Income returns the income text.
func (c *Controller) Income() string { return c.income }

// SetSavingsGoal stores the savings goal text as typed.
func (c *Controller) SetSavingsGoal(s string) { c.savingsGoal = s }

// SavingsGoal returns the savings goal text.
func (c *Controller) SavingsGoal() string { return c.savingsGoal }

// Calculate runs the budget over the current input. On success the progress
// value, notification, chart and history all update; on failure only the
// error notification is set.
func (c *Controller) Calculate(ctx context.Context) (model.BudgetResult, error) {
	res, err := budget.Calculate(c.income, c.savingsGoal, c.form.Rows())
	if err != nil {
		return model.BudgetResult{}, c.fail(err, "invalid budget input")
	}

	img, err := c.renderer.Render(chart.FromResult(res))
	if err != nil {
		return model.BudgetResult{}, c.fail(fmt.Errorf("rendering chart: %w", err), "chart render failed")
	}

	calcID := c.newID()
	if err := c.history.Append(ctx, budget.HistoryEntries(res, c.now(), calcID)); err != nil {
		return model.BudgetResult{}, c.fail(fmt.Errorf("recording history: %w", err), "history append failed")
	}

	notice := budget.Notify(res)
	c.progress = res.ProgressPercent()
	c.notice = &notice
	c.chart = img
	c.last = &res
	c.calcs++

	log.Info().
		Str("calc_id", calcID).
		Int("rows", len(res.Expenses)).
		Str("total", res.TotalExpenses.String()).
		Str("balance", res.Balance.String()).
		Str("progress", res.ProgressRatio.StringFixed(1)).
		Str("outcome", notice.Kind.String()).
		Msg("budget calculated")

	return res, nil
}

func (c *Controller) fail(err error, msg string) error {
	var notice model.Notification
	if errors.Is(err, budget.ErrInvalidNumericInput) {
		notice = budget.InvalidInputNotice()
		log.Warn().Err(err).Msg(msg)
	} else {
		notice = model.Notification{Kind: model.NoticeError, Title: "Error", Message: err.Error()}
		log.Error().Err(err).Msg(msg)
	}
	c.notice = &notice
	return err
}

// Progress returns the goal progress percentage of the last successful calculation.
func (c *Controller) Progress() float64 { return c.progress }

// Notice returns the pending notification, if any.
func (c *Controller) Notice() (model.Notification, bool) {
	if c.notice == nil {
		return model.Notification{}, false
	}
	return *c.notice, true
}

// DismissNotice clears the pending notification.
func (c *Controller) DismissNotice() { c.notice = nil }

// Chart returns the currently displayed chart.
func (c *Controller) Chart() chart.Image { return c.chart }

// LastResult returns the most recent successful result.
func (c *Controller) LastResult() (model.BudgetResult, bool) {
	if c.last == nil {
		return model.BudgetResult{}, false
	}
	return *c.last, true
}

// Calculations returns how many calculations succeeded this session.
func (c *Controller) Calculations() int { return c.calcs }

// History returns every recorded row in insertion order.
func (c *Controller) History(ctx context.Context) ([]model.HistoryEntry, error) {
	return c.history.Entries(ctx)
}

// CategoryTotals sums recorded amounts per category.
func (c *Controller) CategoryTotals(ctx context.Context) (map[model.Category]decimal.Decimal, error) {
	return c.history.CategoryTotals(ctx)
}
