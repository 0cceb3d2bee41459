// Package form holds the editable expense rows behind the budget form.
package form

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/cbudget/internal/budget"
	"github.com/theirongolddev/cbudget/internal/model"
)

// ErrRowIndex is returned when editing a row that does not exist.
var ErrRowIndex = errors.New("expense row out of range")

// Manager owns the ordered expense rows. Rows are only ever appended.
type Manager struct {
	rows []model.RowInput
}

// NewManager returns a manager with n empty rows.
func NewManager(n int) *Manager {
	m := &Manager{}
	for i := 0; i < n; i++ {
		m.AddRow()
	}
	return m
}

// AddRow appends a row with the default category and no amount, returning its index.
func (m *Manager) AddRow() int {
	m.rows = append(m.rows, model.RowInput{Category: model.DefaultCategory})
	return len(m.rows) - 1
}

// Len returns the number of rows.
func (m *Manager) Len() int {
	return len(m.rows)
}

// Rows returns a copy of the rows as currently entered.
func (m *Manager) Rows() []model.RowInput {
	out := make([]model.RowInput, len(m.rows))
	copy(out, m.rows)
	return out
}

// Row returns row i.
func (m *Manager) Row(i int) (model.RowInput, error) {
	if i < 0 || i >= len(m.rows) {
		return model.RowInput{}, fmt.Errorf("row %d: %w", i, ErrRowIndex)
	}
	return m.rows[i], nil
}

// CurrentRows parses every row. Any non-numeric amount fails the read.
func (m *Manager) CurrentRows() ([]model.ExpenseRow, error) {
	out := make([]model.ExpenseRow, 0, len(m.rows))
	for i, r := range m.rows {
		amt, err := budget.ParseAmount(r.Amount)
		if err != nil {
			return nil, fmt.Errorf("expense row %d: %w", i+1, err)
		}
		out = append(out, model.ExpenseRow{Category: r.Category, Amount: amt})
	}
	return out, nil
}

// SetCategory changes the category of row i.
func (m *Manager) SetCategory(i int, c model.Category) error {
	if i < 0 || i >= len(m.rows) {
		return fmt.Errorf("row %d: %w", i, ErrRowIndex)
	}
	if c.Index() < 0 {
		return fmt.Errorf("row %d: unknown category %q", i, c)
	}
	m.rows[i].Category = c
	return nil
}

// CycleCategory steps row i through the category list.
func (m *Manager) CycleCategory(i, delta int) error {
	if i < 0 || i >= len(m.rows) {
		return fmt.Errorf("row %d: %w", i, ErrRowIndex)
	}
	m.rows[i].Category = m.rows[i].Category.Shift(delta)
	return nil
}

// SetAmount replaces the amount text of row i. The text is parsed only at read time.
func (m *Manager) SetAmount(i int, text string) error {
	if i < 0 || i >= len(m.rows) {
		return fmt.Errorf("row %d: %w", i, ErrRowIndex)
	}
	m.rows[i].Amount = text
	return nil
}
