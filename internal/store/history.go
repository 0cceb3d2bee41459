// Package store provides the SQLite-backed history table for one session.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/cbudget/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// History is an append-only ledger of calculation rows. It lives in memory and
// is discarded when closed.
type History struct {
	db *sql.DB
}

// OpenHistory creates an empty in-memory history table.
func OpenHistory() (*History, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	// Every pooled connection would get its own :memory: database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close releases the database.
func (h *History) Close() error {
	return h.db.Close()
}

// Append stores entries in one transaction; either all rows land or none do.
func (h *History) Append(ctx context.Context, entries []model.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO history
		(calculation_id, recorded_at, income, category, amount, savings_goal, balance)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range entries {
		_, err = stmt.ExecContext(ctx,
			e.CalculationID, e.Timestamp.Format(time.RFC3339Nano),
			e.Income.String(), string(e.Category), e.Amount.String(),
			e.SavingsGoal.String(), e.Balance.String(),
		)
		if err != nil {
			return fmt.Errorf("inserting history row: %w", err)
		}
	}

	return tx.Commit()
}

// Entries returns every row in insertion order.
func (h *History) Entries(ctx context.Context) ([]model.HistoryEntry, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT
		seq, calculation_id, recorded_at, income, category, amount, savings_goal, balance
		FROM history ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []model.HistoryEntry
	for rows.Next() {
		var e model.HistoryEntry
		var recorded, income, category, amount, goal, balance string
		if err := rows.Scan(&e.Seq, &e.CalculationID, &recorded, &income, &category, &amount, &goal, &balance); err != nil {
			return nil, err
		}

		e.Category = model.Category(category)
		if e.Timestamp, err = time.Parse(time.RFC3339Nano, recorded); err != nil {
			return nil, fmt.Errorf("history row %d time: %w", e.Seq, err)
		}
		if e.Income, err = decimal.NewFromString(income); err != nil {
			return nil, fmt.Errorf("history row %d income: %w", e.Seq, err)
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("history row %d amount: %w", e.Seq, err)
		}
		if e.SavingsGoal, err = decimal.NewFromString(goal); err != nil {
			return nil, fmt.Errorf("history row %d goal: %w", e.Seq, err)
		}
		if e.Balance, err = decimal.NewFromString(balance); err != nil {
			return nil, fmt.Errorf("history row %d balance: %w", e.Seq, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of stored rows.
func (h *History) Count(ctx context.Context) (int, error) {
	var count int
	err := h.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM history").Scan(&count)
	return count, err
}

// CategoryTotals sums amounts per category across all calculations.
func (h *History) CategoryTotals(ctx context.Context) (map[model.Category]decimal.Decimal, error) {
	rows, err := h.db.QueryContext(ctx, "SELECT category, amount FROM history")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	totals := make(map[model.Category]decimal.Decimal)
	for rows.Next() {
		var category, amount string
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("history amount %q: %w", amount, err)
		}
		c := model.Category(category)
		totals[c] = totals[c].Add(d)
	}
	return totals, rows.Err()
}
