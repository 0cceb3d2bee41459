// Package export writes a session report as a spreadsheet.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/theirongolddev/cbudget/internal/chart"
	"github.com/theirongolddev/cbudget/internal/model"
	"github.com/xuri/excelize/v2"
)

// HistorySheet holds the six-column history table.
const HistorySheet = "History"

// HistoryHeaders are the column titles shared with the on-screen table.
var HistoryHeaders = []string{"Date", "Income", "Expense Category", "Expense Amount", "Savings Goal", "Balance"}

// WriteWorkbook writes the latest result's chart sheet and the full history.
func WriteWorkbook(w io.Writer, res model.BudgetResult, history []model.HistoryEntry) error {
	return writeWorkbook(w, chart.WorkbookRenderer{}, res, history)
}

// writeWorkbook starts from the renderer's workbook and appends the summary
// and history sheets to it.
func writeWorkbook(w io.Writer, r chart.Renderer, res model.BudgetResult, history []model.HistoryEntry) error {
	img, err := r.Render(chart.FromResult(res))
	if err != nil {
		return fmt.Errorf("rendering chart sheet: %w", err)
	}
	if img.MediaType != chart.MediaTypeXLSX {
		return fmt.Errorf("chart renderer produced %s, want a workbook", img.MediaType)
	}

	f, err := excelize.OpenReader(bytes.NewReader(img.Data))
	if err != nil {
		return fmt.Errorf("opening chart workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := addSummary(f, chart.ExpensesSheet, res, len(res.Expenses)+3); err != nil {
		return err
	}

	if _, err := f.NewSheet(HistorySheet); err != nil {
		return fmt.Errorf("creating history sheet: %w", err)
	}
	header := make([]interface{}, len(HistoryHeaders))
	for i, h := range HistoryHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(HistorySheet, "A1", &header); err != nil {
		return fmt.Errorf("writing history header: %w", err)
	}
	if err := f.SetColWidth(HistorySheet, "A", "A", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(HistorySheet, "C", "C", 18); err != nil {
		return err
	}

	for i, e := range history {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			e.Timestamp.Format(model.HistoryTimeLayout),
			e.Income.InexactFloat64(),
			string(e.Category),
			e.Amount.InexactFloat64(),
			e.SavingsGoal.InexactFloat64(),
			e.Balance.InexactFloat64(),
		}
		if err := f.SetSheetRow(HistorySheet, cell, &row); err != nil {
			return fmt.Errorf("writing history row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func addSummary(f *excelize.File, sheet string, res model.BudgetResult, startRow int) error {
	rows := [][]interface{}{
		{"Income", res.Income.InexactFloat64()},
		{"Total Expenses", res.TotalExpenses.InexactFloat64()},
		{"Balance", res.Balance.InexactFloat64()},
		{"Savings Goal", res.SavingsGoal.InexactFloat64()},
		{"Progress %", res.ProgressRatio.InexactFloat64()},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	return nil
}

// WriteFile writes the workbook to path, creating parent directories.
func WriteFile(path string, res model.BudgetResult, history []model.HistoryEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	f, err := os.Create(path) //nolint:gosec // path is user-supplied on purpose
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := WriteWorkbook(f, res, history); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}

	log.Info().Str("path", path).Int("history_rows", len(history)).Msg("workbook exported")
	return nil
}
