package chart

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExpensesSheet is the sheet holding chart source data.
const ExpensesSheet = "Expenses"

// WorkbookRenderer produces a spreadsheet with a native pie chart.
type WorkbookRenderer struct{}

// Render implements Renderer.
func (WorkbookRenderer) Render(d Data) (Image, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ExpensesSheet); err != nil {
		return Image{}, fmt.Errorf("naming sheet: %w", err)
	}
	if err := AddPieSheet(f, ExpensesSheet, d); err != nil {
		return Image{}, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return Image{}, fmt.Errorf("writing workbook: %w", err)
	}
	return Image{MediaType: MediaTypeXLSX, Data: buf.Bytes()}, nil
}

// AddPieSheet writes the slice table to an existing sheet and anchors a pie
// chart next to it.
func AddPieSheet(f *excelize.File, sheet string, d Data) error {
	title := d.Title
	if title == "" {
		title = Title
	}

	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Category", "Amount"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", "A", 18); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	for i, s := range d.Slices {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{s.Label, s.Value.InexactFloat64()}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if len(d.Slices) == 0 {
		return f.SetCellValue(sheet, "D2", "No expenses to chart.")
	}

	last := len(d.Slices) + 1
	return f.AddChart(sheet, "D2", &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", sheet),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheet, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheet, last),
		}},
		Title:    []excelize.RichTextRun{{Text: title}},
		Legend:   excelize.ChartLegend{Position: "right"},
		PlotArea: excelize.ChartPlotArea{ShowPercent: true},
	})
}
