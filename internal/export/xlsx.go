package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"gstfiler/internal/gstr1"
)

// WorkbookMeta carries the filing context written to the Summary sheet.
type WorkbookMeta struct {
	GSTIN       string
	CompanyName string
	Period      string
	Status      string
	GeneratedAt time.Time
}

// WriteWorkbook renders the report as a GSTR-1 workbook: one sheet per
// non-empty category grid plus a Summary sheet, streamed to w. The workbook
// is built from the same grid projection the JSON report uses.
func WriteWorkbook(w io.Writer, report *gstr1.Report, meta WorkbookMeta) error {
	grid := BuildGrid(report)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for _, section := range grid.Sections() {
		if err := writeSection(f, section); err != nil {
			return fmt.Errorf("write sheet %s: %w", section.Name, err)
		}
	}
	if err := writeSummary(f, grid.Totals, meta); err != nil {
		return fmt.Errorf("write sheet %s: %w", SheetSummary, err)
	}

	// excelize seeds every workbook with "Sheet1"; drop it once real
	// sheets exist.
	_ = f.DeleteSheet("Sheet1")
	if idx, err := f.GetSheetIndex(SheetSummary); err == nil {
		f.SetActiveSheet(idx)
	}

	return f.Write(w)
}

func writeSection(f *excelize.File, section Section) error {
	if _, err := f.NewSheet(section.Name); err != nil {
		return err
	}
	if err := setRow(f, section.Name, 1, section.Headers); err != nil {
		return err
	}
	for i, row := range section.Rows {
		if err := setRow(f, section.Name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, totals gstr1.Totals, meta WorkbookMeta) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return err
	}

	rows := [][]string{
		{"GSTIN", meta.GSTIN},
		{"Company Name", meta.CompanyName},
		{"Filing Period", meta.Period},
		{"Status", meta.Status},
		{"Generated At", meta.GeneratedAt.UTC().Format(time.RFC3339)},
		{},
		{"Total Invoices", fmt.Sprintf("%d", totals.InvoiceCount)},
		{"Total Taxable Value", formatMoney(totals.TaxableValue)},
		{"Total Tax", formatMoney(totals.TaxAmount)},
		{"Total Invoice Value", formatMoney(totals.InvoiceValue)},
	}
	for i, row := range rows {
		if err := setRow(f, SheetSummary, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(sheet, cell, &row)
}
