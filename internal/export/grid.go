// Package export projects a reconciled filing report onto the fixed-column
// grids GSTR-1 tooling expects, and renders them as a spreadsheet. Every
// figure here comes straight off the report; no fallback or re-aggregation
// logic lives in this package.
package export

import (
	"strconv"

	"gstfiler/internal/gstr1"
)

// Sheet names shared by the grid projection and the workbook renderer.
const (
	SheetB2B     = "B2B"
	SheetB2CL    = "B2CL"
	SheetB2CS    = "B2CS"
	SheetHSN     = "HSN Summary"
	SheetSummary = "Summary"
)

var b2bColumns = []string{
	"GSTIN/UIN of Recipient",
	"Receiver Name",
	"Invoice Number",
	"Invoice Date",
	"Invoice Value",
	"Place Of Supply",
	"Reverse Charge",
	"Invoice Type",
	"E-Commerce GSTIN",
	"Taxable Value",
	"IGST",
	"CGST",
	"SGST",
	"Cess",
}

var b2clColumns = []string{
	"Invoice Number",
	"Invoice Date",
	"Invoice Value",
	"Place Of Supply",
	"Taxable Value",
	"IGST",
	"Cess",
	"E-Commerce GSTIN",
}

var b2csColumns = []string{
	"Type",
	"Place Of Supply",
	"Rate",
	"Taxable Value",
	"Cess",
	"E-Commerce GSTIN",
}

var hsnColumns = []string{
	"HSN",
	"Description",
	"UQC",
	"Total Quantity",
	"Total Value",
	"Taxable Value",
	"IGST",
	"CGST",
	"SGST",
	"Cess",
}

// Section is one fixed-column grid of a filing report.
type Section struct {
	Name    string     `json:"name"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Grid is the full tabular projection of a report. The same Grid feeds the
// JSON report endpoint and the spreadsheet renderer, so the two can never
// show different figures.
type Grid struct {
	B2B    Section      `json:"b2b"`
	B2CL   Section      `json:"b2cl"`
	B2CS   Section      `json:"b2cs"`
	HSN    Section      `json:"hsn_summary"`
	Totals gstr1.Totals `json:"summary"`
}

// BuildGrid projects a reconciled report onto the category grids.
func BuildGrid(report *gstr1.Report) *Grid {
	g := &Grid{
		B2B:    Section{Name: SheetB2B, Headers: b2bColumns, Rows: make([][]string, 0, len(report.B2B))},
		B2CL:   Section{Name: SheetB2CL, Headers: b2clColumns, Rows: make([][]string, 0, len(report.B2CL))},
		B2CS:   Section{Name: SheetB2CS, Headers: b2csColumns, Rows: make([][]string, 0, len(report.B2CS))},
		HSN:    Section{Name: SheetHSN, Headers: hsnColumns, Rows: make([][]string, 0, len(report.HSN))},
		Totals: report.Totals,
	}

	for i := range report.B2B {
		g.B2B.Rows = append(g.B2B.Rows, b2bRow(&report.B2B[i]))
	}
	for i := range report.B2CL {
		g.B2CL.Rows = append(g.B2CL.Rows, b2clRow(&report.B2CL[i]))
	}
	for i := range report.B2CS {
		g.B2CS.Rows = append(g.B2CS.Rows, b2csRow(&report.B2CS[i]))
	}
	for i := range report.HSN {
		g.HSN.Rows = append(g.HSN.Rows, hsnRow(&report.HSN[i]))
	}
	return g
}

// Sections returns the non-empty grids in filing order.
func (g *Grid) Sections() []Section {
	out := make([]Section, 0, 4)
	for _, s := range []Section{g.B2B, g.B2CL, g.B2CS, g.HSN} {
		if len(s.Rows) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func b2bRow(inv *gstr1.Invoice) []string {
	return []string{
		inv.RecipientGSTIN,
		inv.RecipientName,
		inv.InvoiceNumber,
		inv.InvoiceDate,
		formatMoney(inv.InvoiceValue),
		inv.PlaceOfSupply,
		formatBool(inv.ReverseCharge),
		inv.InvoiceType,
		inv.ECommerceGSTIN,
		formatMoney(inv.TaxableValue),
		formatMoney(inv.IGST),
		formatMoney(inv.CGST),
		formatMoney(inv.SGST),
		formatMoney(inv.Cess),
	}
}

func b2clRow(inv *gstr1.Invoice) []string {
	return []string{
		inv.InvoiceNumber,
		inv.InvoiceDate,
		formatMoney(inv.InvoiceValue),
		inv.PlaceOfSupply,
		formatMoney(inv.TaxableValue),
		formatMoney(inv.IGST),
		formatMoney(inv.Cess),
		inv.ECommerceGSTIN,
	}
}

func b2csRow(inv *gstr1.Invoice) []string {
	// "E" marks supplies through an e-commerce operator, "OE" everything else.
	supplyType := "OE"
	if inv.ECommerceGSTIN != "" {
		supplyType = "E"
	}
	return []string{
		supplyType,
		inv.PlaceOfSupply,
		formatRate(inv.TaxRate),
		formatMoney(inv.TaxableValue),
		formatMoney(inv.Cess),
		inv.ECommerceGSTIN,
	}
}

func hsnRow(row *gstr1.HSNSummaryRow) []string {
	return []string{
		row.Code,
		row.Description,
		row.Unit,
		formatQuantity(row.Quantity),
		formatMoney(row.TotalValue),
		formatMoney(row.TaxableValue),
		formatMoney(row.IGST),
		formatMoney(row.CGST),
		formatMoney(row.SGST),
		formatMoney(row.Cess),
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}
