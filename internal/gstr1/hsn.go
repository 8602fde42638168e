package gstr1

import "strings"

// Rollup builds one HSNSummaryRow per distinct trimmed HSN/SAC code across
// every line item of every invoice, regardless of category. Rows keep their
// insertion order and carry sequential ids starting at 1. Items without a
// code are excluded from the rollup; they still count in invoice totals.
func Rollup(invoices []Invoice) []HSNSummaryRow {
	index := make(map[string]int)
	rows := make([]HSNSummaryRow, 0)

	for i := range invoices {
		for _, li := range invoices[i].LineItems {
			code := strings.TrimSpace(li.HSNCode)
			if code == "" {
				continue
			}

			idx, ok := index[code]
			if !ok {
				idx = len(rows)
				index[code] = idx
				rows = append(rows, HSNSummaryRow{ID: idx + 1, Code: code})
			}

			row := &rows[idx]
			if row.Description == "" {
				row.Description = li.Description
			}
			if row.Unit == "" {
				row.Unit = li.Unit
			}
			row.Quantity += li.Quantity
			row.TaxableValue += li.TaxableValue
			row.IGST += li.IGST
			row.CGST += li.CGST
			row.SGST += li.SGST
			row.Cess += li.Cess
			row.TotalValue += li.TaxableValue + li.IGST + li.CGST + li.SGST + li.Cess
		}
	}

	return rows
}
