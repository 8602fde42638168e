package gstr1

// Category is the GSTR-1 filing category of an outward supply invoice.
type Category string

const (
	CategoryB2B  Category = "b2b"
	CategoryB2CL Category = "b2cl"
	CategoryB2CS Category = "b2cs"
)

// LineItem is the resolved form of one taxable line within an invoice.
type LineItem struct {
	HSNCode      string  `json:"hsn_code"`
	Description  string  `json:"description"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	TaxRate      float64 `json:"tax_rate"`
	TaxableValue float64 `json:"taxable_value"`
	IGST         float64 `json:"igst"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	Cess         float64 `json:"cess"`
}

// Invoice is the canonical, typed form of a raw extraction record.
// All monetary figures are internally consistent: InvoiceValue equals
// TaxableValue plus the four tax heads whenever any of them was resolved.
type Invoice struct {
	Category       Category   `json:"category"`
	RecipientGSTIN string     `json:"recipient_gstin"`
	RecipientName  string     `json:"recipient_name"`
	InvoiceNumber  string     `json:"invoice_no"`
	InvoiceDate    string     `json:"invoice_date"`
	InvoiceType    string     `json:"invoice_type"`
	PlaceOfSupply  string     `json:"place_of_supply"`
	ReverseCharge  bool       `json:"reverse_charge"`
	ECommerceGSTIN string     `json:"ecommerce_gstin"`
	TaxRate        float64    `json:"tax_rate"`
	TaxableValue   float64    `json:"taxable_value"`
	IGST           float64    `json:"igst"`
	CGST           float64    `json:"cgst"`
	SGST           float64    `json:"sgst"`
	Cess           float64    `json:"cess"`
	InvoiceValue   float64    `json:"invoice_value"`
	LineItems      []LineItem `json:"items"`
}

// TaxAmount returns the sum of the four tax heads.
func (inv *Invoice) TaxAmount() float64 {
	return inv.IGST + inv.CGST + inv.SGST + inv.Cess
}

// HSNSummaryRow is the cumulative rollup for one distinct HSN/SAC code.
// TotalValue is accumulated incrementally as taxable value plus tax heads,
// so it always equals the sum of the row's other monetary columns.
type HSNSummaryRow struct {
	ID           int     `json:"id"`
	Code         string  `json:"hsn_code"`
	Description  string  `json:"description"`
	Unit         string  `json:"uqc"`
	Quantity     float64 `json:"total_quantity"`
	TaxableValue float64 `json:"taxable_value"`
	IGST         float64 `json:"igst"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	Cess         float64 `json:"cess"`
	TotalValue   float64 `json:"total_value"`
}

// Totals holds the top-of-report figures derived from the canonical invoices.
type Totals struct {
	InvoiceCount int     `json:"total_invoices"`
	TaxableValue float64 `json:"total_taxable_value"`
	TaxAmount    float64 `json:"total_tax"`
	InvoiceValue float64 `json:"total_invoice_value"`
}

// Report is the complete normalized output for one extraction payload.
// It is recomputed from raw input on every invocation and never persisted.
type Report struct {
	B2B             []Invoice       `json:"b2b"`
	B2CL            []Invoice       `json:"b2cl"`
	B2CS            []Invoice       `json:"b2cs"`
	HSN             []HSNSummaryRow `json:"hsn_summary"`
	Totals          Totals          `json:"summary"`
	ReportedSummary map[string]any  `json:"reported_summary,omitempty"`
}
