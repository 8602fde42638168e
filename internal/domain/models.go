package domain

import (
	"time"

	"github.com/google/uuid"
)

// Filing represents one GSTR-1 return being prepared for a GSTIN and period.
// The raw extraction payload lives in object storage under PayloadKey; only
// the reconciled headline totals are persisted. The full report is recomputed
// from the payload on demand.
type Filing struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	GSTIN        string       `db:"gstin" json:"gstin"`
	CompanyName  string       `db:"company_name" json:"company_name"`
	FilingPeriod string       `db:"filing_period" json:"filing_period"`
	Status       FilingStatus `db:"status" json:"status"`
	PayloadKey   string       `db:"payload_key" json:"-"`
	CreatedBy    string       `db:"created_by" json:"created_by"`

	TotalInvoices     int     `db:"total_invoices" json:"total_invoices"`
	TotalTaxableValue float64 `db:"total_taxable_value" json:"total_taxable_value"`
	TotalTax          float64 `db:"total_tax" json:"total_tax"`
	TotalInvoiceValue float64 `db:"total_invoice_value" json:"total_invoice_value"`

	GeneratedAt *time.Time `db:"generated_at" json:"generated_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
