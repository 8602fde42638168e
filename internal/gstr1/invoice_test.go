package gstr1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvoice_SumsLineItems(t *testing.T) {
	rec := Raw{
		"recipient_gstin": "29ABCDE1234F1Z5",
		"recipient_name":  "Acme Traders",
		"invoice_no":      "INV-001",
		"invoice_date":    "2025-07-14",
		"place_of_supply": "29-Karnataka",
		"items": []any{
			Raw{"hsn": "1006", "taxable_value": 100.0, "igst": 18.0, "quantity": 2.0},
			Raw{"hsn": "1006", "taxable_value": 200.0, "igst": 36.0, "quantity": 1.0},
		},
	}

	inv := DefaultConfig().BuildInvoice(rec)

	assert.Equal(t, CategoryB2B, inv.Category)
	assert.Equal(t, 300.0, inv.TaxableValue)
	assert.Equal(t, 54.0, inv.IGST)
	assert.Equal(t, 0.0, inv.CGST)
	assert.Equal(t, 354.0, inv.InvoiceValue)
	require.Len(t, inv.LineItems, 2)
	assert.Equal(t, "1006", inv.LineItems[0].HSNCode)
}

func TestBuildInvoice_TrustsInvoiceLevel(t *testing.T) {
	// Non-zero taxable value plus a non-zero tax head: invoice-level wins,
	// line items are not added on top.
	rec := Raw{
		"taxable_value": 1000.0,
		"cgst":          90.0,
		"sgst":          90.0,
		"items": []any{
			Raw{"taxable_value": 999999.0, "cgst": 999.0},
		},
	}

	inv := DefaultConfig().BuildInvoice(rec)

	assert.Equal(t, 1000.0, inv.TaxableValue)
	assert.Equal(t, 90.0, inv.CGST)
	assert.Equal(t, 90.0, inv.SGST)
	assert.Equal(t, 1180.0, inv.InvoiceValue)
}

func TestBuildInvoice_TaxableWithoutHeadsFallsBackToItems(t *testing.T) {
	// A taxable value with every tax head zero is not trustworthy.
	rec := Raw{
		"taxable_value": 5000.0,
		"items": []any{
			Raw{"taxable_value": 100.0, "igst": 18.0},
		},
	}

	inv := DefaultConfig().BuildInvoice(rec)

	assert.Equal(t, 100.0, inv.TaxableValue)
	assert.Equal(t, 18.0, inv.IGST)
	assert.Equal(t, 118.0, inv.InvoiceValue)
}

func TestBuildInvoice_SuppliedValueOnlyWhenNothingComputed(t *testing.T) {
	rec := Raw{"invoice_value": 2500.0}

	inv := DefaultConfig().BuildInvoice(rec)

	assert.Equal(t, 0.0, inv.TaxableValue)
	assert.Equal(t, 2500.0, inv.InvoiceValue)
}

func TestBuildInvoice_ComputedValueAuthoritative(t *testing.T) {
	// Upstream invoice_value disagrees with taxable+heads; computed wins.
	rec := Raw{
		"taxable_value": 100.0,
		"igst":          18.0,
		"invoice_value": 999.0,
	}

	inv := DefaultConfig().BuildInvoice(rec)
	assert.Equal(t, 118.0, inv.InvoiceValue)
}

func TestBuildInvoice_HeaderFields(t *testing.T) {
	rec := Raw{
		"customer_gstin":  "07FGHIJ5678K2Z3",
		"buyer_name":      "Buyer Inc",
		"invoice_number":  "S-42",
		"date":            "2025-06-30",
		"pos":             "07-Delhi",
		"reverse_charge":  "yes",
		"ecommerce_gstin": "29ZZZZZ9999Z9Z9",
		"tax_rate":        18.0,
	}

	inv := DefaultConfig().BuildInvoice(rec)

	assert.Equal(t, "07FGHIJ5678K2Z3", inv.RecipientGSTIN)
	assert.Equal(t, "Buyer Inc", inv.RecipientName)
	assert.Equal(t, "S-42", inv.InvoiceNumber)
	assert.Equal(t, "2025-06-30", inv.InvoiceDate)
	assert.Equal(t, "Regular", inv.InvoiceType)
	assert.Equal(t, "07-Delhi", inv.PlaceOfSupply)
	assert.True(t, inv.ReverseCharge)
	assert.Equal(t, "29ZZZZZ9999Z9Z9", inv.ECommerceGSTIN)
	assert.Equal(t, 18.0, inv.TaxRate)
}

func TestBuildInvoice_RateFromFirstItem(t *testing.T) {
	rec := Raw{
		"items": []any{
			Raw{"taxable_value": 100.0, "igst": 5.0},
			Raw{"taxable_value": 100.0, "rate": 12.0},
		},
	}

	inv := DefaultConfig().BuildInvoice(rec)
	assert.Equal(t, 12.0, inv.TaxRate)
}

func TestBuildInvoice_MalformedNumbers(t *testing.T) {
	rec := Raw{
		"items": []any{
			Raw{"hsn": "9983", "taxable_value": "N/A", "igst": "", "cgst": nil, "sgst": "abc"},
		},
	}

	inv := DefaultConfig().BuildInvoice(rec)

	assert.Equal(t, 0.0, inv.TaxableValue)
	assert.Equal(t, 0.0, inv.TaxAmount())
	assert.Equal(t, 0.0, inv.InvoiceValue)
}
