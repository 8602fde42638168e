package gstr1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollup_SharedCodeAcrossInvoices(t *testing.T) {
	invoices := []Invoice{
		{Category: CategoryB2B, LineItems: []LineItem{
			{HSNCode: "1006", Description: "Basmati rice", Unit: "KGS", Quantity: 10, TaxableValue: 100, IGST: 5},
		}},
		{Category: CategoryB2CS, LineItems: []LineItem{
			{HSNCode: " 1006 ", Quantity: 20, TaxableValue: 200, IGST: 10},
		}},
	}

	rows := Rollup(invoices)

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, 1, row.ID)
	assert.Equal(t, "1006", row.Code)
	assert.Equal(t, "Basmati rice", row.Description)
	assert.Equal(t, "KGS", row.Unit)
	assert.Equal(t, 30.0, row.Quantity)
	assert.Equal(t, 300.0, row.TaxableValue)
	assert.Equal(t, 15.0, row.IGST)
	assert.Equal(t, 315.0, row.TotalValue)
}

func TestRollup_InsertionOrderAndIDs(t *testing.T) {
	invoices := []Invoice{
		{LineItems: []LineItem{
			{HSNCode: "9983", TaxableValue: 1},
			{HSNCode: "1006", TaxableValue: 2},
		}},
		{LineItems: []LineItem{
			{HSNCode: "8471", TaxableValue: 3},
			{HSNCode: "9983", TaxableValue: 4},
		}},
	}

	rows := Rollup(invoices)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"9983", "1006", "8471"}, []string{rows[0].Code, rows[1].Code, rows[2].Code})
	for i, row := range rows {
		assert.Equal(t, i+1, row.ID)
	}
	assert.Equal(t, 5.0, rows[0].TaxableValue)
}

func TestRollup_CodelessItemsExcluded(t *testing.T) {
	invoices := []Invoice{
		{LineItems: []LineItem{
			{HSNCode: "", TaxableValue: 100},
			{HSNCode: "   ", TaxableValue: 50},
			{HSNCode: "1006", TaxableValue: 25},
		}},
	}

	rows := Rollup(invoices)

	require.Len(t, rows, 1)
	assert.Equal(t, 25.0, rows[0].TaxableValue)
}

func TestRollup_TotalValueInvariant(t *testing.T) {
	invoices := []Invoice{
		{LineItems: []LineItem{
			{HSNCode: "1006", TaxableValue: 100, IGST: 18},
			{HSNCode: "1006", TaxableValue: 200, CGST: 18, SGST: 18},
			{HSNCode: "8471", TaxableValue: 50, Cess: 2.5},
		}},
	}

	for _, row := range Rollup(invoices) {
		assert.InDelta(t, row.TaxableValue+row.IGST+row.CGST+row.SGST+row.Cess, row.TotalValue, 1e-9,
			"total_value must equal the sum of the row's other monetary columns for %s", row.Code)
	}
}

func TestRollup_FirstDescriptionWins(t *testing.T) {
	invoices := []Invoice{
		{LineItems: []LineItem{{HSNCode: "1006", Description: ""}}},
		{LineItems: []LineItem{{HSNCode: "1006", Description: "Rice"}}},
		{LineItems: []LineItem{{HSNCode: "1006", Description: "Other rice"}}},
	}

	rows := Rollup(invoices)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rice", rows[0].Description)
}

func TestRollup_Empty(t *testing.T) {
	assert.Empty(t, Rollup(nil))
	assert.Empty(t, Rollup([]Invoice{{InvoiceNumber: "INV-1"}}))
}
