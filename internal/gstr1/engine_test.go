package gstr1

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess_MixedPayload(t *testing.T) {
	payload := json.RawMessage(`[
		{
			"recipient_gstin": "29ABCDE1234F1Z5",
			"invoice_no": "INV-001",
			"items": [
				{"hsn": "1006", "taxable_value": 100, "igst": 18},
				{"hsn": "1006", "taxable_value": 200, "igst": 36}
			]
		},
		{"invoice_no": "INV-002", "invoice_value": 300000},
		{"invoice_no": "INV-003", "taxable_value": 500, "cgst": 45, "sgst": 45}
	]`)

	report, err := NewEngine(DefaultConfig()).Process(context.Background(), payload)
	require.NoError(t, err)

	require.Len(t, report.B2B, 1)
	require.Len(t, report.B2CL, 1)
	require.Len(t, report.B2CS, 1)

	assert.Equal(t, 300.0, report.B2B[0].TaxableValue)
	assert.Equal(t, 354.0, report.B2B[0].InvoiceValue)
	assert.Equal(t, 300000.0, report.B2CL[0].InvoiceValue)
	assert.Equal(t, 590.0, report.B2CS[0].InvoiceValue)

	require.Len(t, report.HSN, 1)
	assert.Equal(t, "1006", report.HSN[0].Code)
	assert.Equal(t, 300.0, report.HSN[0].TaxableValue)

	assert.Equal(t, 3, report.Totals.InvoiceCount)
	assert.Equal(t, 800.0, report.Totals.TaxableValue)
	assert.Equal(t, 144.0, report.Totals.TaxAmount)
	assert.Equal(t, 300944.0, report.Totals.InvoiceValue)
}

func TestProcess_EmptyAndMalformedPayloads(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	tests := []struct {
		name    string
		payload json.RawMessage
	}{
		{"nil", nil},
		{"empty array", json.RawMessage(`[]`)},
		{"not json", json.RawMessage(`{{{`)},
		{"scalar", json.RawMessage(`42`)},
		{"object without records", json.RawMessage(`{"status": "pending"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := engine.Process(context.Background(), tt.payload)
			require.NoError(t, err)
			assert.Empty(t, report.B2B)
			assert.Empty(t, report.B2CL)
			assert.Empty(t, report.B2CS)
			assert.Empty(t, report.HSN)
			assert.Equal(t, Totals{}, report.Totals)
		})
	}
}

func TestProcess_Envelope(t *testing.T) {
	payload := json.RawMessage(`{
		"invoices": [{"gstin": "29ABCDE1234F1Z5", "taxable_value": 100, "igst": 18}],
		"summary": {"total_invoices": 99, "total_taxable_value": 12345}
	}`)

	report, err := NewEngine(DefaultConfig()).Process(context.Background(), payload)
	require.NoError(t, err)

	require.Len(t, report.B2B, 1)
	// The upstream summary block is surfaced for display, never trusted.
	assert.Equal(t, 1, report.Totals.InvoiceCount)
	assert.Equal(t, 100.0, report.Totals.TaxableValue)
	assert.Equal(t, float64(99), report.ReportedSummary["total_invoices"])
}

func TestProcess_NullRecordsSkipped(t *testing.T) {
	payload := json.RawMessage(`[null, {"taxable_value": 100, "igst": 18}, null]`)

	report, err := NewEngine(DefaultConfig()).Process(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Totals.InvoiceCount)
}

func TestProcess_Deterministic(t *testing.T) {
	payload := json.RawMessage(`[
		{"items": [{"hsn": "9983", "taxable_value": 10}, {"hsn": "1006", "taxable_value": 20}]},
		{"items": [{"hsn": "8471", "taxable_value": 30}, {"hsn": "9983", "taxable_value": 40}]}
	]`)

	engine := NewEngine(DefaultConfig())
	first, err := engine.Process(context.Background(), payload)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := engine.Process(context.Background(), payload)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestProcess_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine(DefaultConfig()).Process(ctx, json.RawMessage(`[{"taxable_value": 1}]`))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_ConcurrentUse(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	payload := json.RawMessage(`[{"gstin": "29ABCDE1234F1Z5", "taxable_value": 100, "igst": 18}]`)

	done := make(chan *Report, 8)
	for i := 0; i < 8; i++ {
		go func() {
			report, err := engine.Process(context.Background(), payload)
			assert.NoError(t, err)
			done <- report
		}()
	}
	for i := 0; i < 8; i++ {
		report := <-done
		assert.Equal(t, 1, report.Totals.InvoiceCount)
		assert.Equal(t, 118.0, report.Totals.InvoiceValue)
	}
}
