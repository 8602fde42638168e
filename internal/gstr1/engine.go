package gstr1

import (
	"context"
	"encoding/json"
)

// ctxCheckStride is how many records Process handles between context checks.
const ctxCheckStride = 256

// Engine is the invoice normalization and tax-summary aggregation pipeline.
// An Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine returns an Engine with cfg, falling back to shipped defaults
// for unusable zero values.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg.normalized()}
}

// Process turns one raw extraction payload into a fully reconciled Report.
// A payload that is absent, not JSON, or not invoice-shaped produces an
// empty well-formed report rather than an error; the only error Process
// returns is ctx cancellation on very large inputs.
func (e *Engine) Process(ctx context.Context, raw json.RawMessage) (*Report, error) {
	report := &Report{
		B2B:  []Invoice{},
		B2CL: []Invoice{},
		B2CS: []Invoice{},
		HSN:  []HSNSummaryRow{},
	}

	records, reported := decodePayload(raw)
	report.ReportedSummary = reported

	all := make([]Invoice, 0, len(records))
	for i, rec := range records {
		if i%ctxCheckStride == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if rec == nil {
			continue
		}

		inv := e.cfg.BuildInvoice(rec)
		all = append(all, inv)

		switch inv.Category {
		case CategoryB2B:
			report.B2B = append(report.B2B, inv)
		case CategoryB2CL:
			report.B2CL = append(report.B2CL, inv)
		default:
			report.B2CS = append(report.B2CS, inv)
		}
	}

	report.HSN = Rollup(all)
	report.Totals = Reconcile(all)
	return report, nil
}

// decodePayload accepts either a bare JSON array of records or an object
// envelope carrying the array under an "invoices"-like key, optionally with
// an upstream summary block that is surfaced for display only. Anything
// else decodes to no records.
func decodePayload(raw json.RawMessage) ([]Raw, map[string]any) {
	if len(raw) == 0 {
		return nil, nil
	}

	var records []Raw
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, nil
	}

	// Extraction services wrap the array one level deep.
	if inner, ok := envelope["extraction_result"]; ok {
		if err := json.Unmarshal(inner, &envelope); err != nil {
			return nil, nil
		}
	}

	for _, key := range []string{"invoices", "records", "data"} {
		inner, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(inner, &records); err != nil {
			records = nil
		}
		break
	}

	var reported map[string]any
	if block, ok := envelope["summary"]; ok {
		_ = json.Unmarshal(block, &reported)
	}
	return records, reported
}
