package gstr1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAmount_AliasPriority(t *testing.T) {
	// taxable_value outranks amount regardless of map iteration order.
	rec := Raw{"amount": 50.0, "taxable_value": 100.0}
	assert.Equal(t, 100.0, ResolveAmount(rec, TaxableValueAliases))
}

func TestResolveAmount_EmptyValueSkipped(t *testing.T) {
	// A higher-priority key that is present but empty loses to a lower one.
	rec := Raw{"taxable_value": "", "amount": "75.50"}
	assert.Equal(t, 75.5, ResolveAmount(rec, TaxableValueAliases))

	rec = Raw{"taxable_value": nil, "net_amount": 30.0}
	assert.Equal(t, 30.0, ResolveAmount(rec, TaxableValueAliases))
}

func TestResolveAmount_NothingResolvable(t *testing.T) {
	assert.Equal(t, 0.0, ResolveAmount(Raw{"unrelated": 5.0}, IGSTAliases))
	assert.Equal(t, 0.0, ResolveAmount(Raw{}, IGSTAliases))
}

func TestResolveText_Default(t *testing.T) {
	assert.Equal(t, "Regular", ResolveText(Raw{}, InvoiceTypeAliases, "Regular"))
	assert.Equal(t, "Tax Invoice", ResolveText(Raw{"invoice_type": " Tax Invoice "}, InvoiceTypeAliases, "Regular"))
}

func TestResolveText_NumericCode(t *testing.T) {
	// HSN codes arrive as JSON numbers after a float64 round-trip.
	rec := Raw{"hsn": 1006.0}
	assert.Equal(t, "1006", ResolveText(rec, HSNCodeAliases, ""))
}

func TestRawLineItems(t *testing.T) {
	tests := []struct {
		name     string
		rec      Raw
		expected int
	}{
		{"items key", Raw{"items": []any{Raw{"hsn": "1006"}}}, 1},
		{"line_items alias", Raw{"line_items": []any{Raw{}, Raw{}}}, 2},
		{"non-object entries skipped", Raw{"items": []any{"oops", Raw{}}}, 1},
		{"non-array collection", Raw{"items": "not-a-list"}, 0},
		{"missing", Raw{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, RawLineItems(tt.rec), tt.expected)
		})
	}
}

func TestAliasTables_NoDuplicateKeys(t *testing.T) {
	// A key appearing in two tables would make resolution ambiguous for
	// records that carry it once. "value"/"total" style overlaps between
	// taxable and invoice value are the one sanctioned exception.
	tables := map[string][]string{
		"igst": IGSTAliases, "cgst": CGSTAliases, "sgst": SGSTAliases, "cess": CessAliases,
	}
	seen := map[string]string{}
	for field, keys := range tables {
		for _, k := range keys {
			if prev, dup := seen[k]; dup {
				t.Fatalf("alias %q appears in both %s and %s", k, prev, field)
			}
			seen[k] = field
		}
	}
}
