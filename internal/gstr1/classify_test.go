package gstr1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		rec      Raw
		expected Category
	}{
		{"explicit b2b tag", Raw{"category": "B2B"}, CategoryB2B},
		{"explicit b2cl tag", Raw{"category": "b2c-l"}, CategoryB2CL},
		{"explicit b2cs tag spelled out", Raw{"supply_type": "B2C Small"}, CategoryB2CS},
		{"tag wins over structure", Raw{"category": "b2cs", "recipient_gstin": "29ABCDE1234F1Z5"}, CategoryB2CS},
		{"unrecognized tag falls through to gstin", Raw{"category": "export", "gstin": "29ABCDE1234F1Z5"}, CategoryB2B},
		{"gstin makes b2b", Raw{"customer_gstin": "07FGHIJ5678K2Z3"}, CategoryB2B},
		{"above threshold", Raw{"invoice_value": 300000.0}, CategoryB2CL},
		{"at threshold stays small", Raw{"invoice_value": 250000.0}, CategoryB2CS},
		{"positive value", Raw{"total": 1180.0}, CategoryB2CS},
		{"value from taxable plus heads", Raw{"taxable_value": 260000.0, "igst": 46800.0}, CategoryB2CL},
		{"value from line items", Raw{"items": []any{
			Raw{"taxable_value": 260000.0, "igst": 46800.0},
		}}, CategoryB2CL},
		{"nothing resolvable takes default", Raw{"note": "scanned page 3"}, CategoryB2CS},
		{"empty record takes default", Raw{}, CategoryB2CS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.Classify(tt.rec))
		})
	}
}

func TestClassify_ConfiguredThreshold(t *testing.T) {
	cfg := Config{B2CLThreshold: 100000, DefaultCategory: CategoryB2CS}
	assert.Equal(t, CategoryB2CL, cfg.Classify(Raw{"invoice_value": 150000.0}))
	assert.Equal(t, CategoryB2CS, cfg.Classify(Raw{"invoice_value": 90000.0}))
}

func TestClassify_ConfiguredDefault(t *testing.T) {
	cfg := Config{B2CLThreshold: DefaultB2CLThreshold, DefaultCategory: CategoryB2B}
	assert.Equal(t, CategoryB2B, cfg.Classify(Raw{}))
}

func TestConfigNormalized(t *testing.T) {
	cfg := Config{}.normalized()
	assert.Equal(t, float64(DefaultB2CLThreshold), cfg.B2CLThreshold)
	assert.Equal(t, CategoryB2CS, cfg.DefaultCategory)

	cfg = Config{B2CLThreshold: -1, DefaultCategory: Category("junk")}.normalized()
	assert.Equal(t, float64(DefaultB2CLThreshold), cfg.B2CLThreshold)
	assert.Equal(t, CategoryB2CS, cfg.DefaultCategory)
}
