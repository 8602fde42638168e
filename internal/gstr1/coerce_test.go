package gstr1

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"whitespace string", "   ", 0},
		{"non-numeric string", "abc", 0},
		{"bool", true, 0},
		{"float64", 1234.56, 1234.56},
		{"int", 42, 42},
		{"numeric string", "1500.75", 1500.75},
		{"comma separated", "2,50,000", 250000},
		{"currency symbol", "₹1,234.50", 1234.5},
		{"rupee prefix", "Rs. 500", 500},
		{"negative passthrough", -42.5, -42.5},
		{"negative string passthrough", "-100", -100},
		{"json number", json.Number("99.99"), 99.99},
		{"bad json number", json.Number("not-a-number"), 0},
		{"object", map[string]any{"v": 1}, 0},
		{"array", []any{1, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Amount(tt.input))
		})
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, ""},
		{"trimmed", "  1006  ", "1006"},
		{"whole float keeps no exponent", 998390.0, "998390"},
		{"fractional float", 12.5, "12.5"},
		{"json number", json.Number("1006"), "1006"},
		{"bool", true, "true"},
		{"object", map[string]any{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Text(tt.input))
		})
	}
}

func TestFlag(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"yes", "Yes", true},
		{"y", "y", true},
		{"one", "1", true},
		{"no", "No", false},
		{"nil", nil, false},
		{"nonzero number", 1.0, true},
		{"zero number", 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Flag(tt.input))
		})
	}
}
