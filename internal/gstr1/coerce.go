package gstr1

import (
	"encoding/json"
	"strconv"
	"strings"
)

// amountCleaner strips the decorations extraction payloads put on numbers:
// thousands separators, currency markers and surrounding whitespace.
var amountCleaner = strings.NewReplacer(",", "", "₹", "", "Rs.", "", "Rs", "", "INR", "", " ", "", "\t", "")

// Amount coerces an arbitrary raw scalar into a float64 amount. Absent, nil,
// empty and non-numeric values become 0; numeric values of any JSON shape
// pass through, negatives included. Amount never panics and never errors.
func Amount(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		cleaned := amountCleaner.Replace(strings.TrimSpace(n))
		if cleaned == "" {
			return 0
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Quantity coerces a raw quantity value. Same semantics as Amount.
func Quantity(v any) float64 {
	return Amount(v)
}

// Text coerces a raw value into a trimmed string. Numeric values are
// rendered without an exponent so codes like HSN 1006 survive the
// float64 round-trip JSON puts them through.
func Text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	case bool:
		if s {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return ""
	}
}

// Flag coerces a raw value into a boolean. Recognizes the usual textual
// spellings; anything else is false.
func Flag(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "y", "1":
			return true
		}
		return false
	case float64:
		return b != 0
	default:
		return false
	}
}
