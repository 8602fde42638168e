package gstr1

import "strings"

// DefaultB2CLThreshold is the statutory inter-state value above which a
// consumer invoice is reported as B2C Large.
const DefaultB2CLThreshold = 250000

// Config carries the tunable classification behavior of the engine.
type Config struct {
	// B2CLThreshold is the invoice value above which an unregistered-buyer
	// invoice is reported as B2CL instead of B2CS.
	B2CLThreshold float64
	// DefaultCategory receives invoices with no tag, no counterparty GSTIN
	// and no resolvable value. Every invoice lands in exactly one bucket.
	DefaultCategory Category
}

// DefaultConfig returns the shipped classification defaults.
func DefaultConfig() Config {
	return Config{
		B2CLThreshold:   DefaultB2CLThreshold,
		DefaultCategory: CategoryB2CS,
	}
}

// normalized returns cfg with unusable zero values replaced by defaults.
func (cfg Config) normalized() Config {
	if cfg.B2CLThreshold <= 0 {
		cfg.B2CLThreshold = DefaultB2CLThreshold
	}
	switch cfg.DefaultCategory {
	case CategoryB2B, CategoryB2CL, CategoryB2CS:
	default:
		cfg.DefaultCategory = CategoryB2CS
	}
	return cfg
}

// Classify assigns rec to exactly one filing category. An explicit
// recognized category tag wins; otherwise a counterparty GSTIN makes the
// invoice B2B, a value above the threshold B2CL, any other positive value
// B2CS, and everything else the configured default.
func (cfg Config) Classify(rec Raw) Category {
	if tag, ok := parseCategoryTag(ResolveText(rec, CategoryAliases, "")); ok {
		return tag
	}
	if ResolveText(rec, RecipientGSTINAliases, "") != "" {
		return CategoryB2B
	}
	switch value := effectiveValue(rec); {
	case value > cfg.B2CLThreshold:
		return CategoryB2CL
	case value > 0:
		return CategoryB2CS
	default:
		return cfg.DefaultCategory
	}
}

// parseCategoryTag maps the spellings extraction payloads use for the
// category onto the canonical enum. Unrecognized tags are ignored rather
// than trusted, so a typo falls through to structural classification.
func parseCategoryTag(tag string) (Category, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return -1
	}, tag)

	switch cleaned {
	case "b2b":
		return CategoryB2B, true
	case "b2cl", "b2clarge":
		return CategoryB2CL, true
	case "b2cs", "b2csmall":
		return CategoryB2CS, true
	}
	return "", false
}

// effectiveValue is the invoice value used for threshold classification:
// the resolved invoice-level value, or the invoice-level taxable value plus
// tax heads, or the sum of the line items, in that order.
func effectiveValue(rec Raw) float64 {
	if v := ResolveAmount(rec, InvoiceValueAliases); v != 0 {
		return v
	}
	if sum := recordSum(rec); sum != 0 {
		return sum
	}
	var sum float64
	for _, item := range RawLineItems(rec) {
		sum += recordSum(item)
	}
	return sum
}

// recordSum is taxable value plus the four tax heads of one raw record.
func recordSum(rec Raw) float64 {
	return ResolveAmount(rec, TaxableValueAliases) +
		ResolveAmount(rec, IGSTAliases) +
		ResolveAmount(rec, CGSTAliases) +
		ResolveAmount(rec, SGSTAliases) +
		ResolveAmount(rec, CessAliases)
}
