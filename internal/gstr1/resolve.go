package gstr1

import "strings"

// Raw is one untyped invoice record as produced by the extraction pipeline.
type Raw = map[string]any

// lookup returns the first value found under any of keys that is present and
// non-empty. nil values and blank strings do not count as present, so a later
// alias can still win over an earlier key that exists but carries nothing.
func lookup(rec Raw, keys []string) (any, bool) {
	for _, k := range keys {
		v, ok := rec[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

// ResolveAmount resolves keys against rec and coerces the winner to a
// float64 amount. Nothing resolvable yields 0.
func ResolveAmount(rec Raw, keys []string) float64 {
	v, ok := lookup(rec, keys)
	if !ok {
		return 0
	}
	return Amount(v)
}

// ResolveText resolves keys against rec and coerces the winner to a trimmed
// string, falling back to def when nothing resolves.
func ResolveText(rec Raw, keys []string, def string) string {
	v, ok := lookup(rec, keys)
	if !ok {
		return def
	}
	if s := Text(v); s != "" {
		return s
	}
	return def
}

// ResolveFlag resolves keys against rec and coerces the winner to a boolean.
func ResolveFlag(rec Raw, keys []string) bool {
	v, ok := lookup(rec, keys)
	if !ok {
		return false
	}
	return Flag(v)
}

// RawLineItems resolves the line-item collection of rec. Entries that are
// not objects are skipped; a missing or malformed collection yields nil.
func RawLineItems(rec Raw) []Raw {
	v, ok := lookup(rec, LineItemsAliases)
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	items := make([]Raw, 0, len(list))
	for _, entry := range list {
		if m, ok := entry.(Raw); ok {
			items = append(items, m)
		}
	}
	return items
}
