// Package mapping translates document keys between the persisted snake_case
// form and the camelCase form exchanged with clients.
package mapping

import (
	"slices"
	"strings"
	"unicode"
)

// SnakeToCamel converts "address_as_per_aadhar" to "addressAsPerAadhar".
// Every segment after the first is capitalized and the rest of it lowercased.
func SnakeToCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		r := []rune(strings.ToLower(p))
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// CamelToSnake converts "addressAsPerAadhar" to "address_as_per_aadhar".
func CamelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// KeysToCamel returns a copy of m with every key, including keys of nested
// maps and maps inside slices, converted to camelCase. The values of the
// top-level keys named in opaque (in either case form) are copied with their
// nested keys untouched, for client-defined maps that must round-trip as sent.
func KeysToCamel(m map[string]any, opaque ...string) map[string]any {
	return convertKeys(m, SnakeToCamel, opaque)
}

// KeysToSnake is the inverse of KeysToCamel.
func KeysToSnake(m map[string]any, opaque ...string) map[string]any {
	return convertKeys(m, CamelToSnake, opaque)
}

func keepCase(s string) string { return s }

func convertKeys(m map[string]any, conv func(string) string, opaque []string) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		nk := conv(k)
		if slices.Contains(opaque, k) || slices.Contains(opaque, nk) {
			out[nk] = convertValue(v, keepCase)
			continue
		}
		out[nk] = convertValue(v, conv)
	}
	return out
}

func convertValue(v any, conv func(string) string) any {
	switch val := v.(type) {
	case map[string]any:
		return convertKeys(val, conv, nil)
	case []map[string]any:
		out := make([]map[string]any, len(val))
		for i, item := range val {
			out[i] = convertKeys(item, conv, nil)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = convertValue(item, conv)
		}
		return out
	default:
		return v
	}
}
