// Package normalize reconciles the numeric encodings used by exchange
// APIs: some return JSON numbers, others quote every figure as a
// string. Decimal-looking strings become float64 so callers see one
// representation regardless of source.
package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// decimalRe matches strings made of digits with at most one decimal
// point. The empty string and a lone "." also match; both fail strict
// parsing and are skipped by number before any conversion is attempted.
var decimalRe = regexp.MustCompile(`^[0-9]*\.?[0-9]*$`)

// Value converts every decimal-looking string in v to a float64,
// recursing through nested maps. Non-map values pass through unchanged,
// slices included: array elements keep whatever encoding the exchange
// used.
func Value(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	out := make(map[string]any, len(m))
	for k, ev := range m {
		switch t := ev.(type) {
		case map[string]any:
			out[k] = Value(t)
		case string:
			if f, ok := number(t); ok {
				out[k] = f
			} else {
				out[k] = t
			}
		default:
			out[k] = ev
		}
	}
	return out
}

// number strictly parses a digits-and-one-dot string. A trailing dot
// carries no value and is trimmed, "12." parses as 12.
func number(s string) (float64, bool) {
	if s == "" || s == "." || !decimalRe.MatchString(s) {
		return 0, false
	}
	s = strings.TrimSuffix(s, ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}
