package pattern

import "strings"

// NegationMarker flips a pattern's polarity when it is the first character.
const NegationMarker = "!"

// IsNegated reports whether p carries a leading negation marker.
func IsNegated(p string) bool {
	return strings.HasPrefix(p, NegationMarker)
}

// PositivePattern strips a single leading negation marker.
func PositivePattern(p string) string {
	return strings.TrimPrefix(p, NegationMarker)
}

// Positive returns the patterns without a negation marker, in input order.
func Positive(patterns []string) []string {
	var out []string
	for _, p := range patterns {
		if !IsNegated(p) {
			out = append(out, p)
		}
	}
	return out
}

// Negative returns the negated patterns with their marker stripped, in input order.
func Negative(patterns []string) []string {
	var out []string
	for _, p := range patterns {
		if IsNegated(p) {
			out = append(out, PositivePattern(p))
		}
	}
	return out
}
