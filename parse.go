package frac

import (
	"fmt"
	"strings"
)

// Parse reads "n/d", "n" or a plain decimal such as "0.25". Both sides of
// the slash may be decimals. Parse(f.String()) always equals f.
func Parse(s string) (Frac, error) {
	top, bottom, found := strings.Cut(strings.TrimSpace(s), "/")
	if !found {
		bottom = "1"
	}

	n, ok := parseDecimal(top)
	if !ok {
		return Frac{}, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}
	d, ok := parseDecimal(bottom)
	if !ok {
		return Frac{}, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}
	return New(n, d)
}

func parseDecimal(st string) (Frac, bool) {
	st = strings.TrimSpace(st)
	if st == "" {
		return Frac{}, false
	}
	num, den, ok := decimalDigits(st)
	if !ok {
		return Frac{}, false
	}
	return approx(num, den), true
}
