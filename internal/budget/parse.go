// Package budget computes balances, goal progress and history rows from form input.
package budget

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidNumericInput is returned when income, goal or an expense amount is not a number.
var ErrInvalidNumericInput = errors.New("invalid numeric input")

// Bounds on accepted magnitudes. Arithmetic on decimals rescales to a common
// exponent, so an input like 1e999999999 would allocate without limit.
const (
	maxExponent = 64
	maxDigits   = 64
)

// ParseAmount parses a user-typed number. Surrounding whitespace is ignored;
// plain decimals and exponent notation are accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidNumericInput
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidNumericInput
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, ErrInvalidNumericInput
	}
	if len(d.Coefficient().Text(10)) > maxDigits+1 {
		return decimal.Zero, ErrInvalidNumericInput
	}
	return d, nil
}

func parseField(field, s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q: %w", field, s, err)
	}
	return d, nil
}
