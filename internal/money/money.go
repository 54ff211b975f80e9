// Package money handles monetary amounts stored as int64 cents.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a user-entered amount string into cents.
// Accepts plain decimal input ("200", "161.5", "48.00"); anything else is an error.
func Parse(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return 0, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// Format renders cents with exactly two fraction digits.
func Format(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}
