package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Supported money range. Exponent and coefficient are checked before any
// comparison, since comparing rescales both sides to a common exponent.
const (
	MaxAmountExponent = 12
	// about 24 decimal digits
	maxAmountCoefficientBits = 80
	// MaxAmountLength bounds the text form accepted by ParseAmount
	MaxAmountLength = 40
)

var ErrAmountOutOfRange = errors.New("amount is outside the supported range")

// CheckAmountRange rejects values whose exponent or coefficient is too large
// to compare or format cheaply
func CheckAmountRange(d decimal.Decimal) error {
	exp := d.Exponent()
	if exp > MaxAmountExponent || exp < -MaxAmountExponent {
		return ErrAmountOutOfRange
	}
	if d.Coefficient().BitLen() > maxAmountCoefficientBits {
		return ErrAmountOutOfRange
	}
	return nil
}

// ParseAmount parses s and checks its range. A blank string is zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	if len(s) > MaxAmountLength {
		return decimal.Zero, ErrAmountOutOfRange
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if err := CheckAmountRange(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
