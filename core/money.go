package core

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	currencySymbol = "R$"
	centsPerUnit   = 100
	// maxReais keeps reais*100+cents within an int64
	maxReais = (math.MaxInt64 - (centsPerUnit - 1)) / centsPerUnit
)

// Dot-grouped thousands without decimals, e.g. "1.234" or "1.234.567"
var thousandsGrouped = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// Money is an amount of brazilian reais, stored in cents.
type Money int64

// NewMoney creates an amount from whole reais and cents.
func NewMoney(reais int64, cents int64) Money {
	return Money(reais*centsPerUnit + cents)
}

// ParseMoney parses an amount as it is displayed on the store pages.
// Both "R$ 1.234,56" (brazilian notation) and "1234.56" (decimal notation) are accepted. Without a
// comma, dots are thousands separators when every group after the first has 3 digits ("R$ 1.234").
func ParseMoney(value string) (Money, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimPrefix(cleaned, currencySymbol)
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "\u00a0", "")
	if len(cleaned) == 0 {
		return 0, errors.Join(ErrInvalidMoney, fmt.Errorf("%q does not contain an amount", value))
	}

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	} else if thousandsGrouped.MatchString(cleaned) {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}

	whole, fraction, hasFraction := strings.Cut(cleaned, ".")
	if len(fraction) > 2 || (hasFraction && len(fraction) == 0) {
		return 0, errors.Join(ErrInvalidMoney, fmt.Errorf("%q has an invalid number of decimals", value))
	}
	for len(fraction) < 2 {
		fraction += "0"
	}
	if len(whole) == 0 {
		whole = "0"
	}

	reais, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, errors.Join(ErrInvalidMoney, fmt.Errorf("cannot parse %q: %w", value, err))
	}
	if reais > maxReais {
		return 0, errors.Join(ErrInvalidMoney, fmt.Errorf("%q is too large", value))
	}
	cents, err := strconv.ParseUint(fraction, 10, 8)
	if err != nil {
		return 0, errors.Join(ErrInvalidMoney, fmt.Errorf("cannot parse %q: %w", value, err))
	}
	return NewMoney(int64(reais), int64(cents)), nil
}

func (m Money) parts() (string, int64, int64) {
	sign := ""
	value := int64(m)
	if value < 0 {
		sign = "-"
		value = -value
	}
	return sign, value / centsPerUnit, value % centsPerUnit
}

// Format returns the amount the way the store displays totals, e.g. "R$12,34".
func (m Money) Format() string {
	sign, reais, cents := m.parts()
	return fmt.Sprintf("%s%s%d,%02d", sign, currencySymbol, reais, cents)
}

// Decimal returns the amount in decimal notation, e.g. "12.34".
func (m Money) Decimal() string {
	sign, reais, cents := m.parts()
	return fmt.Sprintf("%s%d.%02d", sign, reais, cents)
}

func (m Money) String() string {
	return m.Format()
}
