package menu

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Bounds on the decimal magnitude of an amount, matching the float64 range
const (
	maxAmountMagnitude = 309
	minAmountMagnitude = -323
)

var (
	ErrInvalidChoice = errors.New("invalid choice")
	ErrInvalidAmount = errors.New("invalid amount")
)

// ParseChoice parses a menu selection. Range checking is left to the dispatcher.
func ParseChoice(s string) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidChoice
	}
	return choice, nil
}

// ParseAmount parses a strictly positive, finite amount such as "150", "50.25" or "1e3".
// Values outside the float64 range, such as "1e400", are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	// Checked before Float64 so huge exponents are never expanded
	magnitude := int64(amount.Exponent()) + int64(amount.NumDigits())
	if magnitude > maxAmountMagnitude || magnitude < minAmountMagnitude {
		return decimal.Zero, ErrInvalidAmount
	}

	if f, _ := amount.Float64(); math.IsInf(f, 0) || f == 0 {
		return decimal.Zero, ErrInvalidAmount
	}

	return amount, nil
}
