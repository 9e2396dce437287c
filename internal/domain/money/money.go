package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"travel-booking/internal/pkg/errs"
)

var (
	ErrNegativeAmount = errs.New("amount cannot be negative")
	ErrInvalidAmount  = errs.New("amount must be a decimal with at most 2 fractional digits")
	ErrAmountTooLarge = errs.New("amount is too large")
)

// Money is a non-negative amount in minor units (cents).
type Money struct {
	cents int64
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// Parse accepts "100", "100.5" and "100.50".
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && frac == "") || len(frac) > 2 {
		return Money{}, ErrInvalidAmount
	}
	for _, part := range []string{whole, frac} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return Money{}, ErrInvalidAmount
			}
		}
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	frac += strings.Repeat("0", 2-len(frac))
	minor, _ := strconv.ParseInt(frac, 10, 64)

	if negative && (units > 0 || minor > 0) {
		return Money{}, ErrNegativeAmount
	}
	if units > (math.MaxInt64-minor)/100 {
		return Money{}, ErrAmountTooLarge
	}
	return Money{cents: units*100 + minor}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) IsZero() bool { return m.cents == 0 }

// Mul multiplies by a non-negative count and reports overflow.
func (m Money) Mul(n int) (Money, error) {
	if n < 0 {
		return Money{}, ErrNegativeAmount
	}
	if n != 0 && m.cents > math.MaxInt64/int64(n) {
		return Money{}, ErrAmountTooLarge
	}
	return Money{cents: m.cents * int64(n)}, nil
}

// String renders two fractional digits, e.g. "100.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
