package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount  = errors.New("invalid money amount")
	ErrNegativeAmount = errors.New("money cannot be negative")
)

// Max is the largest representable amount; arithmetic saturates here instead of wrapping.
var Max = Money{cents: math.MaxInt64}

// Money is an amount in cents. Wire format is a decimal string with two fraction digits.
type Money struct {
	cents int64
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// Parse accepts "45", "45.5" and "45.00". More than two fraction digits is rejected
// rather than silently rounded.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "-") {
		return Money{}, ErrNegativeAmount
	}
	s = strings.TrimPrefix(s, "+")

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && (!hasFrac || frac == "") {
		return Money{}, ErrInvalidAmount
	}
	if len(frac) > 2 {
		return Money{}, fmt.Errorf("%w: %q has more than two decimal places", ErrInvalidAmount, s)
	}

	if !isDigits(whole) || !isDigits(frac) {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	var units int64
	if whole != "" {
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil || n > math.MaxInt64/100-1 {
			return Money{}, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
		}
		units = n
	}

	var cents int64
	if frac != "" {
		for len(frac) < 2 {
			frac += "0"
		}
		n, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		cents = n
	}

	return Money{cents: units*100 + cents}, nil
}

// MustParse is for package-level constants and seed data.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Add saturates at the int64 bounds.
func (m Money) Add(other Money) Money {
	sum := m.cents + other.cents
	switch {
	case other.cents > 0 && sum < m.cents:
		return Money{cents: math.MaxInt64}
	case other.cents < 0 && sum > m.cents:
		return Money{cents: math.MinInt64}
	}
	return Money{cents: sum}
}

// Mul saturates at the int64 bounds.
func (m Money) Mul(n int) Money {
	if m.cents == 0 || n == 0 {
		return Money{}
	}
	k := int64(n)
	product := m.cents * k
	if product/k != m.cents || (m.cents == -1 && k == math.MinInt64) || (k == -1 && m.cents == math.MinInt64) {
		if (m.cents > 0) == (k > 0) {
			return Money{cents: math.MaxInt64}
		}
		return Money{cents: math.MinInt64}
	}
	return Money{cents: product}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) Float64() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) String() string {
	sign := ""
	c := uint64(m.cents)
	if m.cents < 0 {
		sign = "-"
		c = uint64(-(m.cents + 1)) + 1
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
