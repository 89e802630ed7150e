package decimal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Unit is the single currency unit all amounts are expressed in.
const Unit = "JD"

var printer = message.NewPrinter(language.English)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Units rounds to whole currency units, half to even.
func (m Money) Units() Money {
	return Money{m.Decimal.RoundBank(0)}
}

// Cents rounds to two decimal places, half to even.
func (m Money) Cents() Money {
	return Money{m.Decimal.RoundBank(2)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// ApplyRate returns the share of the amount selected by rate (e.g. a contribution rate).
func (m Money) ApplyRate(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(rate)}
}

// Grow returns the amount increased by pct (0.10 grows by ten percent).
func (m Money) Grow(pct decimal.Decimal) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(1).Add(pct))}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// Min returns the minimum of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with two fixed decimals.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount with thousands grouping and the currency unit,
// e.g. "JD 8,910.48". places selects the number of decimals shown.
func (m Money) Format(places int32) string {
	return Unit + " " + Group(m.Decimal, places)
}

// Group renders d with thousands separators and a fixed number of decimals.
func Group(d decimal.Decimal, places int32) string {
	f := d.RoundBank(places).InexactFloat64()
	return printer.Sprintf(fmt.Sprintf("%%.%df", places), f)
}

// ParseAmount parses user input such as "1,552", "JD 1552.50" or "3668".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), Unit))
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// ParsePercent parses a percentage such as "21.75" or "21.75%" into the
// fraction 0.2175.
func ParsePercent(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid percentage %q", s)
	}
	return d.Div(decimal.NewFromInt(100)), nil
}

// Percent renders a fraction as a percentage string without the sign, the
// inverse of ParsePercent.
func Percent(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).String()
}
