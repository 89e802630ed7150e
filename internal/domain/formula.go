package domain

import (
	"github.com/shopspring/decimal"
)

// AccrualFormula is the two-bracket pension accrual rule. Wage up to
// BracketLimit accrues at LowerRate per service year, the excess at UpperRate.
type AccrualFormula struct {
	BracketLimit decimal.Decimal `yaml:"bracket_limit" json:"bracket_limit" toml:"bracket_limit"`
	LowerRate    decimal.Decimal `yaml:"lower_rate" json:"lower_rate" toml:"lower_rate"`
	UpperRate    decimal.Decimal `yaml:"upper_rate" json:"upper_rate" toml:"upper_rate"`
}

// DefaultAccrualFormula returns 2.5% up to 1500 and 2.0% above.
func DefaultAccrualFormula() AccrualFormula {
	return AccrualFormula{
		BracketLimit: decimal.NewFromInt(1500),
		LowerRate:    decimal.RequireFromString("0.025"),
		UpperRate:    decimal.RequireFromString("0.02"),
	}
}

// IsZero reports whether no field has been set.
func (f AccrualFormula) IsZero() bool {
	return f.BracketLimit.IsZero() && f.LowerRate.IsZero() && f.UpperRate.IsZero()
}

// MonthlyPension applies the formula to an average wage over serviceYears.
func (f AccrualFormula) MonthlyPension(avgWage, serviceYears decimal.Decimal) decimal.Decimal {
	lower := decimal.Min(avgWage, f.BracketLimit).Mul(f.LowerRate)
	upper := decimal.Max(avgWage.Sub(f.BracketLimit), decimal.Zero).Mul(f.UpperRate)
	return serviceYears.Mul(lower.Add(upper))
}
