package domain

import (
	"github.com/shopspring/decimal"
)

// Parameters is the complete input snapshot for one projection run.
type Parameters struct {
	StartAge       int             `yaml:"start_age" json:"start_age" toml:"start_age"`
	RetireAge      int             `yaml:"retire_age" json:"retire_age" toml:"retire_age"`
	ExistingMonths int             `yaml:"existing_months" json:"existing_months" toml:"existing_months"` // months accrued before StartAge
	LastWage       decimal.Decimal `yaml:"last_wage" json:"last_wage" toml:"last_wage"`                   // current insured monthly wage
	Ceiling        decimal.Decimal `yaml:"ceiling" json:"ceiling" toml:"ceiling"`                         // maximum insurable wage
	ContribRate    decimal.Decimal `yaml:"contrib_rate" json:"contrib_rate" toml:"contrib_rate"`
	IncPct         decimal.Decimal `yaml:"inc_pct" json:"inc_pct" toml:"inc_pct"`
	IncEvery       int             `yaml:"inc_every" json:"inc_every" toml:"inc_every"`
	IncStartAge    int             `yaml:"inc_start_age" json:"inc_start_age" toml:"inc_start_age"`
}

// ProjectionYears is the length of the half-open window [StartAge, RetireAge), never negative.
func (p Parameters) ProjectionYears() int {
	if p.RetireAge <= p.StartAge {
		return 0
	}
	return p.RetireAge - p.StartAge
}

// DefaultParameters returns the calculator's starting inputs.
func DefaultParameters() Parameters {
	return Parameters{
		StartAge:       38,
		RetireAge:      60,
		ExistingMonths: 52,
		LastWage:       decimal.NewFromInt(1552),
		Ceiling:        decimal.NewFromInt(3668),
		ContribRate:    decimal.RequireFromString("0.2175"),
		IncPct:         decimal.RequireFromString("0.10"),
		IncEvery:       2,
		IncStartAge:    38,
	}
}

// IntRange is an inclusive integer bound applied by the input collector.
type IntRange struct {
	Min, Max int
}

// Clamp pins v into the range.
func (r IntRange) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// DecimalRange is an inclusive decimal bound applied by the input collector.
type DecimalRange struct {
	Min, Max decimal.Decimal
}

// Clamp pins v into the range.
func (r DecimalRange) Clamp(v decimal.Decimal) decimal.Decimal {
	return decimal.Min(decimal.Max(v, r.Min), r.Max)
}

// Input ranges enforced at the boundary. The calculation core never re-checks them.
var (
	StartAgeRange       = IntRange{18, 70}
	RetireAgeRange      = IntRange{50, 70}
	ExistingMonthsRange = IntRange{0, 600}
	IncEveryRange       = IntRange{1, 5}
	IncStartAgeRange    = IntRange{18, 70}

	WageRange        = DecimalRange{decimal.Zero, decimal.NewFromInt(50000)}
	ContribRateRange = DecimalRange{decimal.Zero, decimal.NewFromInt(1)}
	IncPctRange      = DecimalRange{decimal.Zero, decimal.RequireFromString("0.3")}
)

// ClampParameters pins every field into its input range independently.
// It does not enforce StartAge < RetireAge; an empty window is a valid input.
func ClampParameters(p Parameters) Parameters {
	return Parameters{
		StartAge:       StartAgeRange.Clamp(p.StartAge),
		RetireAge:      RetireAgeRange.Clamp(p.RetireAge),
		ExistingMonths: ExistingMonthsRange.Clamp(p.ExistingMonths),
		LastWage:       WageRange.Clamp(p.LastWage),
		Ceiling:        WageRange.Clamp(p.Ceiling),
		ContribRate:    ContribRateRange.Clamp(p.ContribRate),
		IncPct:         IncPctRange.Clamp(p.IncPct),
		IncEvery:       IncEveryRange.Clamp(p.IncEvery),
		IncStartAge:    IncStartAgeRange.Clamp(p.IncStartAge),
	}
}
