package calculation

import (
	"github.com/rpgo/pension-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakevenPoint locates the breakeven horizon on the calendar of ages.
type BreakevenPoint struct {
	// Age at which cumulative pension received equals total contributions.
	Age int `json:"age"`

	// Month within that year of age (1..12).
	Month int `json:"month"`

	// Fraction (0..1) of the year of age elapsed at breakeven.
	Fraction decimal.Decimal `json:"fraction_of_year"`
}

// CalculateBreakevenPoint converts the breakeven horizon into an age, assuming
// pension payments start at retireAge. It returns nil when the horizon is undefined.
func CalculateBreakevenPoint(retireAge int, summary domain.Summary) *BreakevenPoint {
	if !summary.BreakevenYears.Valid {
		return nil
	}
	years := summary.BreakevenYears.Decimal
	whole := years.Floor()
	frac := years.Sub(whole)

	// compute month from fraction (1..12)
	month := int(frac.Mul(decimal.NewFromInt(12)).Ceil().IntPart())
	if month < 1 {
		month = 1
	}
	if month > 12 {
		month = 12
	}

	return &BreakevenPoint{
		Age:      retireAge + int(whole.IntPart()),
		Month:    month,
		Fraction: frac,
	}
}
