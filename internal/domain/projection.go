package domain

import (
	"github.com/shopspring/decimal"
)

// YearlyRecord is one row of the contribution schedule.
type YearlyRecord struct {
	Age            int             `json:"age"`
	Wage           decimal.Decimal `json:"wage"`            // whole units, capped at the ceiling once an increase fired
	MonthlyPayment decimal.Decimal `json:"monthly_payment"` // wage * contribution rate, in cents
	AnnualPayment  decimal.Decimal `json:"annual_payment"`  // monthly payment * 12
	CumulativePaid decimal.Decimal `json:"cumulative_paid"` // prefix sum of AnnualPayment
}

// SeriesPoint is one (age, cumulative paid) sample for chart renderers.
type SeriesPoint struct {
	Age            int             `json:"age"`
	CumulativePaid decimal.Decimal `json:"cumulative_paid"`
}

// Summary holds the pension estimate derived from a projection.
type Summary struct {
	ServiceYears   decimal.Decimal `json:"service_years"`
	AverageWage    decimal.Decimal `json:"average_wage"`
	MonthlyPension decimal.Decimal `json:"monthly_pension"`
	TotalPaid      decimal.Decimal `json:"total_paid"`

	// BreakevenYears is invalid when the estimated pension is zero.
	BreakevenYears decimal.NullDecimal `json:"breakeven_years"`
}

// DisplayPension is the monthly pension rounded to whole units.
func (s Summary) DisplayPension() decimal.Decimal { return s.MonthlyPension.RoundBank(0) }

// DisplayTotal is the total paid rounded to whole units.
func (s Summary) DisplayTotal() decimal.Decimal { return s.TotalPaid.RoundBank(0) }

// DisplayBreakeven is the breakeven horizon rounded to one decimal. ok is false
// when the horizon is undefined.
func (s Summary) DisplayBreakeven() (years decimal.Decimal, ok bool) {
	if !s.BreakevenYears.Valid {
		return decimal.Zero, false
	}
	return s.BreakevenYears.Decimal.RoundBank(1), true
}

// Result is a full calculation: the inputs used, the schedule and its summary.
type Result struct {
	Parameters Parameters     `json:"parameters"`
	Formula    AccrualFormula `json:"formula"`
	Records    []YearlyRecord `json:"records"`
	Summary    Summary        `json:"summary"`
}

// CumulativeSeries returns the (age, cumulative paid) pairs in schedule order.
func (r *Result) CumulativeSeries() []SeriesPoint {
	points := make([]SeriesPoint, len(r.Records))
	for i, rec := range r.Records {
		points[i] = SeriesPoint{Age: rec.Age, CumulativePaid: rec.CumulativePaid}
	}
	return points
}
