package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/pension-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TailYears is the number of trailing schedule years averaged for the pension wage.
const TailYears = 3

var (
	// ErrEmptyProjection is returned when the schedule has no records and the
	// empty window policy is EmptyWindowError.
	ErrEmptyProjection = errors.New("projection window is empty")

	// ErrZeroPension marks an undefined breakeven horizon.
	ErrZeroPension = errors.New("estimated pension is zero")
)

var monthsPerYear = decimal.NewFromInt(12)

// AverageTailWage averages the wage over the last TailYears records, or over
// all of them when fewer exist. ok is false for an empty slice.
func AverageTailWage(records []domain.YearlyRecord) (avg decimal.Decimal, ok bool) {
	if len(records) == 0 {
		return decimal.Zero, false
	}
	start := len(records) - TailYears
	if start < 0 {
		start = 0
	}
	tail := records[start:]
	sum := decimal.Zero
	for _, r := range tail {
		sum = sum.Add(r.Wage)
	}
	return sum.Div(decimal.NewFromInt(int64(len(tail)))), true
}

// PensionEstimator turns a schedule tail into the summary metrics.
type PensionEstimator struct {
	Formula     domain.AccrualFormula
	EmptyWindow domain.EmptyWindowPolicy
	// FallbackWage is averaged in place of the tail when EmptyWindow is EmptyWindowLastWage.
	FallbackWage decimal.Decimal
}

// NewPensionEstimator creates an estimator with the default formula and policy.
func NewPensionEstimator(fallbackWage decimal.Decimal) *PensionEstimator {
	return &PensionEstimator{
		Formula:      domain.DefaultAccrualFormula(),
		EmptyWindow:  domain.EmptyWindowLastWage,
		FallbackWage: fallbackWage,
	}
}

// Estimate computes service years, the average tail wage, the monthly pension
// and the breakeven horizon (years of pension needed to recover cumulative).
//
// Service years are (existingMonths + projectionYears*12) / 12 as a fraction.
// The breakeven horizon is left invalid when the pension is not positive.
func (pe *PensionEstimator) Estimate(existingMonths, projectionYears int, tail []domain.YearlyRecord, cumulative decimal.Decimal) (domain.Summary, error) {
	avg, ok := AverageTailWage(tail)
	if !ok {
		switch pe.EmptyWindow {
		case domain.EmptyWindowError:
			return domain.Summary{}, ErrEmptyProjection
		case domain.EmptyWindowZero:
			avg = decimal.Zero
		case domain.EmptyWindowLastWage, "":
			avg = pe.FallbackWage
		default:
			return domain.Summary{}, fmt.Errorf("unknown empty window policy %q", pe.EmptyWindow)
		}
	}

	formula := pe.Formula
	if formula.IsZero() {
		formula = domain.DefaultAccrualFormula()
	}

	months := decimal.NewFromInt(int64(existingMonths + projectionYears*12))
	// Applying the formula per month of service keeps the result exact for
	// service periods that are not whole years.
	pension := formula.MonthlyPension(avg, months).Div(monthsPerYear)

	summary := domain.Summary{
		ServiceYears:   months.Div(monthsPerYear),
		AverageWage:    avg,
		MonthlyPension: pension,
		TotalPaid:      cumulative,
	}
	if pension.IsPositive() {
		summary.BreakevenYears = decimal.NewNullDecimal(cumulative.Div(pension.Mul(monthsPerYear)))
	}
	return summary, nil
}

// BreakevenErr returns ErrZeroPension when the summary has no breakeven horizon.
func BreakevenErr(s domain.Summary) error {
	if s.BreakevenYears.Valid {
		return nil
	}
	return ErrZeroPension
}
