package calculation

import (
	"github.com/rpgo/pension-calculator/internal/domain"
	money "github.com/rpgo/pension-calculator/pkg/decimal"
)

// IncreaseDue reports whether the periodic wage increase applies at age. The
// schedule fires at incStartAge itself and every incEvery years after it. A
// non-positive interval leaves only the increase at incStartAge.
func IncreaseDue(age, incStartAge, incEvery int) bool {
	if age < incStartAge {
		return false
	}
	if incEvery <= 0 {
		return age == incStartAge
	}
	return (age-incStartAge)%incEvery == 0
}

// roundWage rounds to whole units without letting rounding lift a wage
// that was at or under the ceiling above it.
func roundWage(wage, ceiling money.Money) money.Money {
	r := wage.Units()
	if r.GreaterThan(ceiling) && !wage.GreaterThan(ceiling) {
		return money.NewMoneyFromDecimal(ceiling.Decimal.Floor())
	}
	return r
}

// Project builds the contribution schedule for every age in [StartAge, RetireAge).
//
// The running wage starts at LastWage and is raised by IncPct, capped at the
// ceiling, whenever IncreaseDue fires. A LastWage above the ceiling is kept
// until the first increase caps it. The running wage stays unrounded; each
// year's record carries it rounded to whole units, the monthly payment on that
// rounded wage in cents, and the cumulative sum of the rounded annual payments.
func Project(p domain.Parameters) []domain.YearlyRecord {
	years := p.ProjectionYears()
	records := make([]domain.YearlyRecord, 0, years)
	if years == 0 {
		return records
	}

	ceiling := money.NewMoneyFromDecimal(p.Ceiling)
	wage := money.NewMoneyFromDecimal(p.LastWage)
	cumulative := money.Zero()

	for age := p.StartAge; age < p.RetireAge; age++ {
		if IncreaseDue(age, p.IncStartAge, p.IncEvery) {
			wage = money.Min(wage.Grow(p.IncPct), ceiling)
		}
		shown := roundWage(wage, ceiling)

		monthly := shown.ApplyRate(p.ContribRate).Cents()
		annual := monthly.Annual()
		cumulative = cumulative.Add(annual)

		records = append(records, domain.YearlyRecord{
			Age:            age,
			Wage:           shown.Decimal,
			MonthlyPayment: monthly.Decimal,
			AnnualPayment:  annual.Decimal,
			CumulativePaid: cumulative.Decimal,
		})
	}

	return records
}

// TotalPaid returns the last cumulative value, or zero for an empty schedule.
func TotalPaid(records []domain.YearlyRecord) money.Money {
	if len(records) == 0 {
		return money.Zero()
	}
	return money.NewMoneyFromDecimal(records[len(records)-1].CumulativePaid)
}
