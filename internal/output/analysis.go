package output

import (
	"github.com/rpgo/pension-calculator/internal/calculation"
	"github.com/rpgo/pension-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ScheduleAnalysis collects the notable points of a contribution schedule.
type ScheduleAnalysis struct {
	IncreaseAges []int                       `json:"increase_ages"`
	CeilingAge   int                         `json:"ceiling_age,omitempty"` // first age capped at the ceiling, 0 if never
	FinalWage    decimal.Decimal             `json:"final_wage"`
	Breakeven    *calculation.BreakevenPoint `json:"breakeven,omitempty"`
}

// AnalyzeSchedule finds the increase ages, the first age at the ceiling and
// the breakeven age for a result.
func AnalyzeSchedule(result *domain.Result) ScheduleAnalysis {
	p := result.Parameters
	var a ScheduleAnalysis
	capped := p.Ceiling.Floor()
	for _, r := range result.Records {
		if calculation.IncreaseDue(r.Age, p.IncStartAge, p.IncEvery) {
			a.IncreaseAges = append(a.IncreaseAges, r.Age)
		}
		// The wage is only capped by an increase, so a wage above the
		// ceiling before the first increase does not count.
		if a.CeilingAge == 0 && len(a.IncreaseAges) > 0 && r.Wage.Equal(capped) {
			a.CeilingAge = r.Age
		}
		a.FinalWage = r.Wage
	}
	a.Breakeven = calculation.CalculateBreakevenPoint(p.RetireAge, result.Summary)
	return a
}
