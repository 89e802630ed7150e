package output

import (
	"fmt"

	"github.com/rpgo/pension-calculator/internal/calculation"
	"github.com/rpgo/pension-calculator/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions behind a result.
func GenerateAssumptions(result *domain.Result) []string {
	p := result.Parameters
	f := result.Formula
	return []string{
		fmt.Sprintf("Contribution rate: %s of insured wage", FormatPercentage(p.ContribRate)),
		fmt.Sprintf("Wage increase: %s every %d year(s) from age %d, capped at %s",
			FormatPercentage(p.IncPct), p.IncEvery, p.IncStartAge, FormatAmount(p.Ceiling, 0)),
		fmt.Sprintf("Accrual: %s per service year up to %s, %s above",
			FormatPercentage(f.LowerRate), FormatAmount(f.BracketLimit, 0), FormatPercentage(f.UpperRate)),
		fmt.Sprintf("Pension wage: average of the last %d projected years", calculation.TailYears),
		"No inflation or discounting of future amounts",
	}
}
