package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/pension-calculator/internal/domain"
)

// CalculationEngine composes the projection and the pension estimate.
// It holds no state between runs; each call recomputes from its inputs.
type CalculationEngine struct {
	Formula     domain.AccrualFormula
	EmptyWindow domain.EmptyWindowPolicy
	Logger      Logger
}

// NewCalculationEngine creates an engine with the default accrual formula.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Formula:     domain.DefaultAccrualFormula(),
		EmptyWindow: domain.EmptyWindowLastWage,
		Logger:      NopLogger{},
	}
}

// NewCalculationEngineWithConfig creates an engine using the formula and
// empty window policy of a scenario file. Unset values keep their defaults.
func NewCalculationEngineWithConfig(config *domain.Configuration) *CalculationEngine {
	ce := NewCalculationEngine()
	if config == nil {
		return ce
	}
	if !config.Formula.IsZero() {
		ce.Formula = config.Formula
	}
	if config.EmptyWindow != "" {
		ce.EmptyWindow = config.EmptyWindow
	}
	return ce
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate projects the schedule for p and estimates the pension from it.
func (ce *CalculationEngine) Calculate(p domain.Parameters) (*domain.Result, error) {
	records := Project(p)
	ce.Logger.Debugf("projected %d years from age %d to %d", len(records), p.StartAge, p.RetireAge)

	if len(records) == 0 {
		ce.Logger.Warnf("empty projection window (start age %d, retire age %d), policy %s", p.StartAge, p.RetireAge, ce.policy())
	}
	if p.LastWage.GreaterThan(p.Ceiling) {
		ce.Logger.Warnf("last wage %s exceeds ceiling %s until the first increase", p.LastWage.StringFixed(2), p.Ceiling.StringFixed(2))
	}

	estimator := &PensionEstimator{
		Formula:      ce.Formula,
		EmptyWindow:  ce.policy(),
		FallbackWage: p.LastWage,
	}
	summary, err := estimator.Estimate(p.ExistingMonths, len(records), records, TotalPaid(records).Decimal)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate pension: %w", err)
	}
	if !summary.BreakevenYears.Valid {
		ce.Logger.Warnf("breakeven undefined: %v", ErrZeroPension)
	}
	ce.Logger.Debugf("service years %s, average wage %s, pension %s",
		summary.ServiceYears.StringFixed(2), summary.AverageWage.StringFixed(2), summary.MonthlyPension.StringFixed(2))

	return &domain.Result{
		Parameters: p,
		Formula:    estimator.Formula,
		Records:    records,
		Summary:    summary,
	}, nil
}

// RunScenario calculates the parameters of a scenario file.
func (ce *CalculationEngine) RunScenario(ctx context.Context, config *domain.Configuration) (*domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if config == nil {
		return nil, fmt.Errorf("no configuration provided")
	}
	ce.Logger.Infof("running scenario %q", config.Name)
	result, err := ce.Calculate(config.Parameters)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", config.Name, err)
	}
	return result, nil
}

func (ce *CalculationEngine) policy() domain.EmptyWindowPolicy {
	if ce.EmptyWindow == "" {
		return domain.EmptyWindowLastWage
	}
	return ce.EmptyWindow
}
