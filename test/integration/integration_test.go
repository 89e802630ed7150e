package integration

import (
	"context"
	"testing"

	"github.com/rpgo/pension-calculator/internal/calculation"
	"github.com/rpgo/pension-calculator/internal/config"
	"github.com/rpgo/pension-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	engine := calculation.NewCalculationEngineWithConfig(cfg)
	result, err := engine.RunScenario(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, result.Records, 22)

	// Schedule invariants: ages are consecutive, wages never exceed the ceiling
	// once increases start, cumulative is the running sum of annual payments.
	running := decimal.Zero
	for i, r := range result.Records {
		assert.Equal(t, cfg.Parameters.StartAge+i, r.Age)
		assert.True(t, r.Wage.LessThanOrEqual(cfg.Parameters.Ceiling), "age %d wage %s", r.Age, r.Wage)
		assert.True(t, r.AnnualPayment.Equal(r.MonthlyPayment.Mul(decimal.NewFromInt(12))))
		running = running.Add(r.AnnualPayment)
		assert.True(t, r.CumulativePaid.Equal(running))
	}
	assert.True(t, result.Summary.TotalPaid.Equal(running))

	// Pension wage is the mean of the last three wages, all at the ceiling.
	assert.True(t, result.Summary.AverageWage.Equal(decimal.NewFromInt(3668)))
	assert.True(t, result.Summary.MonthlyPension.IsPositive())
	require.True(t, result.Summary.BreakevenYears.Valid)
	assert.True(t, result.Summary.BreakevenYears.Decimal.IsPositive())
}

func TestExampleScenario_TOML(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.toml")
	require.NoError(t, err)
	assert.Equal(t, domain.EmptyWindowZero, cfg.EmptyWindow)
	assert.Equal(t, 38, cfg.Parameters.IncStartAge, "inc_start_age defaults to start_age")

	result, err := calculation.NewCalculationEngineWithConfig(cfg).RunScenario(context.Background(), cfg)
	require.NoError(t, err)

	s := result.Summary
	assert.Equal(t, "8910.48", s.TotalPaid.StringFixed(2))
	assert.Equal(t, "264", s.DisplayPension().String())
	assert.Equal(t, "8910", s.DisplayTotal().String())
	years, ok := s.DisplayBreakeven()
	require.True(t, ok)
	assert.Equal(t, "2.8", years.StringFixed(1))
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	assert.NoError(t, parser.ValidateConfiguration(cfg))

	cfg.Parameters.ContribRate = decimal.NewFromInt(2)
	assert.Error(t, parser.ValidateConfiguration(cfg))
}

func TestRecalculationIsIndependent(t *testing.T) {
	engine := calculation.NewCalculationEngine()
	p := domain.DefaultParameters()

	first, err := engine.Calculate(p)
	require.NoError(t, err)
	second, err := engine.Calculate(p)
	require.NoError(t, err)
	assert.Equal(t, first.Summary.TotalPaid.String(), second.Summary.TotalPaid.String())
	assert.Equal(t, len(first.Records), len(second.Records))
}
