package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/pension-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wageRecords(wages ...string) []domain.YearlyRecord {
	records := make([]domain.YearlyRecord, len(wages))
	for i, w := range wages {
		records[i] = domain.YearlyRecord{Age: 40 + i, Wage: dec(w)}
	}
	return records
}

func TestAverageTailWage(t *testing.T) {
	avg, ok := AverageTailWage(wageRecords("1000", "2000", "3000", "4000"))
	require.True(t, ok)
	assert.True(t, avg.Equal(dec("3000")), "last three only, got %s", avg)

	avg, ok = AverageTailWage(wageRecords("1000", "2000"))
	require.True(t, ok)
	assert.True(t, avg.Equal(dec("1500")), "got %s", avg)

	_, ok = AverageTailWage(nil)
	assert.False(t, ok)
}

func TestEstimate_ExampleScenario(t *testing.T) {
	records := Project(exampleParameters())
	pe := NewPensionEstimator(dec("1552"))

	summary, err := pe.Estimate(52, len(records), records, TotalPaid(records).Decimal)
	require.NoError(t, err)

	assert.InDelta(t, 6.3333, summary.ServiceYears.InexactFloat64(), 0.0001)
	assert.True(t, summary.AverageWage.Equal(dec("1707")))
	assert.True(t, summary.MonthlyPension.Equal(dec("263.72")), "pension %s", summary.MonthlyPension)
	assert.True(t, summary.TotalPaid.Equal(dec("8910.48")))

	require.True(t, summary.BreakevenYears.Valid)
	assert.InDelta(t, 2.8157, summary.BreakevenYears.Decimal.InexactFloat64(), 0.0001)

	years, ok := summary.DisplayBreakeven()
	require.True(t, ok)
	assert.Equal(t, "2.8", years.String())
	assert.Equal(t, "264", summary.DisplayPension().String())
	assert.Equal(t, "8910", summary.DisplayTotal().String())
}

func TestEstimate_Brackets(t *testing.T) {
	pe := NewPensionEstimator(decimal.Zero)

	// Below the bracket: 12 years * 1000 * 2.5% = 300
	s, err := pe.Estimate(144, 0, wageRecords("1000"), dec("100"))
	require.NoError(t, err)
	assert.True(t, s.MonthlyPension.Equal(dec("300")), "got %s", s.MonthlyPension)

	// Above: 10 years * (1500*2.5% + 500*2%) = 10 * 47.5 = 475
	s, err = pe.Estimate(0, 10, wageRecords("2000"), dec("100"))
	require.NoError(t, err)
	assert.True(t, s.MonthlyPension.Equal(dec("475")), "got %s", s.MonthlyPension)
}

func TestEstimate_CustomFormula(t *testing.T) {
	pe := &PensionEstimator{Formula: domain.AccrualFormula{
		BracketLimit: dec("1000"),
		LowerRate:    dec("0.03"),
		UpperRate:    dec("0.01"),
	}}
	s, err := pe.Estimate(0, 1, wageRecords("2000"), dec("480"))
	require.NoError(t, err)
	assert.True(t, s.MonthlyPension.Equal(dec("40")), "got %s", s.MonthlyPension)
	assert.True(t, s.BreakevenYears.Decimal.Equal(dec("1")), "got %s", s.BreakevenYears.Decimal)
}

func TestEstimate_EmptyWindowPolicies(t *testing.T) {
	pe := NewPensionEstimator(dec("1552"))

	s, err := pe.Estimate(52, 0, nil, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, s.AverageWage.Equal(dec("1552")))
	assert.True(t, s.MonthlyPension.IsPositive())
	require.True(t, s.BreakevenYears.Valid)
	assert.True(t, s.BreakevenYears.Decimal.IsZero())

	pe.EmptyWindow = domain.EmptyWindowZero
	s, err = pe.Estimate(52, 0, nil, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, s.MonthlyPension.IsZero())
	assert.False(t, s.BreakevenYears.Valid)
	assert.ErrorIs(t, BreakevenErr(s), ErrZeroPension)

	pe.EmptyWindow = domain.EmptyWindowError
	_, err = pe.Estimate(52, 0, nil, decimal.Zero)
	assert.True(t, errors.Is(err, ErrEmptyProjection))

	pe.EmptyWindow = "bogus"
	_, err = pe.Estimate(52, 0, nil, decimal.Zero)
	assert.Error(t, err)
}

func TestEstimate_ZeroWageHasNoBreakeven(t *testing.T) {
	p := exampleParameters()
	p.LastWage = decimal.Zero
	records := Project(p)

	s, err := NewPensionEstimator(p.LastWage).Estimate(p.ExistingMonths, len(records), records, TotalPaid(records).Decimal)
	require.NoError(t, err)
	assert.True(t, s.MonthlyPension.IsZero())
	assert.False(t, s.BreakevenYears.Valid)
	_, ok := s.DisplayBreakeven()
	assert.False(t, ok)
	assert.NoError(t, BreakevenErr(domain.Summary{BreakevenYears: decimal.NewNullDecimal(dec("1"))}))
}
