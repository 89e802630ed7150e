package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()
	assert.Equal(t, 38, p.StartAge)
	assert.Equal(t, 60, p.RetireAge)
	assert.Equal(t, p.StartAge, p.IncStartAge)
	assert.Equal(t, 22, p.ProjectionYears())
	assert.Equal(t, p, ClampParameters(p), "defaults are inside every range")
}

func TestProjectionYears_EmptyWindow(t *testing.T) {
	p := DefaultParameters()
	p.RetireAge = p.StartAge
	assert.Equal(t, 0, p.ProjectionYears())
	p.RetireAge = p.StartAge - 3
	assert.Equal(t, 0, p.ProjectionYears())
}

func TestClampParameters(t *testing.T) {
	p := Parameters{
		StartAge:       12,
		RetireAge:      80,
		ExistingMonths: -4,
		LastWage:       decimal.NewFromInt(60000),
		Ceiling:        decimal.NewFromInt(-10),
		ContribRate:    decimal.NewFromFloat(1.2),
		IncPct:         decimal.NewFromFloat(0.5),
		IncEvery:       0,
		IncStartAge:    99,
	}
	c := ClampParameters(p)

	assert.Equal(t, 18, c.StartAge)
	assert.Equal(t, 70, c.RetireAge)
	assert.Equal(t, 0, c.ExistingMonths)
	assert.True(t, c.LastWage.Equal(decimal.NewFromInt(50000)))
	assert.True(t, c.Ceiling.IsZero())
	assert.True(t, c.ContribRate.Equal(decimal.NewFromInt(1)))
	assert.True(t, c.IncPct.Equal(decimal.NewFromFloat(0.3)))
	assert.Equal(t, 1, c.IncEvery)
	assert.Equal(t, 70, c.IncStartAge)
}

func TestClampParameters_KeepsEmptyWindow(t *testing.T) {
	p := DefaultParameters()
	p.StartAge = 65
	p.RetireAge = 55
	c := ClampParameters(p)
	assert.Equal(t, 65, c.StartAge)
	assert.Equal(t, 55, c.RetireAge)
	assert.Equal(t, 0, c.ProjectionYears())
}

func TestAccrualFormula_MonthlyPension(t *testing.T) {
	f := DefaultAccrualFormula()
	years := decimal.NewFromInt(10)

	below := f.MonthlyPension(decimal.NewFromInt(1000), years)
	assert.True(t, below.Equal(decimal.NewFromInt(250)), "got %s", below)

	at := f.MonthlyPension(decimal.NewFromInt(1500), years)
	assert.True(t, at.Equal(decimal.NewFromInt(375)), "got %s", at)

	above := f.MonthlyPension(decimal.NewFromInt(2000), years)
	assert.True(t, above.Equal(decimal.NewFromInt(475)), "got %s", above)

	assert.True(t, f.MonthlyPension(decimal.Zero, years).IsZero())
	assert.False(t, f.IsZero())
	assert.True(t, AccrualFormula{}.IsZero())
}

func TestParseEmptyWindowPolicy(t *testing.T) {
	for in, want := range map[string]EmptyWindowPolicy{
		"":          EmptyWindowLastWage,
		"last_wage": EmptyWindowLastWage,
		" Zero ":    EmptyWindowZero,
		"ERROR":     EmptyWindowError,
	} {
		got, err := ParseEmptyWindowPolicy(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseEmptyWindowPolicy("mean")
	assert.Error(t, err)
}

func TestSummaryDisplay(t *testing.T) {
	s := Summary{
		MonthlyPension: decimal.RequireFromString("263.72"),
		TotalPaid:      decimal.RequireFromString("8910.48"),
		BreakevenYears: decimal.NewNullDecimal(decimal.RequireFromString("2.8156")),
	}
	assert.Equal(t, "264", s.DisplayPension().String())
	assert.Equal(t, "8910", s.DisplayTotal().String())
	years, ok := s.DisplayBreakeven()
	assert.True(t, ok)
	assert.Equal(t, "2.8", years.String())

	_, ok = Summary{}.DisplayBreakeven()
	assert.False(t, ok)
}

func TestResultCumulativeSeries(t *testing.T) {
	r := &Result{Records: []YearlyRecord{
		{Age: 38, CumulativePaid: decimal.NewFromInt(10)},
		{Age: 39, CumulativePaid: decimal.NewFromInt(20)},
	}}
	series := r.CumulativeSeries()
	assert.Len(t, series, 2)
	assert.Equal(t, 39, series[1].Age)
	assert.True(t, series[1].CumulativePaid.Equal(decimal.NewFromInt(20)))
	assert.Empty(t, (&Result{}).CumulativeSeries())
}
