package calculation

import (
	"testing"

	"github.com/rpgo/pension-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func TestCalculateBreakevenPoint(t *testing.T) {
	summary := domain.Summary{BreakevenYears: decimal.NewNullDecimal(decimal.RequireFromString("2.8156"))}

	point := CalculateBreakevenPoint(60, summary)
	if point == nil {
		t.Fatalf("expected breakeven point, got nil")
	}
	if point.Age != 62 {
		t.Fatalf("expected age 62, got %d", point.Age)
	}
	// 0.8156 of a year falls in the tenth month
	if point.Month != 10 {
		t.Fatalf("expected month 10, got %d", point.Month)
	}
}

func TestCalculateBreakevenPoint_WholeYears(t *testing.T) {
	summary := domain.Summary{BreakevenYears: decimal.NewNullDecimal(decimal.NewFromInt(3))}

	point := CalculateBreakevenPoint(60, summary)
	if point == nil || point.Age != 63 || point.Month != 1 {
		t.Fatalf("unexpected point: %+v", point)
	}
}

func TestCalculateBreakevenPoint_Undefined(t *testing.T) {
	if point := CalculateBreakevenPoint(60, domain.Summary{}); point != nil {
		t.Fatalf("expected nil for undefined horizon, got %+v", point)
	}
}
