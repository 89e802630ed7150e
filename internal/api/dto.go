package api

import (
	"github.com/rpgo/pension-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// =============================================================================
// REQUEST DTOs
// =============================================================================

// EstimateRequest carries the calculator inputs. Omitted parameters keep
// their defaults; an omitted inc_start_age follows start_age.
type EstimateRequest struct {
	domain.Parameters
	// IncStartAge shadows the embedded field so omission can be detected.
	IncStartAge *int   `json:"inc_start_age,omitempty"`
	EmptyWindow string `json:"empty_window,omitempty"`
}

// =============================================================================
// RESPONSE DTOs
// =============================================================================

// MetricsDTO holds the three headline numbers rounded for display.
type MetricsDTO struct {
	MonthlyPension  decimal.Decimal `json:"monthly_pension"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	BreakevenYears  *string         `json:"breakeven_years"` // null when the pension is zero
	BreakevenAge    int             `json:"breakeven_age,omitempty"`
	BreakevenMonth  int             `json:"breakeven_month,omitempty"`
	ServiceYears    decimal.Decimal `json:"service_years"`
	AverageTailWage decimal.Decimal `json:"average_tail_wage"`
}

// EstimateResponse is the full answer to an estimate request.
type EstimateResponse struct {
	Parameters domain.Parameters     `json:"parameters"`
	Records    []domain.YearlyRecord `json:"records"`
	Series     []domain.SeriesPoint  `json:"series"`
	Summary    domain.Summary        `json:"summary"`
	Metrics    MetricsDTO            `json:"metrics"`
}

// DefaultsResponse describes the starting inputs and their allowed ranges.
type DefaultsResponse struct {
	Parameters domain.Parameters     `json:"parameters"`
	Formula    domain.AccrualFormula `json:"formula"`
	Ranges     map[string]RangeDTO   `json:"ranges"`
}

// RangeDTO is an inclusive input bound.
type RangeDTO struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// ErrorResponse is the error body for all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func intRange(r domain.IntRange) RangeDTO {
	return RangeDTO{Min: decimal.NewFromInt(int64(r.Min)), Max: decimal.NewFromInt(int64(r.Max))}
}

func decimalRange(r domain.DecimalRange) RangeDTO {
	return RangeDTO{Min: r.Min, Max: r.Max}
}
