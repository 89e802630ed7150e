/*
handlers.go - HTTP handlers for the pension calculator

ENDPOINTS:

	GET  /api/health     Liveness probe
	GET  /api/defaults   Default inputs, accrual formula and input ranges
	POST /api/estimate   Project contributions and estimate the pension

The estimate endpoint answers JSON by default. ?format=<name> renders the
result with any registered output formatter (csv, html, console-lite, ...).

ERROR HANDLING:

	400: malformed body, unknown format or empty window policy
	422: empty projection window rejected by the "error" policy
	500: unexpected calculation failures
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rpgo/pension-calculator/internal/calculation"
	"github.com/rpgo/pension-calculator/internal/domain"
	"github.com/rpgo/pension-calculator/internal/output"
)

// maxBodyBytes bounds estimate request bodies.
const maxBodyBytes = 1 << 16

// Handler serves the calculator endpoints. It is stateless; every request
// recomputes from its own inputs.
type Handler struct {
	Formula domain.AccrualFormula
	// EmptyWindow applies when a request names no empty window policy.
	EmptyWindow domain.EmptyWindowPolicy
	Logger      calculation.Logger
}

// NewHandler creates a handler using the given accrual formula and default
// empty window policy. Zero values select the defaults.
func NewHandler(formula domain.AccrualFormula, emptyWindow domain.EmptyWindowPolicy, logger calculation.Logger) *Handler {
	if formula.IsZero() {
		formula = domain.DefaultAccrualFormula()
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	if emptyWindow == "" {
		emptyWindow = domain.EmptyWindowLastWage
	}
	return &Handler{Formula: formula, EmptyWindow: emptyWindow, Logger: logger}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Defaults returns the starting inputs and the ranges the estimate endpoint clamps to.
func (h *Handler) Defaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DefaultsResponse{
		Parameters: domain.DefaultParameters(),
		Formula:    h.Formula,
		Ranges: map[string]RangeDTO{
			"start_age":       intRange(domain.StartAgeRange),
			"retire_age":      intRange(domain.RetireAgeRange),
			"existing_months": intRange(domain.ExistingMonthsRange),
			"last_wage":       decimalRange(domain.WageRange),
			"ceiling":         decimalRange(domain.WageRange),
			"contrib_rate":    decimalRange(domain.ContribRateRange),
			"inc_pct":         decimalRange(domain.IncPctRange),
			"inc_every":       intRange(domain.IncEveryRange),
			"inc_start_age":   intRange(domain.IncStartAgeRange),
		},
	})
}

// Estimate clamps the submitted inputs, runs the projection and returns the
// schedule with its pension estimate.
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeEstimateRequest(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	policy := h.EmptyWindow
	if req.EmptyWindow != "" {
		policy, err = domain.ParseEmptyWindowPolicy(req.EmptyWindow)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid empty window policy", err)
			return
		}
	}

	params := domain.ClampParameters(req.Parameters)
	engine := &calculation.CalculationEngine{Formula: h.Formula, EmptyWindow: policy, Logger: h.Logger}
	result, err := engine.Calculate(params)
	if err != nil {
		if errors.Is(err, calculation.ErrEmptyProjection) {
			writeError(w, http.StatusUnprocessableEntity, "Empty projection window", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to calculate estimate", err)
		return
	}

	if format := r.URL.Query().Get("format"); format != "" && output.NormalizeFormatName(format) != "json" {
		h.render(w, result, format)
		return
	}
	writeJSON(w, http.StatusOK, toEstimateResponse(result))
}

func (h *Handler) render(w http.ResponseWriter, result *domain.Result, format string) {
	f := output.GetFormatterByName(format)
	if f == nil {
		writeError(w, http.StatusBadRequest, "Unsupported format",
			fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format))
		return
	}
	data, err := f.Format(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render result", err)
		return
	}
	w.Header().Set("Content-Type", contentType(f.Ext()))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func decodeEstimateRequest(w http.ResponseWriter, r *http.Request) (EstimateRequest, error) {
	req := EstimateRequest{Parameters: domain.DefaultParameters()}
	if r.Body != nil {
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return EstimateRequest{}, err
		}
	}
	if req.IncStartAge != nil {
		req.Parameters.IncStartAge = *req.IncStartAge
	} else {
		req.Parameters.IncStartAge = req.StartAge
	}
	return req, nil
}

func toEstimateResponse(result *domain.Result) EstimateResponse {
	s := result.Summary
	metrics := MetricsDTO{
		MonthlyPension:  s.DisplayPension(),
		TotalPaid:       s.DisplayTotal(),
		ServiceYears:    s.ServiceYears,
		AverageTailWage: s.AverageWage,
	}
	if years, ok := s.DisplayBreakeven(); ok {
		v := years.StringFixed(1)
		metrics.BreakevenYears = &v
	}
	if bp := calculation.CalculateBreakevenPoint(result.Parameters.RetireAge, s); bp != nil {
		metrics.BreakevenAge = bp.Age
		metrics.BreakevenMonth = bp.Month
	}
	return EstimateResponse{
		Parameters: result.Parameters,
		Records:    result.Records,
		Series:     result.CumulativeSeries(),
		Summary:    s,
		Metrics:    metrics,
	}
}

func contentType(ext string) string {
	switch strings.ToLower(ext) {
	case "csv":
		return "text/csv; charset=utf-8"
	case "html":
		return "text/html; charset=utf-8"
	case "json":
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
