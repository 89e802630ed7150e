package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/pension-calculator/internal/domain"
)

// CSVSummarizer writes one header and one row with the summary metrics.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "summary-csv" }
func (c CSVSummarizer) Ext() string  { return "csv" }

func (c CSVSummarizer) Format(result *domain.Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"StartAge", "RetireAge", "ProjectionYears", "ServiceYears", "AverageWage", "EstimatedMonthlyPension", "TotalPaid", "YearsToBreakeven"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	s := result.Summary
	breakeven := ""
	if years, ok := s.DisplayBreakeven(); ok {
		breakeven = years.StringFixed(1)
	}
	row := []string{
		intToString(result.Parameters.StartAge),
		intToString(result.Parameters.RetireAge),
		intToString(len(result.Records)),
		s.ServiceYears.StringFixed(4),
		s.AverageWage.StringFixed(2),
		s.DisplayPension().StringFixed(0),
		s.DisplayTotal().StringFixed(0),
		breakeven,
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
