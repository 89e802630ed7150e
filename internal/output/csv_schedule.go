package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/pension-calculator/internal/domain"
)

// CSVScheduleExporter writes the annual contribution table, one row per age.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string { return "csv" }
func (c CSVScheduleExporter) Ext() string  { return "csv" }

func (c CSVScheduleExporter) Format(result *domain.Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "Wage", "MonthlyPayment", "AnnualPayment", "CumulativePaid"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range result.Records {
		row := []string{
			intToString(r.Age),
			r.Wage.StringFixed(0),
			r.MonthlyPayment.StringFixed(2),
			r.AnnualPayment.StringFixed(2),
			r.CumulativePaid.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
