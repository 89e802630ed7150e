package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/pension-calculator/internal/domain"
)

// ConsoleFormatter provides the three headline metrics and a sparkline.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }
func (c ConsoleFormatter) Ext() string  { return "txt" }

func (c ConsoleFormatter) Format(result *domain.Result) ([]byte, error) {
	var buf bytes.Buffer
	s := result.Summary
	fmt.Fprintln(&buf, "PENSION ESTIMATE")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Ages %d-%d (%d years)\n", result.Parameters.StartAge, result.Parameters.RetireAge, len(result.Records))
	fmt.Fprintf(&buf, "Estimated monthly pension: %s\n", FormatAmount(s.DisplayPension(), 0))
	fmt.Fprintf(&buf, "Total paid: %s\n", FormatAmount(s.DisplayTotal(), 0))
	fmt.Fprintf(&buf, "Years to breakeven: %s\n", FormatBreakeven(s))

	series := result.CumulativeSeries()
	if len(series) > 0 {
		values := make([]float64, len(series))
		for i, p := range series {
			values[i] = p.CumulativePaid.InexactFloat64()
		}
		fmt.Fprintf(&buf, "Cumulative: %s\n", Sparkline(values))
	}
	return buf.Bytes(), nil
}
