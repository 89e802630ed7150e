package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rpgo/pension-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders inputs, the contribution table, the metrics
// and the cumulative chart for a terminal.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }
func (c ConsoleVerboseFormatter) Ext() string  { return "txt" }

func (c ConsoleVerboseFormatter) Format(result *domain.Result) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, titleStyle.Render("SOCIAL SECURITY PENSION PROJECTION"))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, headerStyle.Render("  INPUTS"))
	fmt.Fprintln(&buf, InputsTable(result.Parameters))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, headerStyle.Render("  ANNUAL CONTRIBUTION TABLE"))
	if len(result.Records) == 0 {
		fmt.Fprintln(&buf, warnStyle.Render("  Projection window is empty (retirement age is not after start age)."))
	} else {
		fmt.Fprintln(&buf, ScheduleTable(result.Records))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, headerStyle.Render("  RESULTS"))
	writeMetrics(&buf, result)
	fmt.Fprintln(&buf)

	if series := result.CumulativeSeries(); len(series) > 0 {
		fmt.Fprintln(&buf, headerStyle.Render("  CUMULATIVE PAID"))
		fmt.Fprint(&buf, BarChart(series, 8))
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, headerStyle.Render("  ASSUMPTIONS"))
	for _, a := range GenerateAssumptions(result) {
		fmt.Fprintf(&buf, "  • %s\n", labelStyle.Render(a))
	}

	return buf.Bytes(), nil
}

// ScheduleTable renders the yearly records as a bordered table.
func ScheduleTable(records []domain.YearlyRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			intToString(r.Age),
			FormatAmount(r.Wage, 0),
			FormatAmount(r.MonthlyPayment, 2),
			FormatAmount(r.AnnualPayment, 2),
			FormatAmount(r.CumulativePaid, 2),
		})
	}
	return newTable("Age", "Wage", "Monthly payment", "Annual payment", "Cumulative paid").
		Rows(rows...).
		String()
}

// InputsTable renders the parameters as a two-column table.
func InputsTable(p domain.Parameters) string {
	return newTable("Input", "Value").
		Row("Start age", intToString(p.StartAge)).
		Row("Retirement age", intToString(p.RetireAge)).
		Row("Existing contribution months", intToString(p.ExistingMonths)).
		Row("Last insured wage", FormatAmount(p.LastWage, 2)).
		Row("Wage ceiling", FormatAmount(p.Ceiling, 2)).
		Row("Contribution rate", FormatPercentage(p.ContribRate)).
		Row("Increase", FormatPercentage(p.IncPct)).
		Row("Increase every N years", intToString(p.IncEvery)).
		Row("Increase start age", intToString(p.IncStartAge)).
		String()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return cellStyle
			}
			return cellStyle.Align(lipgloss.Right)
		})
}

func writeMetrics(buf *bytes.Buffer, result *domain.Result) {
	s := result.Summary
	analysis := AnalyzeSchedule(result)

	metric := func(label, value string) {
		fmt.Fprintf(buf, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-32s", label)), metricStyle.Render(value))
	}
	metric("Estimated monthly pension", FormatAmount(s.DisplayPension(), 0))
	metric("Total paid", FormatAmount(s.DisplayTotal(), 0))

	breakeven := FormatBreakeven(s)
	if analysis.Breakeven != nil {
		breakeven += fmt.Sprintf(" (age %d, month %d)", analysis.Breakeven.Age, analysis.Breakeven.Month)
	}
	metric("Years to breakeven", breakeven)
	metric("Service years", s.ServiceYears.StringFixed(2))
	metric("Average wage (last years)", FormatAmount(s.AverageWage, 2))

	if analysis.CeilingAge > 0 {
		metric("Wage reaches ceiling at age", intToString(analysis.CeilingAge))
	}
	if len(analysis.IncreaseAges) > 0 {
		ages := make([]string, len(analysis.IncreaseAges))
		for i, a := range analysis.IncreaseAges {
			ages[i] = intToString(a)
		}
		metric("Increases at ages", strings.Join(ages, ", "))
	}
	if !s.BreakevenYears.Valid {
		fmt.Fprintln(buf, warnStyle.Render("  Estimated pension is zero; breakeven is undefined."))
	}
}
