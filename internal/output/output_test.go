package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/pension-calculator/internal/calculation"
	"github.com/rpgo/pension-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleResult(t *testing.T) *domain.Result {
	t.Helper()
	p := domain.DefaultParameters()
	p.RetireAge = 40
	result, err := calculation.NewCalculationEngine().Calculate(p)
	require.NoError(t, err)
	return result
}

func zeroPensionResult(t *testing.T) *domain.Result {
	t.Helper()
	p := domain.DefaultParameters()
	p.RetireAge = p.StartAge
	p.ExistingMonths = 0
	result, err := calculation.NewCalculationEngine().Calculate(p)
	require.NoError(t, err)
	return result
}

func TestNormalizeFormatName(t *testing.T) {
	assert.Equal(t, "console", NormalizeFormatName(" Verbose "))
	assert.Equal(t, "console-lite", NormalizeFormatName("summary"))
	assert.Equal(t, "summary-csv", NormalizeFormatName("csv-summary"))
	assert.Equal(t, "json", NormalizeFormatName("JSON"))
	assert.Equal(t, "unknown", NormalizeFormatName("unknown"))
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"console", "console-lite", "csv", "html", "json", "summary-csv"}, AvailableFormatterNames())
	for _, alias := range AvailableFormatAliases() {
		assert.NotNil(t, GetFormatterByName(alias), "alias %s", alias)
	}
	assert.Nil(t, GetFormatterByName("pdf"))

	_, err := Render(exampleResult(t), "pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "console-lite")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "JD 8,910.48", FormatAmount(decimal.RequireFromString("8910.48"), 2))
	assert.Equal(t, "JD 264", FormatAmount(decimal.RequireFromString("263.72"), 0))
	assert.Equal(t, "21.75%", FormatPercentage(decimal.RequireFromString("0.2175")))

	res := exampleResult(t)
	assert.Equal(t, "2.8", FormatBreakeven(res.Summary))
	assert.Equal(t, "undefined", FormatBreakeven(domain.Summary{}))
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(exampleResult(t))
	require.NoError(t, err)
	s := string(out)
	for _, want := range []string{"INPUTS", "ANNUAL CONTRIBUTION TABLE", "371.27", "4,455.24", "8,910.48", "JD 264", "JD 8,910", "2.8", "ASSUMPTIONS"} {
		assert.Contains(t, s, want)
	}
}

func TestConsoleVerboseFormatter_EmptyWindow(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(zeroPensionResult(t))
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "Projection window is empty")
	assert.Contains(t, s, "undefined")
	assert.NotContains(t, s, "CUMULATIVE PAID")
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(exampleResult(t))
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "Estimated monthly pension: JD 264")
	assert.Contains(t, s, "Total paid: JD 8,910")
	assert.Contains(t, s, "Years to breakeven: 2.8")
	assert.Contains(t, s, "Cumulative: ▄█")
}

func TestCSVScheduleExporter(t *testing.T) {
	out, err := CSVScheduleExporter{}.Format(exampleResult(t))
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Age", "Wage", "MonthlyPayment", "AnnualPayment", "CumulativePaid"}, rows[0])
	assert.Equal(t, []string{"38", "1707", "371.27", "4455.24", "4455.24"}, rows[1])
	assert.Equal(t, []string{"39", "1707", "371.27", "4455.24", "8910.48"}, rows[2])
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(exampleResult(t))
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"38", "40", "2", "6.3333", "1707.00", "264", "8910", "2.8"}, rows[1])

	out, err = CSVSummarizer{}.Format(zeroPensionResult(t))
	require.NoError(t, err)
	rows, err = csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "", rows[1][7])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(exampleResult(t))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Contains(t, doc, "parameters")
	assert.Contains(t, doc, "records")
	assert.Contains(t, doc, "analysis")

	summary := doc["summary"].(map[string]any)
	assert.Equal(t, "8910.48", summary["total_paid"])
	assert.NotNil(t, summary["breakeven_years"])

	out, err = JSONFormatter{}.Format(zeroPensionResult(t))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Nil(t, doc["summary"].(map[string]any)["breakeven_years"])
}

func TestHTMLFormatter(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC) }
	defer func() { nowFunc = orig }()

	out, err := HTMLFormatter{}.Format(exampleResult(t))
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "<polyline")
	assert.Contains(t, s, "<td class=\"num\">371.27</td>")
	assert.Contains(t, s, "JD 264")
	assert.Contains(t, s, "Generated 2025-01-02 03:04")

	out, err = HTMLFormatter{}.Format(zeroPensionResult(t))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<polyline")
	assert.Contains(t, string(out), "breakeven is undefined")
}

func TestWriteFormatted_DefaultPath(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	defer func() { nowFunc = orig }()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	path, err := WriteFormatted(CSVScheduleExporter{}, exampleResult(t), "")
	require.NoError(t, err)
	assert.Equal(t, "pension_report_csv_20250102_030405.csv", path)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestGenerateReport(t *testing.T) {
	res := exampleResult(t)

	var console bytes.Buffer
	require.NoError(t, GenerateReport(&console, res, "lite", ""))
	assert.Contains(t, console.String(), "PENSION ESTIMATE")

	dir := t.TempDir()
	target := filepath.Join(dir, "schedule.csv")
	var msg bytes.Buffer
	require.NoError(t, GenerateReport(&msg, res, "csv", target))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(msg.String()), target))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Age,Wage"))

	assert.ErrorIs(t, GenerateReport(&msg, res, "xml", ""), ErrUnsupportedFormat)
}

func TestAnalyzeSchedule(t *testing.T) {
	p := domain.DefaultParameters()
	res, err := calculation.NewCalculationEngine().Calculate(p)
	require.NoError(t, err)

	a := AnalyzeSchedule(res)
	assert.Equal(t, []int{38, 40, 42, 44, 46, 48, 50, 52, 54, 56, 58}, a.IncreaseAges)
	assert.Equal(t, 56, a.CeilingAge)
	assert.True(t, a.FinalWage.Equal(decimal.NewFromInt(3668)))
	require.NotNil(t, a.Breakeven)
	assert.GreaterOrEqual(t, a.Breakeven.Age, 60)
}

func TestAnalyzeSchedule_CeilingAgeRequiresIncrease(t *testing.T) {
	p := domain.DefaultParameters()
	p.StartAge = 40
	p.RetireAge = 50
	p.LastWage = decimal.NewFromInt(5000)
	p.IncStartAge = 45
	res, err := calculation.NewCalculationEngine().Calculate(p)
	require.NoError(t, err)
	assert.Equal(t, 45, AnalyzeSchedule(res).CeilingAge)

	// Zero ceiling, no increase inside the window: the wage was never capped.
	p.Ceiling = decimal.Zero
	p.IncStartAge = 60
	res, err = calculation.NewCalculationEngine().Calculate(p)
	require.NoError(t, err)
	a := AnalyzeSchedule(res)
	assert.Empty(t, a.IncreaseAges)
	assert.Zero(t, a.CeilingAge)

	out, err := ConsoleVerboseFormatter{}.Format(res)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Wage reaches ceiling")
}

func TestCharts(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil))
	assert.Equal(t, "▁▁", Sparkline([]float64{0, 0}))
	assert.Equal(t, "▁█", Sparkline([]float64{0, 10}))

	res := exampleResult(t)
	chart := BarChart(res.CumulativeSeries(), 4)
	assert.Contains(t, chart, "38")
	assert.Contains(t, chart, "9k")
	assert.Equal(t, "", BarChart(nil, 4))
}
