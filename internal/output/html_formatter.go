package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/rpgo/pension-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with an inline SVG chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }
func (h HTMLFormatter) Ext() string  { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"amount": FormatAmount,
	"pct":    FormatPercentage,
	"fixed":  func(d decimal.Decimal, places int32) string { return d.StringFixed(places) },
}).Parse(htmlTemplateSource))

const (
	chartWidth   = 640
	chartHeight  = 240
	chartPadding = 40
)

// svgChart holds precomputed geometry for the cumulative line chart.
type svgChart struct {
	Width, Height int
	Points        string
	Labels        []svgLabel
	MaxLabel      string
}

type svgLabel struct {
	X    int
	Text string
}

func buildSVGChart(series []domain.SeriesPoint) *svgChart {
	if len(series) == 0 {
		return nil
	}
	maxV := 0.0
	for _, p := range series {
		if v := p.CumulativePaid.InexactFloat64(); v > maxV {
			maxV = v
		}
	}
	plotW := float64(chartWidth - 2*chartPadding)
	plotH := float64(chartHeight - 2*chartPadding)
	step := 0.0
	if len(series) > 1 {
		step = plotW / float64(len(series)-1)
	}
	c := &svgChart{Width: chartWidth, Height: chartHeight, MaxLabel: FormatAmount(series[len(series)-1].CumulativePaid, 0)}
	pts := make([]string, len(series))
	every := len(series)/8 + 1
	for i, p := range series {
		x := float64(chartPadding) + step*float64(i)
		y := float64(chartHeight - chartPadding)
		if maxV > 0 {
			y -= p.CumulativePaid.InexactFloat64() / maxV * plotH
		}
		pts[i] = fmt.Sprintf("%.1f,%.1f", x, y)
		if i%every == 0 || i == len(series)-1 {
			c.Labels = append(c.Labels, svgLabel{X: int(x), Text: intToString(p.Age)})
		}
	}
	c.Points = strings.Join(pts, " ")
	return c
}

func (h HTMLFormatter) Format(result *domain.Result) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Result
		Analysis    ScheduleAnalysis
		Breakeven   string
		Chart       *svgChart
		Assumptions []string
		Generated   string
	}{
		Result:      result,
		Analysis:    AnalyzeSchedule(result),
		Breakeven:   FormatBreakeven(result.Summary),
		Chart:       buildSVGChart(result.CumulativeSeries()),
		Assumptions: GenerateAssumptions(result),
		Generated:   nowFunc().Format("2006-01-02 15:04"),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
