package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/rpgo/pension-calculator/internal/domain"
)

// Sparkline renders a unicode block sparkline from values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}

// BarChart renders the cumulative series as vertical bars, one per age, with
// a y-axis scaled to the largest value and age labels every few columns.
func BarChart(series []domain.SeriesPoint, height int) string {
	if len(series) == 0 {
		return ""
	}
	if height < 2 {
		height = 2
	}

	values := make([]float64, len(series))
	peak := 0.0
	for i, p := range series {
		values[i] = p.CumulativePaid.InexactFloat64()
		if values[i] > peak {
			peak = values[i]
		}
	}
	if peak == 0 {
		peak = 1
	}

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	labelW := len(chartLabel(peak)) + 1

	var b strings.Builder
	for row := height; row >= 1; row-- {
		top := peak * float64(row) / float64(height)
		bottom := peak * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = chartLabel(peak)
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%*s", labelW, label)))
		b.WriteString(borderStyle.Render("│"))

		var bars strings.Builder
		for _, v := range values {
			switch {
			case v >= top:
				bars.WriteString("██")
			case v > bottom:
				idx := int((v - bottom) / (top - bottom) * 8)
				if idx < 1 {
					idx = 1
				}
				if idx > 8 {
					idx = 8
				}
				bars.WriteString(strings.Repeat(string(blocks[idx]), 2))
			default:
				bars.WriteString("  ")
			}
			bars.WriteString(" ")
		}
		b.WriteString(metricStyle.Render(strings.TrimRight(bars.String(), " ")))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render(fmt.Sprintf("%*s", labelW, "0")))
	b.WriteString(borderStyle.Render("└" + strings.Repeat("─", len(values)*3-1)))
	b.WriteString("\n")

	// Age labels every fourth bar, each bar is three columns wide.
	axis := []byte(strings.Repeat(" ", len(values)*3+2))
	for i, p := range series {
		if i%4 != 0 {
			continue
		}
		lbl := fmt.Sprintf("%d", p.Age)
		copy(axis[i*3:], lbl)
	}
	b.WriteString(strings.Repeat(" ", labelW+1))
	b.WriteString(labelStyle.Render(strings.TrimRight(string(axis), " ")))
	b.WriteString("\n")

	return b.String()
}

func chartLabel(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.0fk", math.Round(v/1e3))
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
