package output

import "github.com/charmbracelet/lipgloss"

// Theme colors (Flexoki Dark)
var (
	colorBorder    = lipgloss.Color("#575653")
	colorText      = lipgloss.Color("#FFFCF0")
	colorTextMuted = lipgloss.Color("#6F6E69")
	colorAccent    = lipgloss.Color("#3AA99F")
	colorGreen     = lipgloss.Color("#879A39")
	colorOrange    = lipgloss.Color("#DA702C")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Width(60).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	cellStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	metricStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	borderStyle = lipgloss.NewStyle().
			Foreground(colorBorder)
)
