// Package tui is a live calculator: every edit to an input recomputes the
// projection and redraws the table, metrics and chart.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/pension-calculator/internal/calculation"
	"github.com/rpgo/pension-calculator/internal/domain"
	"github.com/rpgo/pension-calculator/internal/form"
	"github.com/rpgo/pension-calculator/internal/output"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AA99F")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6F6E69"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DA702C")).Bold(true)
	metricStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#879A39")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D14D41"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#575653")).Padding(0, 1)
)

// Model is the bubbletea model for the live calculator.
type Model struct {
	engine *calculation.CalculationEngine
	fields []form.Field
	inputs []textinput.Model
	cursor int

	params domain.Parameters
	result *domain.Result
	err    error

	width  int
	height int
}

// New creates the model seeded with base and computes the first result.
func New(engine *calculation.CalculationEngine, base domain.Parameters) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	m := Model{engine: engine, fields: form.Fields(), params: base}
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 12
		ti.Width = 12
		ti.Placeholder = f.Hint()
		ti.SetValue(f.Get(base))
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	m.recompute()
	return m
}

// Params returns the parameters behind the current result.
func (m Model) Params() domain.Parameters { return m.params }

// Result returns the current calculation, nil if the inputs could not be computed.
func (m Model) Result() *domain.Result { return m.result }

// Err returns the current input or calculation error.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "enter":
			cmd := m.focus((m.cursor + 1) % len(m.inputs))
			return m, cmd
		case "shift+tab", "up":
			cmd := m.focus((m.cursor - 1 + len(m.inputs)) % len(m.inputs))
			return m, cmd
		}
	}

	var cmd tea.Cmd
	before := m.inputs[m.cursor].Value()
	m.inputs[m.cursor], cmd = m.inputs[m.cursor].Update(msg)
	if m.inputs[m.cursor].Value() != before {
		m.recompute()
	}
	return m, cmd
}

// focus moves the cursor to input i.
func (m *Model) focus(i int) tea.Cmd {
	m.inputs[m.cursor].Blur()
	m.cursor = i
	return m.inputs[m.cursor].Focus()
}

// recompute parses all inputs, clamps them and reruns the calculation. On a
// parse error the previous result stays on screen.
func (m *Model) recompute() {
	values := make(map[string]string, len(m.fields))
	for i, f := range m.fields {
		values[f.Key] = m.inputs[i].Value()
	}
	params, err := form.Apply(m.params, values)
	if err != nil {
		m.err = err
		return
	}
	result, err := m.engine.Calculate(params)
	if err != nil {
		m.err = err
		return
	}
	m.params = params
	m.result = result
	m.err = nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Social Security Pension Calculator"))
	b.WriteString("\n\n")

	left := panelStyle.Render(m.viewInputs())
	right := panelStyle.Render(m.viewMetrics())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	if m.result != nil && len(m.result.Records) > 0 {
		b.WriteString(output.BarChart(m.result.CumulativeSeries(), 6))
		b.WriteString(output.ScheduleTable(m.result.Records))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render("tab/↓ next • shift+tab/↑ previous • esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewInputs() string {
	var b strings.Builder
	for i, f := range m.fields {
		label := labelStyle.Render(fmt.Sprintf("%-30s", f.Label))
		if i == m.cursor {
			label = focusedStyle.Render(fmt.Sprintf("%-30s", f.Label))
		}
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewMetrics() string {
	if m.result == nil {
		return labelStyle.Render("No result")
	}
	s := m.result.Summary
	lines := []string{
		labelStyle.Render("Estimated monthly pension"),
		metricStyle.Render(output.FormatAmount(s.DisplayPension(), 0)),
		"",
		labelStyle.Render("Total paid"),
		metricStyle.Render(output.FormatAmount(s.DisplayTotal(), 0)),
		"",
		labelStyle.Render("Years to breakeven"),
		metricStyle.Render(output.FormatBreakeven(s)),
	}
	if len(m.result.Records) == 0 {
		lines = append(lines, "", errorStyle.Render("Retirement age must be after start age"))
	}
	return strings.Join(lines, "\n")
}

// Run starts the interactive program.
func Run(engine *calculation.CalculationEngine, base domain.Parameters) (domain.Parameters, error) {
	final, err := tea.NewProgram(New(engine, base), tea.WithAltScreen()).Run()
	if err != nil {
		return base, fmt.Errorf("TUI error: %w", err)
	}
	return final.(Model).Params(), nil
}
