package output

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/pension-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for unknown format names.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(result *domain.Result) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Ext is the file extension used when writing to disk.
	Ext() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID        string
	Extension string
	F         func(*domain.Result) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.Result) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                            { return ff.ID }
func (ff FormatterFunc) Ext() string                             { return ff.Extension }

// WriteFormatted runs a formatter and writes the output to path. An empty path
// writes to a file named after the formatter and a timestamp in the working directory. It returns the path written.
func WriteFormatted(f Formatter, result *domain.Result, path string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = fmt.Sprintf("pension_report_%s_%s.%s", f.Name(), nowFunc().Format("20060102_150405"), f.Ext())
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleVerboseFormatter{},
	ConsoleFormatter{},
	CSVScheduleExporter{},
	CSVSummarizer{},
	HTMLFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// Render formats result with the named formatter.
func Render(result *domain.Result, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return f.Format(result)
}

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"verbose":      "console",
	"table":        "console",
	"lite":         "console-lite",
	"summary":      "console-lite",
	"csv-schedule": "csv",
	"csv-summary":  "summary-csv",
	"html-report":  "html",
	"json-pretty":  "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
