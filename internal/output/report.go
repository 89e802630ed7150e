package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/pension-calculator/internal/domain"
)

// GenerateReport writes result in the requested format. Console formats go to
// w; file formats are written to path (or a timestamped default) and the path
// is reported on w. "all" writes the console report plus every file format.
func GenerateReport(w io.Writer, result *domain.Result, format, path string) error {
	if NormalizeFormatName(format) == "all" {
		if err := GenerateReport(w, result, "console", ""); err != nil {
			return err
		}
		for _, name := range []string{"csv", "summary-csv", "json", "html"} {
			if err := GenerateReport(w, result, name, ""); err != nil {
				return err
			}
		}
		return nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return unsupported(format)
	}
	if isConsole(f) && path == "" {
		data, err := f.Format(result)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	written, err := WriteFormatted(f, result, path)
	if err != nil {
		return fmt.Errorf("write %s report: %w", f.Name(), err)
	}
	fmt.Fprintf(w, "%s report written to %s\n", strings.ToUpper(f.Name()), written)
	return nil
}

func isConsole(f Formatter) bool {
	return strings.HasPrefix(f.Name(), "console")
}
