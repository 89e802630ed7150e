package output

import (
	"encoding/json"

	"github.com/rpgo/pension-calculator/internal/domain"
)

// JSONFormatter serializes the result and its schedule analysis as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }
func (j JSONFormatter) Ext() string  { return "json" }

func (j JSONFormatter) Format(result *domain.Result) ([]byte, error) {
	doc := struct {
		*domain.Result
		Analysis ScheduleAnalysis `json:"analysis"`
	}{result, AnalyzeSchedule(result)}
	return json.MarshalIndent(doc, "", "  ")
}
