package output

import (
	"encoding/json"

	"github.com/thaitax/pit-calculator/internal/domain"
)

// JSONFormatter serializes the filing comparison as pretty-printed JSON.
// Filings are ordered by name like the tabular formats.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.FilingComparison) ([]byte, error) {
	ordered := *results
	ordered.Filings = sortedFilings(results)
	return json.MarshalIndent(ordered, "", "  ")
}
