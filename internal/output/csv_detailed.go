package output

import (
	"bytes"
	"encoding/csv"

	"github.com/thaitax/pit-calculator/internal/domain"
)

// CSVBreakdownExporter writes one row per filing and bracket.
type CSVBreakdownExporter struct{}

func (c CSVBreakdownExporter) Name() string { return "breakdown-csv" }

func (c CSVBreakdownExporter) Format(results *domain.FilingComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Filing", "Bracket", "Range", "Rate", "IncomeInBracket", "Tax", "Active"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, f := range sortedFilings(results) {
		for i, b := range f.Result.Breakdown {
			row := []string{
				f.Name,
				intToString(i + 1),
				b.Range,
				b.Rate.StringFixed(2),
				b.IncomeInBracket.StringFixed(2),
				b.Tax.StringFixed(2),
				boolToString(b.Active),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
