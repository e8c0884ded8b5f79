package output

import (
	"bytes"
	"fmt"

	"github.com/thaitax/pit-calculator/internal/domain"
)

// ConsoleLiteFormatter provides a concise one line per filing summary.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(results *domain.FilingComparison) ([]byte, error) {
	var buf bytes.Buffer
	for _, f := range sortedFilings(results) {
		r := f.Result
		fmt.Fprintf(&buf, "%s: net=%s tax=%s", f.Name, FormatMoney(r.NetIncome), FormatMoney(r.TaxPayable))
		if rec := r.Reconciliation; rec != nil {
			fmt.Fprintf(&buf, " %s=%s", rec.Status, FormatMoney(rec.Amount()))
		}
		fmt.Fprintln(&buf)
	}
	if rec := AnalyzeFilings(results); rec.FilingName != "" && len(results.Filings) > 1 {
		fmt.Fprintf(&buf, "Recommended: %s\n", rec.FilingName)
	}
	return buf.Bytes(), nil
}
