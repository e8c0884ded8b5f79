package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/thaitax/pit-calculator/internal/domain"
	"github.com/thaitax/pit-calculator/pkg/dateutil"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"money":      FormatMoney,
	"rate":       FormatRate,
	"bracketTax": FormatBracketTax,
	"status":     StatusLabel,
	"beYear":     dateutil.ToBuddhistYear,
	"deadline": func(year int) string {
		return dateutil.FilingDeadline(year).Format("02/01/2006")
	},
	"add": func(i, j int) int { return i + j },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.FilingComparison) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.FilingComparison
		Recommendation Recommendation
		Assumptions    []string
	}{results, AnalyzeFilings(results), DefaultAssumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
