package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/rpgo/creditcalc/pkg/dateutil"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"amount":      FormatAmount,
	"pct":         FormatPercentage,
	"duration":    FormatDuration,
	"title":       func(r domain.AmortizationResult, i int) string { return resultTitle(&r, i) },
	"plan":        func(r domain.AmortizationResult) []domain.SchedulePeriod { return planOf(&r) },
	"conventions": func(r domain.AmortizationResult) []string { return GenerateAssumptions(&r) },
	"index1":      func(i int) int { return i + 1 },
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format(dateutil.DateLayout)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*Report
		Comparison Comparison
		Multiple   bool
	}{report, CompareLoans(report.Results), len(report.Results) > 1}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
