package output

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/rpgo/creditcalc/pkg/dateutil"
)

// XMLFormatter renders the report as an XML document with one <loan> per result.
type XMLFormatter struct{}

func (x XMLFormatter) Name() string { return "xml" }

func (x XMLFormatter) Format(report *Report) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("report")

	for i := range report.Results {
		writeLoanElement(root.CreateElement("loan"), &report.Results[i])
	}
	for _, f := range report.Failures {
		el := root.CreateElement("failure")
		el.CreateAttr("index", strconv.Itoa(f.Index))
		if f.Name != "" {
			el.CreateAttr("name", f.Name)
		}
		el.SetText(f.Error)
	}
	if report.Ledger != nil {
		writeLedgerElement(root.CreateElement("ledger"), report.Ledger)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func writeLoanElement(el *etree.Element, r *domain.AmortizationResult) {
	if r.Name != "" {
		el.CreateAttr("name", r.Name)
	}
	el.CreateAttr("model", string(r.Model))
	el.CreateAttr("resolved", string(r.Resolved))

	el.CreateElement("principal").SetText(FormatAmount(r.Principal))
	if r.Model == domain.ModelAnnuity {
		el.CreateElement("payment").SetText(FormatAmount(r.Payment))
		if r.HasLastPayment() {
			el.CreateElement("last-payment").SetText(FormatAmount(r.LastPayment))
		}
	}
	el.CreateElement("periods").SetText(strconv.Itoa(r.Periods))
	el.CreateElement("interest").SetText(r.RatePercent.String())
	el.CreateElement("overpayment").SetText(FormatAmount(r.Overpayment))

	plan := planOf(r)
	if len(plan) == 0 {
		return
	}
	schedule := el.CreateElement("schedule")
	for _, p := range plan {
		writePeriodElement(schedule.CreateElement("period"), p)
	}
}

func writeLedgerElement(el *etree.Element, l *domain.LedgerSummary) {
	el.CreateAttr("status", string(l.Status))
	el.CreateElement("principal").SetText(FormatAmount(l.Principal))
	el.CreateElement("total-repaid").SetText(FormatAmount(l.TotalRepaid))
	el.CreateElement("remaining").SetText(FormatAmount(l.Remaining))
	entries := el.CreateElement("entries")
	for _, p := range l.Entries {
		writePeriodElement(entries.CreateElement("period"), p)
	}
}

func writePeriodElement(el *etree.Element, p domain.SchedulePeriod) {
	el.CreateAttr("number", strconv.Itoa(p.Period))
	if p.DueDate != nil {
		el.CreateAttr("due", p.DueDate.Format(dateutil.DateLayout))
	}
	el.SetText(FormatAmount(p.Amount))
}
