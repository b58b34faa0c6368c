package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVSummarizer writes one row per resolved loan, in batch order.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Model", "Resolved", "Principal", "Payment", "LastPayment", "Periods", "Interest", "TotalPaid", "Overpayment"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range report.Results {
		r := &report.Results[i]
		last := ""
		if r.HasLastPayment() {
			last = FormatAmount(r.LastPayment)
		}
		payment := ""
		if !r.Payment.IsZero() {
			payment = FormatAmount(r.Payment)
		}
		row := []string{
			resultTitle(r, i),
			string(r.Model),
			string(r.Resolved),
			FormatAmount(r.Principal),
			payment,
			last,
			strconv.Itoa(r.Periods),
			r.RatePercent.String(),
			FormatAmount(r.TotalPaid()),
			FormatAmount(r.Overpayment),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
