package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rpgo/creditcalc/internal/domain"
)

// ConsoleFormatter prints the short sentences a user sees after one calculation.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	titled := len(report.Results)+len(report.Failures) > 1
	for i := range report.Results {
		r := &report.Results[i]
		if titled {
			fmt.Fprintf(&buf, "== %s ==\n", resultTitle(r, i))
		}
		writeResultLines(&buf, r)
		if titled {
			fmt.Fprintln(&buf)
		}
	}
	for _, f := range report.Failures {
		fmt.Fprintf(&buf, "Loan %d", f.Index+1)
		if f.Name != "" {
			fmt.Fprintf(&buf, " (%s)", f.Name)
		}
		fmt.Fprintf(&buf, ": Incorrect parameters: %s\n", f.Error)
	}
	if len(report.Results) > 1 {
		cmp := CompareLoans(report.Results)
		fmt.Fprintf(&buf, "Lowest overpayment: %s (%s)\n", cmp.CheapestName, FormatAmount(cmp.CheapestOverpayment))
	}
	if report.Ledger != nil {
		writeLedgerLines(&buf, report.Ledger)
	}
	return buf.Bytes(), nil
}

func resultTitle(r *domain.AmortizationResult, idx int) string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("loan %d", idx+1)
}

func writeResultLines(w io.Writer, r *domain.AmortizationResult) {
	switch r.Resolved {
	case domain.QuantityPayment:
		if r.HasLastPayment() {
			fmt.Fprintf(w, "Your monthly payment = %s and the last payment = %s.\n", FormatAmount(r.Payment), FormatAmount(r.LastPayment))
		} else {
			fmt.Fprintf(w, "Your annuity payment = %s!\n", FormatAmount(r.Payment))
		}
	case domain.QuantityPrincipal:
		fmt.Fprintf(w, "Your loan principal = %s!\n", FormatAmount(r.Principal))
	case domain.QuantityPeriods:
		fmt.Fprintln(w, DurationSentence(r.Periods))
		if r.HasLastPayment() {
			fmt.Fprintf(w, "The last payment = %s.\n", FormatAmount(r.LastPayment))
		}
	case domain.QuantitySchedule:
		for _, p := range r.Schedule {
			fmt.Fprintf(w, "Month %d: payment is %s\n", p.Period, FormatAmount(p.Amount))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Overpayment = %s\n", FormatAmount(r.Overpayment))
}

func writeLedgerLines(w io.Writer, s *domain.LedgerSummary) {
	for _, e := range s.Entries {
		fmt.Fprintf(w, "Month %d: repaid %s\n", e.Period, FormatAmount(e.Amount))
	}
	if s.Status == domain.StatusRepaid {
		fmt.Fprintln(w, "The loan has been repaid!")
		return
	}
	fmt.Fprintf(w, "Remaining principal = %s\n", FormatAmount(s.Remaining))
}
