package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/rpgo/creditcalc/pkg/dateutil"
)

// ConsoleVerboseFormatter renders a detailed console report: inputs, the
// resolved value, a dated plan when one exists, and totals.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "verbose" }

func (c ConsoleVerboseFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf, "LOAN REPAYMENT REPORT")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf)

	for i := range report.Results {
		writeVerboseResult(&buf, &report.Results[i], i)
	}

	if len(report.Results) > 1 {
		cmp := CompareLoans(report.Results)
		fmt.Fprintln(&buf, "BATCH TOTALS")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		fmt.Fprintf(&buf, "  Loans:               %d\n", len(report.Results))
		fmt.Fprintf(&buf, "  Total principal:     %s\n", FormatAmount(cmp.TotalPrincipal))
		fmt.Fprintf(&buf, "  Total overpayment:   %s\n", FormatAmount(cmp.TotalOverpayment))
		fmt.Fprintf(&buf, "  Lowest overpayment:  %s (%s)\n", cmp.CheapestName, FormatAmount(cmp.CheapestOverpayment))
		fmt.Fprintln(&buf)
	}

	if len(report.Failures) > 0 {
		fmt.Fprintln(&buf, "REJECTED LOANS")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		for _, f := range report.Failures {
			fmt.Fprintf(&buf, "  #%d %-16s %s\n", f.Index+1, f.Name, f.Error)
		}
		fmt.Fprintln(&buf)
	}

	if report.Ledger != nil {
		writeVerboseLedger(&buf, report.Ledger)
	}
	return buf.Bytes(), nil
}

func writeVerboseResult(w io.Writer, r *domain.AmortizationResult, idx int) {
	title := resultTitle(r, idx)
	fmt.Fprintf(w, "LOAN %d: %s\n", idx+1, title)
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "  Payment model:       %s\n", r.Model)
	fmt.Fprintf(w, "  Resolved:            %s\n", r.Resolved)
	fmt.Fprintf(w, "  Principal:           %s\n", FormatAmount(r.Principal))
	if r.Model == domain.ModelAnnuity {
		fmt.Fprintf(w, "  Monthly payment:     %s\n", FormatAmount(r.Payment))
		if r.HasLastPayment() {
			fmt.Fprintf(w, "  Last payment:        %s\n", FormatAmount(r.LastPayment))
		}
	}
	fmt.Fprintf(w, "  Periods:             %d (%s)\n", r.Periods, FormatDuration(r.Periods))
	fmt.Fprintf(w, "  Annual interest:     %s\n", FormatPercentage(r.RatePercent))
	fmt.Fprintf(w, "  Total paid:          %s\n", FormatAmount(r.TotalPaid()))
	fmt.Fprintf(w, "  Overpayment:         %s\n", FormatAmount(r.Overpayment))
	fmt.Fprintln(w)

	if len(r.Schedule) > 0 {
		fmt.Fprintln(w, "  PAYMENT PLAN")
		fmt.Fprintf(w, "  %-8s %-12s %s\n", "Month", "Due", "Amount")
		for _, p := range r.Schedule {
			due := "-"
			if p.DueDate != nil {
				due = p.DueDate.Format(dateutil.DateLayout)
			}
			fmt.Fprintf(w, "  %-8d %-12s %s\n", p.Period, due, FormatAmount(p.Amount))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "  CONVENTIONS:")
	for _, a := range GenerateAssumptions(r) {
		fmt.Fprintf(w, "  • %s\n", a)
	}
	fmt.Fprintln(w)
}

func writeVerboseLedger(w io.Writer, s *domain.LedgerSummary) {
	fmt.Fprintln(w, "REPAYMENT LEDGER")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, e := range s.Entries {
		fmt.Fprintf(w, "  Month %-4d repaid %s\n", e.Period, FormatAmount(e.Amount))
	}
	fmt.Fprintf(w, "  Principal:           %s\n", FormatAmount(s.Principal))
	fmt.Fprintf(w, "  Total repaid:        %s\n", FormatAmount(s.TotalRepaid))
	fmt.Fprintf(w, "  Remaining:           %s\n", FormatAmount(s.Remaining))
	fmt.Fprintf(w, "  Status:              %s\n", s.Status)
}
