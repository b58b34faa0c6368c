package output

import (
	"io"

	"github.com/rpgo/creditcalc/internal/domain"
)

// Report is everything one invocation renders: resolved loans, rejected batch
// entries, or a repayment ledger summary.
type Report struct {
	Results  []domain.AmortizationResult `json:"results,omitempty" yaml:"results,omitempty"`
	Failures []domain.BatchFailure       `json:"failures,omitempty" yaml:"failures,omitempty"`
	Ledger   *domain.LedgerSummary       `json:"ledger,omitempty" yaml:"ledger,omitempty"`
}

// NewResultReport wraps a single resolved loan
func NewResultReport(result *domain.AmortizationResult) *Report {
	return &Report{Results: []domain.AmortizationResult{*result}}
}

// NewBatchReport wraps the outcome of a batch run
func NewBatchReport(batch *domain.BatchResult) *Report {
	return &Report{Results: batch.Results, Failures: batch.Failures}
}

// NewLedgerReport wraps a ledger summary
func NewLedgerReport(summary domain.LedgerSummary) *Report {
	return &Report{Ledger: &summary}
}

// GenerateReport renders a report with the named formatter and writes it to w.
func GenerateReport(w io.Writer, report *Report, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// SaveReport renders a report with the named formatter into a timestamped file
// in dir and returns the file name.
func SaveReport(report *Report, format, dir string) (string, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, report, dir, Extension(f))
}
