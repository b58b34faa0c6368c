package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/rpgo/creditcalc/pkg/dateutil"
)

// CSVScheduleExporter writes one row per scheduled payment of every loan.
// Annuity loans without a start date have no plan and contribute a row per
// period with the constant payment.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string { return "schedule-csv" }

func (c CSVScheduleExporter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Period", "DueDate", "Amount"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range report.Results {
		r := &report.Results[i]
		name := resultTitle(r, i)
		for _, p := range planOf(r) {
			due := ""
			if p.DueDate != nil {
				due = p.DueDate.Format(dateutil.DateLayout)
			}
			if err := w.Write([]string{name, strconv.Itoa(p.Period), due, FormatAmount(p.Amount)}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// planOf returns the schedule, or synthesizes an undated one for annuities
func planOf(r *domain.AmortizationResult) []domain.SchedulePeriod {
	if len(r.Schedule) > 0 || r.Model != domain.ModelAnnuity {
		return r.Schedule
	}
	plan := make([]domain.SchedulePeriod, r.Periods)
	for idx := range plan {
		amount := r.Payment
		if idx == r.Periods-1 && r.HasLastPayment() {
			amount = r.LastPayment
		}
		plan[idx] = domain.SchedulePeriod{Period: idx + 1, Amount: amount}
	}
	return plan
}
