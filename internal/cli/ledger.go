package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rpgo/creditcalc/internal/calculation"
	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/rpgo/creditcalc/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newLedgerCommand(a *app) *cobra.Command {
	var (
		principal string
		repaid    map[string]string
		format    string
	)
	cmd := &cobra.Command{
		Use:           "ledger",
		Short:         "Check what has been repaid against a principal",
		Example:       "  creditcalc ledger --principal 1000 --repaid 1=250 --repaid 2=250 --repaid 3=500",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decimal.NewFromString(strings.TrimSpace(principal))
			if err != nil {
				return fmt.Errorf("%w: --principal must be a number, got %q", domain.ErrInvalidInput, principal)
			}
			entries, err := parseRepaid(repaid)
			if err != nil {
				return err
			}
			summary, err := calculation.SummarizeLedger(domain.NewRepaymentLedger(p).With(entries))
			if err != nil {
				return err
			}
			return a.emit(output.NewLedgerReport(summary), format, "")
		},
	}
	cmd.Flags().StringVar(&principal, "principal", "", "loan principal")
	cmd.Flags().StringToStringVar(&repaid, "repaid", nil, "amount repaid in a period, as PERIOD=AMOUNT; repeatable")
	cmd.Flags().StringVar(&format, "format", "console", "output format")
	_ = cmd.MarkFlagRequired("principal")
	return cmd
}

func parseRepaid(raw map[string]string) (map[int]decimal.Decimal, error) {
	entries := make(map[int]decimal.Decimal, len(raw))
	for k, v := range raw {
		period, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("%w: period %q must be a whole number", domain.ErrInvalidInput, k)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%w: amount %q for period %d must be a number", domain.ErrInvalidInput, v, period)
		}
		entries[period] = amount
	}
	return entries, nil
}
