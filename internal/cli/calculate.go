package cli

import (
	"fmt"
	"strings"

	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/rpgo/creditcalc/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type calculateOptions struct {
	loanType  string
	principal string
	payment   string
	periods   int
	interest  string
	startDate string
	format    string
	outputDir string
}

// loanFlags are the flags that switch the root command out of interactive mode
var loanFlags = []string{"type", "principal", "payment", "periods", "interest", "start-date"}

func newCalculateCommand(a *app) *cobra.Command {
	opts := &calculateOptions{}
	cmd := &cobra.Command{
		Use:   "creditcalc",
		Short: "Loan repayment calculator",
		Long: `creditcalc resolves the one unknown of an annuity loan (principal, monthly
payment or number of periods) or builds a differentiated payment schedule.

Run without flags for interactive prompts.`,
		Example: `  creditcalc --type=annuity --principal=1000000 --periods=60 --interest=10
  creditcalc --type=annuity --payment=8721.8 --periods=120 --interest=5.6
  creditcalc --type=diff --principal=500000 --periods=8 --interest=7.8`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !anyChanged(cmd.Flags(), loanFlags) {
				req, err := promptLoan(a.in, a.out)
				if err != nil {
					return err
				}
				return a.calculate(req, opts.format, opts.outputDir)
			}
			req, err := opts.request(cmd.Flags())
			if err != nil {
				return err
			}
			return a.calculate(req, opts.format, opts.outputDir)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.loanType, "type", "", "payment model: annuity or diff")
	f.StringVar(&opts.principal, "principal", "", "loan principal")
	f.StringVar(&opts.payment, "payment", "", "monthly payment (annuity only)")
	f.IntVar(&opts.periods, "periods", 0, "number of monthly payments")
	f.StringVar(&opts.interest, "interest", "", "nominal annual interest rate in percent")
	f.StringVar(&opts.startDate, "start-date", "", "loan start date (YYYY-MM-DD); adds due dates to the plan")
	f.StringVar(&opts.format, "format", "console", "output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	f.StringVar(&opts.outputDir, "output-dir", "", "write the report to a file in this directory instead of stdout")
	return cmd
}

func (a *app) calculate(req domain.LoanRequest, format, dir string) error {
	params, err := a.parser.BuildParameters(req)
	if err != nil {
		return err
	}
	result, err := a.engine.Calculate(params)
	if err != nil {
		return err
	}
	return a.emit(output.NewResultReport(result), format, dir)
}

// request converts the flags that were set into a LoanRequest. Flags left
// unset stay nil so the engine solves for them.
func (o *calculateOptions) request(flags *pflag.FlagSet) (domain.LoanRequest, error) {
	if !flags.Changed("type") {
		return domain.LoanRequest{}, fmt.Errorf("%w: --type is required", domain.ErrInvalidInput)
	}
	req := domain.LoanRequest{Type: o.loanType, StartDate: o.startDate}

	var err error
	if req.Principal, err = decimalFlag(flags, "principal", o.principal); err != nil {
		return req, err
	}
	if req.Payment, err = decimalFlag(flags, "payment", o.payment); err != nil {
		return req, err
	}
	if req.Interest, err = decimalFlag(flags, "interest", o.interest); err != nil {
		return req, err
	}
	if flags.Changed("periods") {
		periods := o.periods
		req.Periods = &periods
	}
	return req, nil
}

func decimalFlag(flags *pflag.FlagSet, name, value string) (*decimal.Decimal, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("%w: --%s must be a number, got %q", domain.ErrInvalidInput, name, value)
	}
	return &d, nil
}

func anyChanged(flags *pflag.FlagSet, names []string) bool {
	for _, n := range names {
		if flags.Changed(n) {
			return true
		}
	}
	return false
}
