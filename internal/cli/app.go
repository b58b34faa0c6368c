package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rpgo/creditcalc/internal/calculation"
	"github.com/rpgo/creditcalc/internal/config"
	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/rpgo/creditcalc/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries the streams and shared services every subcommand uses
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	logLevel string
	logJSON  bool
	logger   *logrus.Logger

	engine *calculation.CalculationEngine
	parser *config.InputParser
}

// Run executes the command line and returns the process exit code
func Run(args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := NewRootCommand(in, out, errOut)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		reportError(errOut, err)
		return 1
	}
	return 0
}

// NewRootCommand builds the creditcalc command tree
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		in:     in,
		out:    out,
		errOut: errOut,
		engine: calculation.NewCalculationEngine(),
		parser: config.NewInputParser(),
	}

	root := newCalculateCommand(a)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", os.Getenv("LOG_LEVEL"), "log level (debug, info, warn, error); defaults to $LOG_LEVEL or warn")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(a.logLevel, a.logJSON, a.errOut)
		if err != nil {
			return err
		}
		a.logger = logger
		a.engine.SetLogger(logger)
		return nil
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	})

	root.AddCommand(
		newBatchCommand(a),
		newLedgerCommand(a),
		newServeCommand(a),
		newTokenCommand(a),
		newExampleConfigCommand(a),
	)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	return root
}

// emit renders a report to stdout, or into a file when dir is set
func (a *app) emit(report *output.Report, format, dir string) error {
	if dir == "" {
		return output.GenerateReport(a.out, report, format)
	}
	filename, err := output.SaveReport(report, format, dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Report written to %s\n", filename)
	return nil
}

func isParameterError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrAmbiguousParameters) ||
		errors.Is(err, domain.ErrInsufficientPayment)
}

func reportError(w io.Writer, err error) {
	if isParameterError(err) {
		fmt.Fprintf(w, "Incorrect parameters: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
