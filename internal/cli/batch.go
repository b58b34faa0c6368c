package cli

import (
	"fmt"

	"github.com/rpgo/creditcalc/internal/output"
	"github.com/spf13/cobra"
)

func newBatchCommand(a *app) *cobra.Command {
	var format, outputDir string
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Resolve every loan in a YAML batch file",
		Long: `Resolve every loan in a YAML batch file. Loans that cannot be resolved are
listed after the results; the command then exits non-zero.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			batch := a.engine.RunBatch(cfg, a.parser)
			if err := a.emit(output.NewBatchReport(batch), format, outputDir); err != nil {
				return err
			}
			if n := len(batch.Failures); n > 0 {
				return fmt.Errorf("%d of %d loans could not be resolved", n, len(cfg.Loans))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "console", "output format")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "write the report to a file in this directory instead of stdout")
	return cmd
}
