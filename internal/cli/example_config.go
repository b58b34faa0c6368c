package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExampleConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:           "example-config FILE",
		Short:         "Write an example batch file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.parser.SaveToFile(a.parser.CreateExampleConfiguration(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Example configuration written to %s\n", args[0])
			return nil
		},
	}
}
