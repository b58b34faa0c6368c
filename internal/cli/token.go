package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rpgo/creditcalc/internal/auth"
	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/spf13/cobra"
)

func newTokenCommand(a *app) *cobra.Command {
	var (
		secret  string
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:           "token",
		Short:         "Issue a bearer token for the HTTP API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				return fmt.Errorf("%w: --secret or $CREDITCALC_JWT_SECRET is required", domain.ErrInvalidInput)
			}
			if ttl < 0 {
				return fmt.Errorf("%w: ttl cannot be negative, got %s", domain.ErrInvalidInput, ttl)
			}
			signer, err := auth.NewSigner(secret, ttl)
			if err != nil {
				return err
			}
			token, err := signer.Issue(subject)
			if err != nil {
				return err
			}
			a.logger.WithField("subject", subject).Debug("issued token")
			fmt.Fprintln(a.out, token)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", os.Getenv("CREDITCALC_JWT_SECRET"), "signing secret; defaults to $CREDITCALC_JWT_SECRET")
	cmd.Flags().StringVar(&subject, "subject", "creditcalc", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime; 0 never expires")
	return cmd
}
