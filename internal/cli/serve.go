package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpgo/creditcalc/internal/api"
	"github.com/rpgo/creditcalc/internal/auth"
	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	var (
		addr      string
		rateLimit int
		jwtSecret string
	)
	defaultAddr := os.Getenv("CREDITCALC_ADDR")
	if defaultAddr == "" {
		defaultAddr = ":8080"
	}

	cmd := &cobra.Command{
		Use:           "serve",
		Short:         "Serve the calculator over HTTP",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cleanup, err := routerOptions(rateLimit, jwtSecret)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if opts.Verifier != nil {
				a.logger.Info("bearer token authentication enabled for /v1")
			}
			handler := api.NewHandler(a.engine, a.parser, a.logger)
			server := api.NewServer(addr, api.NewRouter(handler, opts))
			return api.Run(ctx, server, a.logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address; defaults to $CREDITCALC_ADDR or :8080")
	cmd.Flags().IntVar(&rateLimit, "rate-limit", 0, "requests per minute allowed per client; 0 disables")
	cmd.Flags().StringVar(&jwtSecret, "jwt-secret", os.Getenv("CREDITCALC_JWT_SECRET"), "require HS256 bearer tokens signed with this secret; defaults to $CREDITCALC_JWT_SECRET")
	return cmd
}

// routerOptions builds the optional middleware. cleanup must always be called.
func routerOptions(rateLimit int, jwtSecret string) (api.RouterOptions, func(), error) {
	var opts api.RouterOptions
	cleanup := func() {}
	if jwtSecret != "" {
		signer, err := auth.NewSigner(jwtSecret, 0)
		if err != nil {
			return opts, cleanup, err
		}
		opts.Verifier = signer
	}
	if rateLimit > 0 {
		opts.Limiter = api.NewRateLimiter(rateLimit, time.Minute)
		cleanup = opts.Limiter.Stop
	}
	return opts, cleanup, nil
}
