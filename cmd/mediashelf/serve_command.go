package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"mediashelf/internal/httpd"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve the catalog over the configured api_bind address until
interrupted. Only one serve instance may run per data directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.logger()

			lock := flock.New(cfg.LockPath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !locked {
				return errors.New("another mediashelf serve instance is already running")
			}
			defer func() { _ = lock.Unlock() }()

			catalogStore, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer catalogStore.Close()

			dispatcher, err := ctx.newDispatcher()
			if err != nil {
				return err
			}
			aggregator, err := ctx.newAggregator(catalogStore)
			if err != nil {
				return err
			}

			server := httpd.New(cfg, catalogStore, dispatcher, aggregator, logger)
			if server == nil {
				return errors.New("api_bind is not configured; set paths.api_bind in the config file")
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := server.Start(runCtx); err != nil {
				return err
			}
			defer server.Stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Serving on %s (press Ctrl-C to stop)\n", cfg.Paths.APIBind)
			<-runCtx.Done()
			return nil
		},
	}
}
