package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhancoach/mundial-stats/internal/bundle"
	"github.com/jhancoach/mundial-stats/internal/config"
	"github.com/jhancoach/mundial-stats/internal/logging"
	"github.com/jhancoach/mundial-stats/internal/source"
	"github.com/jhancoach/mundial-stats/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP stats API",
	Long: `Serve the aggregated tournament statistics over HTTP. An initial
refresh runs at startup and again on every refresh interval; POST
/api/refresh triggers one on demand.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.Logger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, client, err := newOverrideStore(cfg)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	assembler := bundle.NewAssembler(source.NewFetcher(cfg.FetchTimeout))
	refresher := bundle.NewRefresher(assembler, store, bundle.NewHolder())
	server := web.NewServer(refresher, store, cfg.UsageCutoff)

	go refresher.Refresh(ctx)

	if cfg.RefreshInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.RefreshInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					refresher.Refresh(ctx)
				}
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(cfg.ListenAddr)
	}()

	select {
	case <-ctx.Done():
		logger.Infof("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
