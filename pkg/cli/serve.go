package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octosched/pkg/controller/server"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/usecase"
	"github.com/m-mizutani/octosched/pkg/utils/errutil"
	"github.com/m-mizutani/octosched/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr             string
		adminToken       string
		skipFullSync     bool
		fullSyncInterval time.Duration
		noWorker         bool

		st stack
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("OCTOSCHED_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "admin-token",
			Usage:       "Bearer token required by /admin endpoints. Admin API is open if empty",
			Sources:     cli.EnvVars("OCTOSCHED_ADMIN_TOKEN"),
			Destination: &adminToken,
		},
		&cli.BoolFlag{
			Name:        "skip-full-sync",
			Usage:       "Do not reconcile every installation at startup",
			Sources:     cli.EnvVars("OCTOSCHED_SKIP_FULL_SYNC"),
			Destination: &skipFullSync,
		},
		&cli.DurationFlag{
			Name:        "full-sync-interval",
			Usage:       "Interval of periodic full sync. Disabled if zero",
			Sources:     cli.EnvVars("OCTOSCHED_FULL_SYNC_INTERVAL"),
			Destination: &fullSyncInterval,
		},
		&cli.BoolFlag{
			Name:        "no-worker",
			Usage:       "Do not execute jobs in this process (Redis scheduler only)",
			Sources:     cli.EnvVars("OCTOSCHED_NO_WORKER"),
			Destination: &noWorker,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags:   slice.Flatten(serveFlags, st.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Int("AdminToken.len", len(adminToken)),
				slog.Bool("SkipFullSync", skipFullSync),
				slog.Duration("FullSyncInterval", fullSyncInterval),
				slog.Bool("NoWorker", noWorker),
				slog.Any("config", &st),
			)

			uc, queue, cleanup, err := st.build(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			if noWorker && !st.scheduler.Distributed() {
				logging.Default().Warn("--no-worker is ignored with the in-process scheduler")
			}
			if !noWorker || !st.scheduler.Distributed() {
				go func() {
					if err := queue.Run(ctx, usecase.LogJobHandler{}); err != nil {
						errutil.HandleError(ctx, "job scheduler stopped", err)
					}
				}()
			}

			go runFullSync(ctx, uc, !skipFullSync, fullSyncInterval)

			s := server.New(uc,
				server.WithGitHubSecret(st.githubApp.Secret()),
				server.WithAdminToken(adminToken),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      5 * time.Minute,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}

type fullSyncer interface {
	FullSync(ctx context.Context) (*model.FullSyncResult, error)
}

// runFullSync sweeps once at startup when atStartup is set and then every interval until ctx is
// cancelled.
func runFullSync(ctx context.Context, uc fullSyncer, atStartup bool, interval time.Duration) {
	sweep := func() {
		result, err := uc.FullSync(ctx)
		if err != nil {
			errutil.HandleError(ctx, "full sync failed", err)
			return
		}
		logging.From(ctx).Info("full sync finished",
			slog.Int("total", result.Total),
			slog.Int("succeeded", result.Succeeded),
			slog.Any("failed", result.Failed),
		)
	}

	if atStartup {
		sweep()
	}
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}
