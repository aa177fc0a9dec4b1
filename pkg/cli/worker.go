package cli

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octosched/pkg/cli/config"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/usecase"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func workerCommand() *cli.Command {
	var (
		scheduler config.Scheduler
		sentry    config.Sentry
	)

	return &cli.Command{
		Name:  "worker",
		Usage: "Execute scheduled repository jobs stored in Redis",
		Flags: slice.Flatten(scheduler.Flags(), sentry.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting worker",
				slog.Any("Scheduler", &scheduler),
				slog.Any("Sentry", &sentry),
			)

			if !scheduler.Distributed() {
				return goerr.Wrap(types.ErrInvalidOption, "worker requires --redis-addr")
			}
			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			queue, closer, err := scheduler.New(ctx)
			if err != nil {
				return err
			}
			defer closer()

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return queue.Run(ctx, usecase.LogJobHandler{})
		},
	}
}
