package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/infra/scheduler"
	"github.com/m-mizutani/octosched/pkg/infra/scheduler/local"
	"github.com/m-mizutani/octosched/pkg/infra/scheduler/redis"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/m-mizutani/octosched/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// JobQueue both registers jobs and executes them.
type JobQueue interface {
	interfaces.JobScheduler
	interfaces.JobRunner
}

type Scheduler struct {
	workers       int64
	maxAttempts   int64
	retryInterval time.Duration
	timezone      string

	redis Redis
}

func (x *Scheduler) Flags() []cli.Flag {
	return append([]cli.Flag{
		&cli.Int64Flag{
			Name:        "scheduler-workers",
			Usage:       "Number of concurrent job workers",
			Category:    "Scheduler",
			Sources:     cli.EnvVars("OCTOSCHED_SCHEDULER_WORKERS"),
			Value:       3,
			Destination: &x.workers,
		},
		&cli.Int64Flag{
			Name:        "scheduler-max-attempts",
			Usage:       "Attempts of one job before it is dropped",
			Category:    "Scheduler",
			Sources:     cli.EnvVars("OCTOSCHED_SCHEDULER_MAX_ATTEMPTS"),
			Value:       3,
			Destination: &x.maxAttempts,
		},
		&cli.DurationFlag{
			Name:        "scheduler-retry-interval",
			Usage:       "Initial backoff interval between job attempts",
			Category:    "Scheduler",
			Sources:     cli.EnvVars("OCTOSCHED_SCHEDULER_RETRY_INTERVAL"),
			Value:       time.Second,
			Destination: &x.retryInterval,
		},
		&cli.StringFlag{
			Name:        "scheduler-timezone",
			Usage:       "Time zone of cron expressions (in-process scheduler only)",
			Category:    "Scheduler",
			Sources:     cli.EnvVars("OCTOSCHED_SCHEDULER_TIMEZONE"),
			Value:       "UTC",
			Destination: &x.timezone,
		},
	}, x.redis.Flags()...)
}

func (x *Scheduler) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("workers", x.workers),
		slog.Int64("maxAttempts", x.maxAttempts),
		slog.Duration("retryInterval", x.retryInterval),
		slog.String("timezone", x.timezone),
		slog.Any("redis", &x.redis),
	)
}

func (x *Scheduler) retry() scheduler.RetryConfig {
	return scheduler.RetryConfig{
		MaxAttempts:     int(x.maxAttempts),
		InitialInterval: x.retryInterval,
	}
}

// New builds the Redis scheduler when an address is configured and the in-process one otherwise.
// The returned function releases the connection.
func (x *Scheduler) New(ctx context.Context) (JobQueue, func(), error) {
	if x.redis.Enabled() {
		client, err := x.redis.Connect(ctx)
		if err != nil {
			return nil, nil, err
		}

		options := append(x.redis.Options(),
			redis.WithWorkers(int(x.workers)),
			redis.WithRetry(x.retry()),
		)
		logging.From(ctx).Info("using redis job scheduler", slog.Any("redis", &x.redis))
		return redis.New(client, options...), func() { safe.Close(client) }, nil
	}

	loc, err := time.LoadLocation(x.timezone)
	if err != nil {
		return nil, nil, types.WrapCause(types.ErrInvalidOption, err, "invalid scheduler timezone",
			goerr.V("timezone", x.timezone),
		)
	}

	logging.From(ctx).Info("using in-process job scheduler")
	sched := local.New(
		local.WithWorkers(int(x.workers)),
		local.WithRetry(x.retry()),
		local.WithLocation(loc),
	)
	return sched, func() {}, nil
}

// Distributed reports whether jobs live outside this process.
func (x *Scheduler) Distributed() bool {
	return x.redis.Enabled()
}
