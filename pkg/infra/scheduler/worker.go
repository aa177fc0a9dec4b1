package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/utils/errutil"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/m-mizutani/octosched/pkg/utils/metrics"
)

// RetryConfig bounds the attempts of one queued job.
type RetryConfig struct {
	MaxAttempts     int
	InitialInterval time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:     3,
		InitialInterval: time.Second,
	}
}

// Execute runs handler for job with exponential backoff. A job that still fails after
// MaxAttempts is dropped and reported.
func Execute(ctx context.Context, handler interfaces.JobHandler, job *model.QueuedJob, cfg RetryConfig) {
	logger := logging.From(ctx).With(
		slog.String("jobID", job.ID.String()),
		slog.String("repo", job.Job.FullName),
		slog.Any("priority", job.Priority),
	)
	ctx = logging.With(ctx, logger)

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = cfg.InitialInterval
	exp.MaxElapsedTime = 0
	b := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(attempts-1)), ctx)

	attempt := 0
	op := func() error {
		attempt++
		jobData := job.Job
		return handler.HandleRepoJob(ctx, &jobData)
	}
	notify := func(err error, wait time.Duration) {
		logger.Warn("job failed, retrying",
			slog.Any("error", err),
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
		)
	}

	if err := backoff.RetryNotify(op, b, notify); err != nil {
		metrics.JobsProcessed.WithLabelValues(metrics.ResultFailure).Inc()
		errutil.HandleError(ctx, "job dropped after retries", goerr.Wrap(err, "job failed",
			goerr.V("jobID", job.ID),
			goerr.V("attempts", attempt),
		))
		return
	}

	metrics.JobsProcessed.WithLabelValues(metrics.ResultSuccess).Inc()
	logger.Debug("job done", slog.Int("attempts", attempt))
}
