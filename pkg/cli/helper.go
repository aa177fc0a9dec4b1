package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octosched/pkg/cli/config"
	"github.com/m-mizutani/octosched/pkg/infra"
	"github.com/m-mizutani/octosched/pkg/usecase"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/m-mizutani/octosched/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// Stdout is replaced in tests.
var Stdout io.Writer = os.Stdout

// stack holds the flag groups needed to build the use case layer.
type stack struct {
	githubApp   config.GitHubApp
	firestore   config.Firestore
	bigQuery    config.BigQuery
	policy      config.Policy
	scheduler   config.Scheduler
	sentry      config.Sentry
	concurrency int64
}

func (x *stack) Flags() []cli.Flag {
	return slice.Flatten(
		[]cli.Flag{
			&cli.Int64Flag{
				Name:        "full-sync-concurrency",
				Usage:       "Number of installations reconciled in parallel by full sync",
				Sources:     cli.EnvVars("OCTOSCHED_FULL_SYNC_CONCURRENCY"),
				Value:       15,
				Destination: &x.concurrency,
			},
		},
		x.githubApp.Flags(),
		x.firestore.Flags(),
		x.bigQuery.Flags(),
		x.policy.Flags(),
		x.scheduler.Flags(),
		x.sentry.Flags(),
	)
}

func (x *stack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("GitHubApp", x.githubApp),
		slog.Any("Firestore", &x.firestore),
		slog.Any("BigQuery", &x.bigQuery),
		slog.Any("Policy", &x.policy),
		slog.Any("Scheduler", &x.scheduler),
		slog.Any("Sentry", &x.sentry),
		slog.Int64("FullSyncConcurrency", x.concurrency),
	)
}

// build wires clients into a use case. The returned function releases every opened client.
func (x *stack) build(ctx context.Context) (*usecase.UseCase, config.JobQueue, func(), error) {
	if err := x.sentry.Configure(ctx); err != nil {
		return nil, nil, nil, err
	}

	ghApp, err := x.githubApp.New()
	if err != nil {
		return nil, nil, nil, err
	}

	repo, err := x.firestore.NewRepository(ctx)
	if err != nil {
		return nil, nil, nil, goerr.Wrap(err, "failed to create installation repository")
	}

	policy, err := x.policy.New()
	if err != nil {
		return nil, nil, nil, err
	}

	queue, closeQueue, err := x.scheduler.New(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	closers := []func(){closeQueue}
	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}

	options := []infra.Option{
		infra.WithGitHubApp(ghApp),
		infra.WithRepository(repo),
		infra.WithScheduler(queue),
		infra.WithSchedulePolicy(policy),
	}

	bqClient, err := x.bigQuery.NewClient(ctx)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	if bqClient != nil {
		options = append(options, infra.WithBigQuery(bqClient))
		closers = append(closers, func() { safe.Close(bqClient) })
	} else {
		logging.From(ctx).Warn("bigquery is not configured, sync records are not stored")
	}

	uc := usecase.New(infra.New(options...),
		usecase.WithFullSyncConcurrency(int(x.concurrency)),
	)
	return uc, queue, cleanup, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to write result")
	}
	return nil
}
