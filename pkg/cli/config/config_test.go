package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/octosched/pkg/cli/config"
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/infra/scheduler/local"
)

// parse runs a command with flags and returns after the action has been invoked.
func parse(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  flags,
		Action: func(ctx context.Context, c *cli.Command) error { return nil },
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, f := range flags {
		names[f.Names()[0]] = true
	}
	return names
}

func TestPolicy(t *testing.T) {
	repo := &model.Repository{ID: 1, InstallationID: 2, FullName: "octo/a", Archived: true}

	t.Run("defaults to hourly normal", func(t *testing.T) {
		var cfg config.Policy
		parse(t, cfg.Flags())

		p := gt.R1(cfg.New()).NoError(t)
		md := gt.R1(p.ComputeSchedule(context.Background(), repo, nil)).NoError(t)
		gt.V(t, md.Cron).Equal(types.CronExpr("0 * * * *"))
		gt.V(t, md.Priority).Equal(types.JobPriorityNormal)
	})

	t.Run("skip inactive", func(t *testing.T) {
		var cfg config.Policy
		parse(t, cfg.Flags(), "--schedule-skip-inactive", "--schedule-priority", "low")

		p := gt.R1(cfg.New()).NoError(t)
		md := gt.R1(p.ComputeSchedule(context.Background(), repo, nil)).NoError(t)
		gt.V(t, md).Equal(nil)
	})

	t.Run("invalid priority", func(t *testing.T) {
		var cfg config.Policy
		parse(t, cfg.Flags(), "--schedule-priority", "urgent")

		_, err := cfg.New()
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("invalid cron", func(t *testing.T) {
		var cfg config.Policy
		parse(t, cfg.Flags(), "--schedule-cron", "every minute")

		_, err := cfg.New()
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestScheduler(t *testing.T) {
	t.Run("in-process scheduler without redis", func(t *testing.T) {
		var cfg config.Scheduler
		parse(t, cfg.Flags(), "--scheduler-workers", "2")

		q, closer, err := cfg.New(context.Background())
		gt.NoError(t, err)
		defer closer()

		_, ok := q.(*local.Scheduler)
		gt.True(t, ok)
		var _ interfaces.JobRunner = q
	})

	t.Run("invalid timezone", func(t *testing.T) {
		var cfg config.Scheduler
		parse(t, cfg.Flags(), "--scheduler-timezone", "Mars/Olympus_Mons")

		_, _, err := cfg.New(context.Background())
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("carries redis flags", func(t *testing.T) {
		var cfg config.Scheduler
		names := flagNames(cfg.Flags())
		gt.True(t, names["redis-addr"])
		gt.True(t, names["scheduler-workers"])
	})
}

func TestOptionalBackends(t *testing.T) {
	t.Run("bigquery disabled without dataset", func(t *testing.T) {
		var cfg config.BigQuery
		parse(t, cfg.Flags(), "--bigquery-project-id", "my-project")

		gt.False(t, cfg.Enabled())
		client, err := cfg.NewClient(context.Background())
		gt.NoError(t, err)
		gt.True(t, client == nil)
	})

	t.Run("memory store without firestore project", func(t *testing.T) {
		var cfg config.Firestore
		parse(t, cfg.Flags())

		gt.False(t, cfg.Enabled())
		repo := gt.R1(cfg.NewRepository(context.Background())).NoError(t)
		_, err := repo.GetInstallation(context.Background(), 1)
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})
}
