package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/m-mizutani/octosched/pkg/utils/metrics"
)

// ScheduleRepository resolves the schedule metadata of repo and registers its recurring job.
// It returns false without touching the scheduler when no metadata applies. With
// triggerImmediately a one-off run at high priority is enqueued as well.
func (x *UseCase) ScheduleRepository(ctx context.Context, repo *model.Repository, triggerImmediately bool) (bool, error) {
	md, err := x.resolveScheduleMetadata(ctx, repo)
	if err != nil {
		return false, err
	}

	logger := logging.From(ctx).With(
		slog.Int64("installation_id", int64(repo.InstallationID)),
		slog.Int64("repo_id", int64(repo.ID)),
		slog.String("full_name", repo.FullName),
	)

	if md == nil {
		logger.Debug("No schedule metadata, skip scheduling")
		return false, nil
	}

	job := model.NewRepoJob(repo, md, logging.CtxTime(ctx))
	scheduleID := types.NewScheduleID(repo.InstallationID, repo.ID)

	err = x.clients.Scheduler().UpsertRecurring(ctx, scheduleID, md.Cron, md.Priority, job)
	metrics.ScheduleOperations.WithLabelValues("upsert", metrics.Result(err)).Inc()
	if err != nil {
		return false, types.WrapCause(types.ErrScheduling, err, "failed to upsert recurring schedule",
			goerr.V("scheduleID", scheduleID),
			goerr.V("cron", md.Cron),
		)
	}

	if triggerImmediately {
		jobID := types.NewOneOffJobID(repo.InstallationID, repo.ID)
		err := x.clients.Scheduler().EnqueueOnce(ctx, jobID, types.JobPriorityHigh, job)
		metrics.ScheduleOperations.WithLabelValues("enqueue", metrics.Result(err)).Inc()
		if err != nil {
			return false, types.WrapCause(types.ErrScheduling, err, "failed to enqueue one-off job",
				goerr.V("jobID", jobID),
			)
		}
	}

	logger.Debug("Repository scheduled",
		slog.String("cron", md.Cron.String()),
		slog.String("priority", md.Priority.String()),
		slog.Bool("triggered", triggerImmediately),
	)
	return true, nil
}

func (x *UseCase) resolveScheduleMetadata(ctx context.Context, repo *model.Repository) (*model.ScheduleMetadata, error) {
	current, err := x.clients.Repository().GetScheduleMetadata(ctx, repo.ID)
	if err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			return nil, goerr.Wrap(err, "failed to get schedule metadata", goerr.V("repoID", repo.ID))
		}
		current = nil
	}

	policy := x.clients.SchedulePolicy()
	if policy == nil {
		return current, nil
	}

	md, err := policy.ComputeSchedule(ctx, repo, current)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compute schedule", goerr.V("repoID", repo.ID))
	}
	if md == nil {
		return nil, nil
	}

	md.RepositoryID = repo.ID
	md.UpdatedAt = logging.CtxTime(ctx)
	if err := md.Validate(); err != nil {
		return nil, goerr.Wrap(err, "schedule policy returned invalid metadata", goerr.V("repoID", repo.ID))
	}
	if err := x.clients.Repository().PutScheduleMetadata(ctx, md); err != nil {
		return nil, goerr.Wrap(err, "failed to save schedule metadata", goerr.V("repoID", repo.ID))
	}

	return md, nil
}

// UnscheduleRepository cancels the recurring job of a repository. Cancelling a repository that
// has no schedule succeeds.
func (x *UseCase) UnscheduleRepository(ctx context.Context, installID types.GitHubAppInstallID, repoID types.GitHubRepoID) error {
	scheduleID := types.NewScheduleID(installID, repoID)

	err := x.clients.Scheduler().CancelRecurring(ctx, scheduleID)
	metrics.ScheduleOperations.WithLabelValues("cancel", metrics.Result(err)).Inc()
	if err != nil {
		return types.WrapCause(types.ErrScheduling, err, "failed to cancel recurring schedule",
			goerr.V("scheduleID", scheduleID),
		)
	}
	return nil
}

// ScheduleRepositories schedules repos in order and stops at the first failure. It returns how
// many recurring schedules were registered.
func (x *UseCase) ScheduleRepositories(ctx context.Context, repos []*model.Repository, triggerImmediately bool) (int, error) {
	var scheduled int
	for _, repo := range repos {
		ok, err := x.ScheduleRepository(ctx, repo, triggerImmediately)
		if err != nil {
			return scheduled, err
		}
		if ok {
			scheduled++
		}
	}
	return scheduled, nil
}

func (x *UseCase) UnscheduleRepositories(ctx context.Context, repos []*model.Repository) error {
	for _, repo := range repos {
		if err := x.UnscheduleRepository(ctx, repo.InstallationID, repo.ID); err != nil {
			return err
		}
	}
	return nil
}
