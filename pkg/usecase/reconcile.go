package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/m-mizutani/octosched/pkg/utils/metrics"
)

// ReconcileInstallation converges the local record of an installation and its repositories
// with GitHub, then re-establishes one recurring schedule per tracked repository.
//
// Every schedule of the locally known repositories is cancelled before anything else is
// written, so a pass that fails midway leaves the installation under-scheduled rather than
// holding stale schedules. Passes for the same installation are serialized.
func (x *UseCase) ReconcileInstallation(ctx context.Context, id types.GitHubAppInstallID, trigger model.SyncTrigger, opt model.ReconcileOption) (*model.ReconcileResult, error) {
	unlock := x.locks.Lock(id)
	defer unlock()

	logger := logging.From(ctx).With(
		slog.Int64("installation_id", int64(id)),
		slog.String("trigger", string(trigger)),
	)
	ctx = logging.With(ctx, logger)
	logger.Info("Start reconciliation", slog.Bool("trigger_immediately", opt.TriggerImmediately))

	record := &model.SyncRecord{
		ID:             types.NewSyncRecordID(),
		Timestamp:      logging.CtxTime(ctx),
		InstallationID: int64(id),
		Trigger:        string(trigger),
	}

	result, err := x.reconcile(ctx, id, opt, record)
	metrics.Reconciliations.WithLabelValues(string(trigger), metrics.Result(err)).Inc()
	if err != nil {
		record.Error = err.Error()
	}
	x.recordSync(ctx, record)

	if err != nil {
		logger.Warn("Reconciliation failed", slog.Any("error", err))
		return nil, err
	}

	logger.Info("Reconciliation completed",
		slog.Bool("suspended", record.Suspended),
		slog.Int("added", result.Written.Added),
		slog.Int("updated", result.Written.Updated),
		slog.Int("removed", result.Written.Removed),
		slog.Int("scheduled", result.Scheduled),
	)
	return result, nil
}

func (x *UseCase) reconcile(ctx context.Context, id types.GitHubAppInstallID, opt model.ReconcileOption, record *model.SyncRecord) (*model.ReconcileResult, error) {
	repo := x.clients.Repository()

	inst, err := x.clients.GitHubApp().GetInstallation(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get installation from GitHub", goerr.V("installationID", id))
	}
	record.AccountLogin = inst.Account.Login
	record.Suspended = inst.IsSuspended()

	if err := repo.PutInstallation(ctx, inst); err != nil {
		return nil, goerr.Wrap(err, "failed to save installation", goerr.V("installationID", id))
	}

	local, err := repo.ListRepositories(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list local repositories", goerr.V("installationID", id))
	}
	if err := x.UnscheduleRepositories(ctx, local); err != nil {
		return nil, err
	}

	result := &model.ReconcileResult{Installation: inst}
	if inst.IsSuspended() {
		logging.From(ctx).Info("Installation is suspended, schedules are cancelled",
			slog.Int("repositories", len(local)),
		)
		return result, nil
	}

	live, err := x.clients.GitHubApp().ListInstallationRepos(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list installation repositories from GitHub", goerr.V("installationID", id))
	}

	written, err := repo.WriteRepositories(ctx, id, live)
	if err != nil {
		return nil, err
	}
	result.Written = *written
	record.Added, record.Updated, record.Removed = written.Added, written.Updated, written.Removed
	metrics.RepositoryChanges.WithLabelValues("added").Add(float64(written.Added))
	metrics.RepositoryChanges.WithLabelValues("updated").Add(float64(written.Updated))
	metrics.RepositoryChanges.WithLabelValues("removed").Add(float64(written.Removed))

	current, err := repo.ListRepositories(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list written repositories", goerr.V("installationID", id))
	}
	result.Repositories = current

	scheduled, err := x.ScheduleRepositories(ctx, current, opt.TriggerImmediately)
	record.Scheduled = scheduled
	if err != nil {
		return nil, err
	}
	result.Scheduled = scheduled

	return result, nil
}
