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

func (x *UseCase) HandleInstallationEvent(ctx context.Context, event *model.InstallationEvent) error {
	logger := logging.From(ctx).With(
		slog.String("action", string(event.Action)),
		slog.Int64("installation_id", int64(event.Installation.ID)),
	)

	switch event.Action {
	case types.InstallationActionCreated,
		types.InstallationActionUnsuspend,
		types.InstallationActionNewPermissionsAccepted:
		_, err := x.ReconcileInstallation(ctx, event.Installation.ID, model.SyncTriggerWebhook, model.ReconcileOption{
			TriggerImmediately: true,
		})
		return err

	case types.InstallationActionSuspend:
		return x.SuspendInstallation(ctx, &event.Installation)

	case types.InstallationActionDeleted:
		return x.DeleteInstallation(ctx, event.Installation.ID)

	default:
		logger.Info("Ignore installation event")
		return nil
	}
}

// SuspendInstallation cancels every schedule of the installation, stores it with its
// suspension fields and purges its repositories.
func (x *UseCase) SuspendInstallation(ctx context.Context, inst *model.Installation) error {
	unlock := x.locks.Lock(inst.ID)
	defer unlock()

	repo := x.clients.Repository()
	record := &model.SyncRecord{
		ID:             types.NewSyncRecordID(),
		Timestamp:      logging.CtxTime(ctx),
		InstallationID: int64(inst.ID),
		AccountLogin:   inst.Account.Login,
		Trigger:        string(model.SyncTriggerWebhook),
		Suspended:      true,
	}

	err := func() error {
		local, err := repo.ListRepositories(ctx, inst.ID)
		if err != nil {
			return goerr.Wrap(err, "failed to list local repositories", goerr.V("installationID", inst.ID))
		}
		if err := x.UnscheduleRepositories(ctx, local); err != nil {
			return err
		}

		suspended := *inst
		if !suspended.IsSuspended() {
			now := logging.CtxTime(ctx)
			suspended.SuspendedAt = &now
		}
		if err := repo.PutInstallation(ctx, &suspended); err != nil {
			return goerr.Wrap(err, "failed to save suspended installation", goerr.V("installationID", inst.ID))
		}

		if err := repo.DeleteRepositories(ctx, inst.ID); err != nil {
			return goerr.Wrap(err, "failed to purge repositories", goerr.V("installationID", inst.ID))
		}
		record.Removed = len(local)
		metrics.RepositoryChanges.WithLabelValues("removed").Add(float64(len(local)))
		return nil
	}()
	if err != nil {
		record.Error = err.Error()
	}
	x.recordSync(ctx, record)

	if err != nil {
		return err
	}

	logging.From(ctx).Info("Installation suspended",
		slog.Int64("installation_id", int64(inst.ID)),
		slog.Int("removed", record.Removed),
	)
	return nil
}

// DeleteInstallation cancels every schedule of the installation and deletes it together with
// its repositories.
func (x *UseCase) DeleteInstallation(ctx context.Context, id types.GitHubAppInstallID) error {
	unlock := x.locks.Lock(id)
	defer unlock()

	repo := x.clients.Repository()

	local, err := repo.ListRepositories(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to list local repositories", goerr.V("installationID", id))
	}
	if err := x.UnscheduleRepositories(ctx, local); err != nil {
		return err
	}

	if err := repo.DeleteInstallation(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete installation", goerr.V("installationID", id))
	}
	metrics.RepositoryChanges.WithLabelValues("removed").Add(float64(len(local)))

	logging.From(ctx).Info("Installation deleted",
		slog.Int64("installation_id", int64(id)),
		slog.Int("removed", len(local)),
	)
	return nil
}
