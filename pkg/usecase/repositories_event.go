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

// HandleInstallationRepositoriesEvent applies an added or removed repository event
// incrementally. When the incremental update fails, a full reconciliation with immediate
// trigger restores consistency and its error, if any, is returned.
func (x *UseCase) HandleInstallationRepositoriesEvent(ctx context.Context, event *model.InstallationRepositoriesEvent) error {
	id := event.Installation.ID
	logger := logging.From(ctx).With(
		slog.String("action", string(event.Action)),
		slog.Int64("installation_id", int64(id)),
	)

	var err error
	switch event.Action {
	case types.InstallationRepositoriesActionAdded:
		err = x.AddRepositories(ctx, id, refIDs(event.Added))
	case types.InstallationRepositoriesActionRemoved:
		err = x.RemoveRepositories(ctx, id, refIDs(event.Removed))
	default:
		logger.Info("Ignore installation_repositories event")
		return nil
	}
	if err == nil {
		return nil
	}

	logger.Warn("Incremental repository update failed, fall back to reconciliation", slog.Any("error", err))
	if _, err := x.ReconcileInstallation(ctx, id, model.SyncTriggerFallback, model.ReconcileOption{}); err != nil {
		return goerr.Wrap(err, "fallback reconciliation failed", goerr.V("installationID", id))
	}
	return nil
}

// AddRepositories fetches the named repositories from GitHub, stores them and schedules them
// with an immediate run. Nothing is added while the installation is suspended.
func (x *UseCase) AddRepositories(ctx context.Context, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error {
	unlock := x.locks.Lock(id)
	defer unlock()

	store := x.clients.Repository()

	inst, err := store.GetInstallation(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to get installation", goerr.V("installationID", id))
	}
	if inst.IsSuspended() {
		logging.From(ctx).Info("Installation is suspended, skip adding repositories",
			slog.Int64("installation_id", int64(id)),
			slog.Int("repositories", len(repoIDs)),
		)
		return nil
	}

	for _, repoID := range repoIDs {
		repo, err := x.clients.GitHubApp().GetRepositoryByID(ctx, id, repoID)
		if err != nil {
			return goerr.Wrap(err, "failed to get repository from GitHub",
				goerr.V("installationID", id),
				goerr.V("repoID", repoID),
			)
		}
		if err := store.PutRepository(ctx, repo); err != nil {
			return goerr.Wrap(err, "failed to save repository", goerr.V("repoID", repoID))
		}
		metrics.RepositoryChanges.WithLabelValues("added").Inc()

		if _, err := x.ScheduleRepository(ctx, repo, true); err != nil {
			return err
		}
	}

	logging.From(ctx).Info("Repositories added",
		slog.Int64("installation_id", int64(id)),
		slog.Int("repositories", len(repoIDs)),
	)
	return nil
}

// RemoveRepositories unschedules and deletes the named repositories. Repositories that are not
// on record are only unscheduled.
func (x *UseCase) RemoveRepositories(ctx context.Context, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error {
	unlock := x.locks.Lock(id)
	defer unlock()

	for _, repoID := range repoIDs {
		if err := x.UnscheduleRepository(ctx, id, repoID); err != nil {
			return err
		}

		if _, err := x.clients.Repository().DeleteRepository(ctx, id, repoID); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				continue
			}
			return goerr.Wrap(err, "failed to delete repository",
				goerr.V("installationID", id),
				goerr.V("repoID", repoID),
			)
		}
		metrics.RepositoryChanges.WithLabelValues("removed").Inc()
	}

	logging.From(ctx).Info("Repositories removed",
		slog.Int64("installation_id", int64(id)),
		slog.Int("repositories", len(repoIDs)),
	)
	return nil
}

func refIDs(refs []model.RepositoryRef) []types.GitHubRepoID {
	ids := make([]types.GitHubRepoID, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}
