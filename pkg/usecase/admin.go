package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

// resolveInstallationID accepts a numeric installation ID or an account login. A login is
// looked up locally first and then through the GitHub App.
func (x *UseCase) resolveInstallationID(ctx context.Context, idOrLogin string) (types.GitHubAppInstallID, error) {
	if n, err := strconv.ParseInt(idOrLogin, 10, 64); err == nil && n > 0 {
		return types.GitHubAppInstallID(n), nil
	}
	if idOrLogin == "" {
		return 0, goerr.Wrap(types.ErrValidationFailed, "installation ID or login is empty")
	}

	inst, err := x.clients.Repository().FindInstallationByLogin(ctx, idOrLogin)
	if err == nil {
		return inst.ID, nil
	}
	if !errors.Is(err, types.ErrNotFound) {
		return 0, goerr.Wrap(err, "failed to find installation by login", goerr.V("login", idOrLogin))
	}

	id, err := x.clients.GitHubApp().GetInstallationIDForOwner(ctx, idOrLogin)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to find installation of owner", goerr.V("login", idOrLogin))
	}
	return id, nil
}

func (x *UseCase) GetInstallationDetail(ctx context.Context, idOrLogin string) (*model.InstallationDetail, error) {
	id, err := x.resolveInstallationID(ctx, idOrLogin)
	if err != nil {
		return nil, err
	}

	inst, repos, err := x.clients.Repository().GetInstallationWithRepositories(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get installation", goerr.V("installationID", id))
	}
	if repos == nil {
		repos = []*model.Repository{}
	}

	return &model.InstallationDetail{
		Installation: inst,
		Repositories: repos,
	}, nil
}

// ReconcileInstallationByIDOrLogin runs an admin triggered reconciliation with immediate runs.
func (x *UseCase) ReconcileInstallationByIDOrLogin(ctx context.Context, idOrLogin string) (*model.ReconcileResult, error) {
	id, err := x.resolveInstallationID(ctx, idOrLogin)
	if err != nil {
		return nil, err
	}

	return x.ReconcileInstallation(ctx, id, model.SyncTriggerAdmin, model.ReconcileOption{
		TriggerImmediately: true,
	})
}

func (x *UseCase) GetRepositoryByFullName(ctx context.Context, owner, name string) (*model.Repository, error) {
	if owner == "" || name == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "owner and repository name are required",
			goerr.V("owner", owner),
			goerr.V("name", name),
		)
	}

	fullName := owner + "/" + name
	repo, err := x.clients.Repository().FindRepositoryByFullName(ctx, fullName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find repository", goerr.V("fullName", fullName))
	}
	return repo, nil
}

// ScheduleRepositoryByFullName re-establishes the schedule of a tracked repository and
// triggers an immediate run.
func (x *UseCase) ScheduleRepositoryByFullName(ctx context.Context, owner, name string) (*model.Repository, error) {
	repo, err := x.GetRepositoryByFullName(ctx, owner, name)
	if err != nil {
		return nil, err
	}

	unlock := x.locks.Lock(repo.InstallationID)
	defer unlock()

	if _, err := x.ScheduleRepository(ctx, repo, true); err != nil {
		return nil, err
	}
	return repo, nil
}
