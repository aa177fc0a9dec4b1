package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/repository"
)

type installationRepository struct {
	mu            sync.RWMutex
	installations map[types.GitHubAppInstallID]*model.Installation
	repos         map[types.GitHubAppInstallID]map[types.GitHubRepoID]*model.Repository
	metadata      map[types.GitHubRepoID]*model.ScheduleMetadata
}

// Installation operations

func (r *installationRepository) PutInstallation(ctx context.Context, inst *model.Installation) error {
	if err := inst.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.installations[inst.ID] = copyInstallation(inst)
	return nil
}

func (r *installationRepository) GetInstallation(ctx context.Context, id types.GitHubAppInstallID) (*model.Installation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, ok := r.installations[id]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "installation not found",
			goerr.V("installationID", id),
		)
	}
	return copyInstallation(inst), nil
}

func (r *installationRepository) FindInstallationByLogin(ctx context.Context, login string) (*model.Installation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, inst := range r.installations {
		if inst.Account.Login == login {
			return copyInstallation(inst), nil
		}
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "installation not found",
		goerr.V("login", login),
	)
}

func (r *installationRepository) GetInstallationWithRepositories(ctx context.Context, id types.GitHubAppInstallID) (*model.Installation, []*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, ok := r.installations[id]
	if !ok {
		return nil, nil, goerr.Wrap(repository.ErrNotFound, "installation not found",
			goerr.V("installationID", id),
		)
	}

	return copyInstallation(inst), r.listRepositories(id), nil
}

func (r *installationRepository) DeleteInstallation(ctx context.Context, id types.GitHubAppInstallID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purgeRepositories(id)
	delete(r.installations, id)
	return nil
}

// Repository operations

func (r *installationRepository) ListRepositories(ctx context.Context, id types.GitHubAppInstallID) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listRepositories(id), nil
}

func (r *installationRepository) listRepositories(id types.GitHubAppInstallID) []*model.Repository {
	var repos []*model.Repository
	for _, repo := range r.repos[id] {
		repos = append(repos, copyRepository(repo))
	}
	sort.Slice(repos, func(i, j int) bool { return repos[i].ID < repos[j].ID })
	return repos
}

func (r *installationRepository) WriteRepositories(ctx context.Context, id types.GitHubAppInstallID, live []*model.Repository) (*model.WriteResult, error) {
	for _, repo := range live {
		if err := repo.Validate(); err != nil {
			return nil, types.WrapCause(types.ErrReconciliation, err, "invalid repository in live set",
				goerr.V("installationID", id),
			)
		}
		if repo.InstallationID != id {
			return nil, goerr.Wrap(types.ErrReconciliation, "repository belongs to another installation",
				goerr.V("installationID", id),
				goerr.V("repoID", repo.ID),
				goerr.V("repoInstallationID", repo.InstallationID),
			)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	diff := model.ComputeRepositoryDiff(r.listRepositories(id), live)

	stored, ok := r.repos[id]
	if !ok {
		stored = make(map[types.GitHubRepoID]*model.Repository)
		r.repos[id] = stored
	}

	for _, repo := range diff.ToAdd {
		stored[repo.ID] = copyRepository(repo)
	}
	for _, repo := range diff.ToUpdate {
		stored[repo.ID] = copyRepository(repo)
	}
	for _, repoID := range diff.ToRemove {
		delete(stored, repoID)
		delete(r.metadata, repoID)
	}

	return &model.WriteResult{
		Added:   len(diff.ToAdd),
		Updated: len(diff.ToUpdate),
		Removed: len(diff.ToRemove),
	}, nil
}

func (r *installationRepository) DeleteRepositories(ctx context.Context, id types.GitHubAppInstallID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purgeRepositories(id)
	return nil
}

func (r *installationRepository) purgeRepositories(id types.GitHubAppInstallID) {
	for repoID := range r.repos[id] {
		delete(r.metadata, repoID)
	}
	delete(r.repos, id)
}

func (r *installationRepository) GetRepository(ctx context.Context, id types.GitHubAppInstallID, repoID types.GitHubRepoID) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repo, ok := r.repos[id][repoID]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("installationID", id),
			goerr.V("repoID", repoID),
		)
	}
	return copyRepository(repo), nil
}

func (r *installationRepository) FindRepositoryByFullName(ctx context.Context, fullName string) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, repos := range r.repos {
		for _, repo := range repos {
			if repo.FullName == fullName {
				return copyRepository(repo), nil
			}
		}
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
		goerr.V("fullName", fullName),
	)
}

func (r *installationRepository) PutRepository(ctx context.Context, repo *model.Repository) error {
	if err := repo.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.repos[repo.InstallationID]
	if !ok {
		stored = make(map[types.GitHubRepoID]*model.Repository)
		r.repos[repo.InstallationID] = stored
	}
	stored[repo.ID] = copyRepository(repo)
	return nil
}

func (r *installationRepository) DeleteRepository(ctx context.Context, id types.GitHubAppInstallID, repoID types.GitHubRepoID) (*model.Repository, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	repo, ok := r.repos[id][repoID]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("installationID", id),
			goerr.V("repoID", repoID),
		)
	}

	delete(r.repos[id], repoID)
	delete(r.metadata, repoID)
	return repo, nil
}

// Schedule metadata operations

func (r *installationRepository) GetScheduleMetadata(ctx context.Context, repoID types.GitHubRepoID) (*model.ScheduleMetadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	md, ok := r.metadata[repoID]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "schedule metadata not found",
			goerr.V("repoID", repoID),
		)
	}
	copied := *md
	return &copied, nil
}

func (r *installationRepository) PutScheduleMetadata(ctx context.Context, md *model.ScheduleMetadata) error {
	if err := md.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *md
	r.metadata[md.RepositoryID] = &copied
	return nil
}

func copyInstallation(src *model.Installation) *model.Installation {
	dst := *src
	if src.SuspendedAt != nil {
		t := *src.SuspendedAt
		dst.SuspendedAt = &t
	}
	if src.SuspendedBy != nil {
		a := *src.SuspendedBy
		dst.SuspendedBy = &a
	}
	return &dst
}

func copyRepository(src *model.Repository) *model.Repository {
	dst := *src
	return &dst
}
