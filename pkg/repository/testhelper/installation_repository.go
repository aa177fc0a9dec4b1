package testhelper

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/repository"
)

// TestAll runs all test cases for InstallationRepository
// This is the main entry point for testing any InstallationRepository implementation
func TestAll(t *testing.T, repo interfaces.InstallationRepository) {
	t.Run("InstallationCRUD", func(t *testing.T) {
		TestInstallationCRUD(t, repo)
	})
	t.Run("WriteRepositories", func(t *testing.T) {
		TestWriteRepositories(t, repo)
	})
	t.Run("RepositoryCRUD", func(t *testing.T) {
		TestRepositoryCRUD(t, repo)
	})
	t.Run("ScheduleMetadata", func(t *testing.T) {
		TestScheduleMetadata(t, repo)
	})
	t.Run("DeleteInstallation", func(t *testing.T) {
		TestDeleteInstallation(t, repo)
	})
}

// random ids keep runs against a shared backend independent
func newInstallID() types.GitHubAppInstallID {
	return types.GitHubAppInstallID(rand.Int64N(1<<40) + 1)
}

func newRepoID() types.GitHubRepoID {
	return types.GitHubRepoID(rand.Int64N(1<<40) + 1)
}

func newInstallation(id types.GitHubAppInstallID) *model.Installation {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &model.Installation{
		ID:    id,
		AppID: 1,
		Account: model.Account{
			ID:    types.GitHubAccountID(id),
			Login: fmt.Sprintf("org-%s", uuid.NewString()[:8]),
			Type:  types.AccountTypeOrganization,
		},
		RepositorySelection: types.RepositorySelectionSelected,
		TargetType:          types.AccountTypeOrganization,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func newRepository(inst *model.Installation, id types.GitHubRepoID) *model.Repository {
	name := fmt.Sprintf("repo-%s", uuid.NewString()[:8])
	return &model.Repository{
		ID:             id,
		InstallationID: inst.ID,
		Name:           name,
		FullName:       inst.Account.Login + "/" + name,
		Owner:          inst.Account,
		DefaultBranch:  "main",
		Visibility:     "private",
		Private:        true,
	}
}

// TestInstallationCRUD tests put, get and lookup of installations
func TestInstallationCRUD(t *testing.T, repo interfaces.InstallationRepository) {
	ctx := context.Background()
	inst := newInstallation(newInstallID())

	gt.NoError(t, repo.PutInstallation(ctx, inst))

	got, err := repo.GetInstallation(ctx, inst.ID)
	gt.NoError(t, err)
	gt.V(t, got.ID).Equal(inst.ID)
	gt.V(t, got.Account.Login).Equal(inst.Account.Login)
	gt.V(t, got.RepositorySelection).Equal(types.RepositorySelectionSelected)
	gt.False(t, got.IsSuspended())

	byLogin, err := repo.FindInstallationByLogin(ctx, inst.Account.Login)
	gt.NoError(t, err)
	gt.V(t, byLogin.ID).Equal(inst.ID)

	// Update with suspension fields
	suspendedAt := time.Now().UTC().Truncate(time.Millisecond)
	inst.SuspendedAt = &suspendedAt
	inst.SuspendedBy = &model.Account{ID: 99, Login: "admin", Type: types.AccountTypeUser}
	gt.NoError(t, repo.PutInstallation(ctx, inst))

	got, err = repo.GetInstallation(ctx, inst.ID)
	gt.NoError(t, err)
	gt.True(t, got.IsSuspended())
	gt.V(t, got.SuspendedBy.Login).Equal("admin")

	// Returned values are copies
	got.Account.Login = "modified"
	again, err := repo.GetInstallation(ctx, inst.ID)
	gt.NoError(t, err)
	gt.V(t, again.Account.Login).Equal(inst.Account.Login)

	// Not found
	_, err = repo.GetInstallation(ctx, newInstallID())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = repo.FindInstallationByLogin(ctx, "nonexistent-"+uuid.NewString())
	gt.True(t, errors.Is(err, types.ErrNotFound))

	_, _, err = repo.GetInstallationWithRepositories(ctx, newInstallID())
	gt.True(t, errors.Is(err, types.ErrNotFound))
}

// TestWriteRepositories tests diff-and-write of the repository set of an installation
func TestWriteRepositories(t *testing.T, repo interfaces.InstallationRepository) {
	ctx := context.Background()
	inst := newInstallation(newInstallID())
	gt.NoError(t, repo.PutInstallation(ctx, inst))

	r1 := newRepository(inst, newRepoID())
	r2 := newRepository(inst, newRepoID())
	r3 := newRepository(inst, newRepoID())
	r4 := newRepository(inst, newRepoID())

	result, err := repo.WriteRepositories(ctx, inst.ID, []*model.Repository{r1, r2, r3})
	gt.NoError(t, err)
	gt.V(t, result.Added).Equal(3)
	gt.V(t, result.Updated).Equal(0)
	gt.V(t, result.Removed).Equal(0)

	// Metadata of a repository that will be removed
	gt.NoError(t, repo.PutScheduleMetadata(ctx, &model.ScheduleMetadata{
		RepositoryID: r1.ID,
		Cron:         "*/2 * * * *",
		Priority:     types.JobPriorityNormal,
	}))

	r2.Description = "updated"
	result, err = repo.WriteRepositories(ctx, inst.ID, []*model.Repository{r2, r3, r4})
	gt.NoError(t, err)
	gt.V(t, result.Added).Equal(1)
	gt.V(t, result.Updated).Equal(2)
	gt.V(t, result.Removed).Equal(1)

	repos, err := repo.ListRepositories(ctx, inst.ID)
	gt.NoError(t, err)
	gt.V(t, len(repos)).Equal(3)

	ids := map[types.GitHubRepoID]*model.Repository{}
	for _, r := range repos {
		ids[r.ID] = r
	}
	gt.V(t, ids[r1.ID]).Equal(nil)
	gt.V(t, ids[r2.ID].Description).Equal("updated")
	gt.V(t, ids[r3.ID].FullName).Equal(r3.FullName)
	gt.V(t, ids[r4.ID].FullName).Equal(r4.FullName)

	_, err = repo.GetScheduleMetadata(ctx, r1.ID)
	gt.True(t, errors.Is(err, types.ErrNotFound))

	// Same set again changes nothing but counts updates
	result, err = repo.WriteRepositories(ctx, inst.ID, []*model.Repository{r2, r3, r4})
	gt.NoError(t, err)
	gt.V(t, result.Added).Equal(0)
	gt.V(t, result.Updated).Equal(3)
	gt.V(t, result.Removed).Equal(0)

	gotInst, gotRepos, err := repo.GetInstallationWithRepositories(ctx, inst.ID)
	gt.NoError(t, err)
	gt.V(t, gotInst.ID).Equal(inst.ID)
	gt.V(t, len(gotRepos)).Equal(3)

	// A repository of another installation rejects the whole write
	other := newInstallation(newInstallID())
	foreign := newRepository(other, newRepoID())
	_, err = repo.WriteRepositories(ctx, inst.ID, []*model.Repository{r2, foreign})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrReconciliation))
	repos, err = repo.ListRepositories(ctx, inst.ID)
	gt.NoError(t, err)
	gt.V(t, len(repos)).Equal(3)

	// Empty live set removes everything
	result, err = repo.WriteRepositories(ctx, inst.ID, nil)
	gt.NoError(t, err)
	gt.V(t, result.Removed).Equal(3)

	repos, err = repo.ListRepositories(ctx, inst.ID)
	gt.NoError(t, err)
	gt.V(t, len(repos)).Equal(0)
}

// TestRepositoryCRUD tests single repository operations
func TestRepositoryCRUD(t *testing.T, repo interfaces.InstallationRepository) {
	ctx := context.Background()
	inst := newInstallation(newInstallID())
	gt.NoError(t, repo.PutInstallation(ctx, inst))

	r := newRepository(inst, newRepoID())
	gt.NoError(t, repo.PutRepository(ctx, r))

	got, err := repo.GetRepository(ctx, inst.ID, r.ID)
	gt.NoError(t, err)
	gt.V(t, got.FullName).Equal(r.FullName)
	gt.V(t, got.Owner.Login).Equal(inst.Account.Login)

	byName, err := repo.FindRepositoryByFullName(ctx, r.FullName)
	gt.NoError(t, err)
	gt.V(t, byName.ID).Equal(r.ID)

	// Same repository id under another installation is a different record
	_, err = repo.GetRepository(ctx, newInstallID(), r.ID)
	gt.True(t, errors.Is(err, types.ErrNotFound))

	gt.NoError(t, repo.PutScheduleMetadata(ctx, &model.ScheduleMetadata{
		RepositoryID: r.ID,
		Cron:         "0 * * * *",
		Priority:     types.JobPriorityLow,
	}))

	deleted, err := repo.DeleteRepository(ctx, inst.ID, r.ID)
	gt.NoError(t, err)
	gt.V(t, deleted.ID).Equal(r.ID)

	_, err = repo.GetRepository(ctx, inst.ID, r.ID)
	gt.True(t, errors.Is(err, types.ErrNotFound))
	_, err = repo.GetScheduleMetadata(ctx, r.ID)
	gt.True(t, errors.Is(err, types.ErrNotFound))

	_, err = repo.DeleteRepository(ctx, inst.ID, r.ID)
	gt.True(t, errors.Is(err, types.ErrNotFound))

	_, err = repo.FindRepositoryByFullName(ctx, "nobody/"+uuid.NewString())
	gt.True(t, errors.Is(err, types.ErrNotFound))

	// Invalid repository is rejected
	gt.Error(t, repo.PutRepository(ctx, &model.Repository{ID: newRepoID()}))
}

// TestScheduleMetadata tests put and get of schedule metadata
func TestScheduleMetadata(t *testing.T, repo interfaces.InstallationRepository) {
	ctx := context.Background()
	repoID := newRepoID()

	_, err := repo.GetScheduleMetadata(ctx, repoID)
	gt.True(t, errors.Is(err, types.ErrNotFound))

	md := &model.ScheduleMetadata{
		RepositoryID: repoID,
		Cron:         "*/2 * * * *",
		Priority:     types.JobPriorityNormal,
		UpdatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
	gt.NoError(t, repo.PutScheduleMetadata(ctx, md))

	got, err := repo.GetScheduleMetadata(ctx, repoID)
	gt.NoError(t, err)
	gt.V(t, got.Cron).Equal(md.Cron)
	gt.V(t, got.Priority).Equal(types.JobPriorityNormal)

	// One record per repository
	md.Priority = types.JobPriorityHigh
	gt.NoError(t, repo.PutScheduleMetadata(ctx, md))
	got, err = repo.GetScheduleMetadata(ctx, repoID)
	gt.NoError(t, err)
	gt.V(t, got.Priority).Equal(types.JobPriorityHigh)

	// Invalid cron is rejected
	gt.Error(t, repo.PutScheduleMetadata(ctx, &model.ScheduleMetadata{
		RepositoryID: repoID,
		Cron:         "not a cron",
		Priority:     types.JobPriorityNormal,
	}))
}

// TestDeleteInstallation tests that deleting an installation removes its repositories and metadata
func TestDeleteInstallation(t *testing.T, repo interfaces.InstallationRepository) {
	ctx := context.Background()
	inst := newInstallation(newInstallID())
	gt.NoError(t, repo.PutInstallation(ctx, inst))

	r1 := newRepository(inst, newRepoID())
	r2 := newRepository(inst, newRepoID())
	_, err := repo.WriteRepositories(ctx, inst.ID, []*model.Repository{r1, r2})
	gt.NoError(t, err)
	gt.NoError(t, repo.PutScheduleMetadata(ctx, &model.ScheduleMetadata{
		RepositoryID: r1.ID,
		Cron:         "0 0 * * *",
		Priority:     types.JobPriorityNormal,
	}))

	// Purge keeps the installation
	gt.NoError(t, repo.DeleteRepositories(ctx, inst.ID))
	repos, err := repo.ListRepositories(ctx, inst.ID)
	gt.NoError(t, err)
	gt.V(t, len(repos)).Equal(0)
	_, err = repo.GetScheduleMetadata(ctx, r1.ID)
	gt.True(t, errors.Is(err, types.ErrNotFound))
	_, err = repo.GetInstallation(ctx, inst.ID)
	gt.NoError(t, err)

	_, err = repo.WriteRepositories(ctx, inst.ID, []*model.Repository{r1, r2})
	gt.NoError(t, err)

	gt.NoError(t, repo.DeleteInstallation(ctx, inst.ID))
	_, err = repo.GetInstallation(ctx, inst.ID)
	gt.True(t, errors.Is(err, types.ErrNotFound))
	repos, err = repo.ListRepositories(ctx, inst.ID)
	gt.NoError(t, err)
	gt.V(t, len(repos)).Equal(0)

	// Deleting again is not an error
	gt.NoError(t, repo.DeleteInstallation(ctx, inst.ID))
}
