package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/infra/scheduler/local"
)

func installationOf(f *fixture, t *testing.T) model.Installation {
	t.Helper()
	inst := gt.R1(f.ghMock.GetInstallation(context.Background(), instID)).NoError(t)
	return *inst
}

func TestHandleInstallationEvent(t *testing.T) {
	t.Run("created reconciles with immediate runs", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "octo-org", false)
		f.github.setRepos(instID, 1, 2)

		gt.NoError(t, f.uc.HandleInstallationEvent(context.Background(), &model.InstallationEvent{
			Action:       types.InstallationActionCreated,
			Installation: installationOf(f, t),
		}))

		gt.V(t, f.storedRepoIDs(t, instID)).Equal([]types.GitHubRepoID{1, 2})
		gt.True(t, f.hasSchedule(t, instID, 1))
		gt.True(t, f.hasSchedule(t, instID, 2))
		gt.V(t, f.scheduler.Pending()).Equal(2)
	})

	t.Run("suspend purges repositories and schedules", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		f.github.setInstallation(instID, "octo-org", false)
		f.github.setRepos(instID, 1, 2, 3)
		reconcile(t, f, false)
		gt.NoError(t, f.store.PutScheduleMetadata(ctx, &model.ScheduleMetadata{
			RepositoryID: 1, Cron: "0 * * * *", Priority: types.JobPriorityNormal,
		}))

		gt.NoError(t, f.uc.HandleInstallationEvent(ctx, &model.InstallationEvent{
			Action:       types.InstallationActionSuspend,
			Installation: installationOf(f, t),
		}))

		gt.A(t, f.storedRepoIDs(t, instID)).Length(0)
		for _, repoID := range []types.GitHubRepoID{1, 2, 3} {
			gt.False(t, f.hasSchedule(t, instID, repoID))
		}
		stored := gt.R1(f.store.GetInstallation(ctx, instID)).NoError(t)
		gt.True(t, stored.IsSuspended())
		_, err := f.store.GetScheduleMetadata(ctx, 1)
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})

	t.Run("unsuspend restores repositories", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		f.github.setInstallation(instID, "octo-org", true)
		f.github.setRepos(instID, 1)
		gt.NoError(t, f.uc.SuspendInstallation(ctx, gt.R1(f.ghMock.GetInstallation(ctx, instID)).NoError(t)))

		f.github.setInstallation(instID, "octo-org", false)
		gt.NoError(t, f.uc.HandleInstallationEvent(ctx, &model.InstallationEvent{
			Action:       types.InstallationActionUnsuspend,
			Installation: installationOf(f, t),
		}))

		gt.V(t, f.storedRepoIDs(t, instID)).Equal([]types.GitHubRepoID{1})
		gt.True(t, f.hasSchedule(t, instID, 1))
	})

	t.Run("deleted removes installation", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		f.github.setInstallation(instID, "octo-org", false)
		f.github.setRepos(instID, 1, 2)
		reconcile(t, f, false)

		gt.NoError(t, f.uc.HandleInstallationEvent(ctx, &model.InstallationEvent{
			Action:       types.InstallationActionDeleted,
			Installation: installationOf(f, t),
		}))

		_, err := f.store.GetInstallation(ctx, instID)
		gt.True(t, errors.Is(err, types.ErrNotFound))
		gt.A(t, f.storedRepoIDs(t, instID)).Length(0)
		gt.False(t, f.hasSchedule(t, instID, 1))
		gt.False(t, f.hasSchedule(t, instID, 2))
	})

	t.Run("unknown action is ignored", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "octo-org", false)

		gt.NoError(t, f.uc.HandleInstallationEvent(context.Background(), &model.InstallationEvent{
			Action:       "some_future_action",
			Installation: installationOf(f, t),
		}))
		gt.A(t, f.ghMock.GetInstallationCalls()).Length(1)
	})
}

func TestHandleInstallationRepositoriesEvent(t *testing.T) {
	t.Run("added repositories are stored and triggered", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "octo-org", false)
		f.github.setRepos(instID, 1)
		reconcile(t, f, false)

		f.github.setRepos(instID, 1, 99)
		gt.NoError(t, f.uc.HandleInstallationRepositoriesEvent(context.Background(), &model.InstallationRepositoriesEvent{
			Action:       types.InstallationRepositoriesActionAdded,
			Installation: installationOf(f, t),
			Added:        []model.RepositoryRef{{ID: 99, FullName: "octo-org/repo-99"}},
		}))

		gt.V(t, f.storedRepoIDs(t, instID)).Equal([]types.GitHubRepoID{1, 99})
		gt.True(t, f.hasSchedule(t, instID, 99))
		gt.V(t, f.scheduler.Pending()).Equal(1)
		// incremental path does not list every repository again
		gt.A(t, f.ghMock.ListInstallationReposCalls()).Length(1)
	})

	t.Run("scheduler failure on add falls back to reconciliation", func(t *testing.T) {
		failed := false
		f := newFixture(t, withScheduler(func(s *local.Scheduler) interfaces.JobScheduler {
			m := delegate(s)
			m.UpsertRecurringFunc = func(ctx context.Context, id types.ScheduleID, cron types.CronExpr, priority types.JobPriority, job *model.RepoJob) error {
				if job.RepositoryID == 99 && !failed {
					failed = true
					return goerr.New("scheduler unavailable")
				}
				return s.UpsertRecurring(ctx, id, cron, priority, job)
			}
			return m
		}))
		f.github.setInstallation(instID, "octo-org", false)
		f.github.setRepos(instID, 1)
		reconcile(t, f, false)

		f.github.setRepos(instID, 1, 99)
		gt.NoError(t, f.uc.HandleInstallationRepositoriesEvent(context.Background(), &model.InstallationRepositoriesEvent{
			Action:       types.InstallationRepositoriesActionAdded,
			Installation: installationOf(f, t),
			Added:        []model.RepositoryRef{{ID: 99}},
		}))

		gt.True(t, failed)
		gt.V(t, f.storedRepoIDs(t, instID)).Equal([]types.GitHubRepoID{1, 99})
		gt.True(t, f.hasSchedule(t, instID, 1))
		gt.True(t, f.hasSchedule(t, instID, 99))
		gt.A(t, f.ghMock.ListInstallationReposCalls()).Length(2)
		// the fallback reschedules without an immediate run
		gt.V(t, f.scheduler.Pending()).Equal(0)
	})

	t.Run("fallback drops a repository that is no longer accessible", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "octo-org", false)
		f.github.setRepos(instID, 1)
		reconcile(t, f, false)

		gt.NoError(t, f.uc.HandleInstallationRepositoriesEvent(context.Background(), &model.InstallationRepositoriesEvent{
			Action:       types.InstallationRepositoriesActionAdded,
			Installation: installationOf(f, t),
			Added:        []model.RepositoryRef{{ID: 99}},
		}))

		gt.V(t, f.storedRepoIDs(t, instID)).Equal([]types.GitHubRepoID{1})
		gt.False(t, f.hasSchedule(t, instID, 99))
	})

	t.Run("fallback error is returned", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "octo-org", false)
		inst := installationOf(f, t)
		f.github.fail[instID] = goerr.Wrap(types.ErrAuthFailed, "revoked")

		err := f.uc.HandleInstallationRepositoriesEvent(context.Background(), &model.InstallationRepositoriesEvent{
			Action:       types.InstallationRepositoriesActionAdded,
			Installation: inst,
			Added:        []model.RepositoryRef{{ID: 99}},
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrAuthFailed))
	})

	t.Run("added repositories are skipped while suspended", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		f.github.setInstallation(instID, "octo-org", true)
		f.github.setRepos(instID, 1)
		suspended := installationOf(f, t)
		gt.NoError(t, f.uc.SuspendInstallation(ctx, &suspended))

		gt.NoError(t, f.uc.HandleInstallationRepositoriesEvent(ctx, &model.InstallationRepositoriesEvent{
			Action:       types.InstallationRepositoriesActionAdded,
			Installation: suspended,
			Added:        []model.RepositoryRef{{ID: 1}},
		}))

		gt.A(t, f.storedRepoIDs(t, instID)).Length(0)
		gt.False(t, f.hasSchedule(t, instID, 1))
		gt.A(t, f.ghMock.GetRepositoryByIDCalls()).Length(0)
	})

	t.Run("removed repositories are unscheduled and deleted", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "octo-org", false)
		f.github.setRepos(instID, 1, 2, 3)
		reconcile(t, f, false)

		f.github.setRepos(instID, 1)
		gt.NoError(t, f.uc.HandleInstallationRepositoriesEvent(context.Background(), &model.InstallationRepositoriesEvent{
			Action:       types.InstallationRepositoriesActionRemoved,
			Installation: installationOf(f, t),
			Removed:      []model.RepositoryRef{{ID: 2}, {ID: 3}, {ID: 404}},
		}))

		gt.V(t, f.storedRepoIDs(t, instID)).Equal([]types.GitHubRepoID{1})
		gt.True(t, f.hasSchedule(t, instID, 1))
		gt.False(t, f.hasSchedule(t, instID, 2))
		gt.False(t, f.hasSchedule(t, instID, 3))
		gt.A(t, f.ghMock.ListInstallationReposCalls()).Length(1)
	})
}

func TestHandleInstallationTargetEvent(t *testing.T) {
	t.Run("renamed reconciles without trigger", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "new-login", false)
		f.github.setRepos(instID, 1)

		gt.NoError(t, f.uc.HandleInstallationTargetEvent(context.Background(), &model.InstallationTargetEvent{
			Action:       types.InstallationTargetActionRenamed,
			Installation: installationOf(f, t),
			OldLogin:     "old-login",
		}))

		stored := gt.R1(f.store.GetInstallation(context.Background(), instID)).NoError(t)
		gt.V(t, stored.Account.Login).Equal("new-login")
		gt.True(t, f.hasSchedule(t, instID, 1))
		gt.V(t, f.scheduler.Pending()).Equal(0)
	})

	t.Run("other action is ignored", func(t *testing.T) {
		f := newFixture(t)
		gt.NoError(t, f.uc.HandleInstallationTargetEvent(context.Background(), &model.InstallationTargetEvent{
			Action: "transferred",
		}))
		gt.A(t, f.ghMock.GetInstallationCalls()).Length(0)
	})
}
