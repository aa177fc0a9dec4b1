package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

const instID = types.GitHubAppInstallID(42)

func reconcile(t *testing.T, f *fixture, trigger bool) *model.ReconcileResult {
	t.Helper()
	return gt.R1(f.uc.ReconcileInstallation(context.Background(), instID, model.SyncTriggerAdmin, model.ReconcileOption{
		TriggerImmediately: trigger,
	})).NoError(t)
}

func TestReconcileInstallation(t *testing.T) {
	t.Run("local {1,2,3} converges to live {2,3,4}", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "octo-org", false)
		f.github.setRepos(instID, 1, 2, 3)
		first := reconcile(t, f, false)
		gt.V(t, first.Written).Equal(model.WriteResult{Added: 3})
		gt.V(t, first.Scheduled).Equal(3)

		f.github.setRepos(instID, 2, 3, 4)
		result := reconcile(t, f, false)

		gt.V(t, result.Written).Equal(model.WriteResult{Added: 1, Updated: 2, Removed: 1})
		gt.V(t, model.RepositoryIDs(result.Repositories)).Equal([]types.GitHubRepoID{2, 3, 4})
		gt.V(t, f.storedRepoIDs(t, instID)).Equal([]types.GitHubRepoID{2, 3, 4})

		gt.False(t, f.hasSchedule(t, instID, 1))
		gt.True(t, f.hasSchedule(t, instID, 2))
		gt.True(t, f.hasSchedule(t, instID, 3))
		gt.True(t, f.hasSchedule(t, instID, 4))

		stored := gt.R1(f.store.GetInstallation(context.Background(), instID)).NoError(t)
		gt.V(t, stored.Account.Login).Equal("octo-org")
	})

	t.Run("second pass without change is idempotent", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "octo-org", false)
		f.github.setRepos(instID, 10, 11, 12)

		first := reconcile(t, f, true)
		second := reconcile(t, f, true)

		gt.V(t, model.RepositoryIDs(second.Repositories)).Equal(model.RepositoryIDs(first.Repositories))
		gt.V(t, second.Written).Equal(model.WriteResult{Updated: 3})
		gt.V(t, second.Scheduled).Equal(3)
		// one-off triggers share an identity per repository, so nothing piles up
		gt.V(t, f.scheduler.Pending()).Equal(3)

		rec := gt.R1(f.scheduler.GetRecurring(context.Background(), types.NewScheduleID(instID, 10))).NoError(t)
		gt.V(t, rec.Cron).Equal(types.CronExpr("0 * * * *"))
		gt.V(t, rec.Priority).Equal(types.JobPriorityNormal)
		gt.V(t, rec.Job.FullName).Equal("octo-org/repo-10")
	})

	t.Run("schedule identity survives a rename", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "octo-org", false)
		f.github.setRepos(instID, 7)
		reconcile(t, f, false)

		f.github.setInstallation(instID, "renamed-org", false)
		f.github.setRepos(instID, 7)
		reconcile(t, f, false)

		rec := gt.R1(f.scheduler.GetRecurring(context.Background(), types.NewScheduleID(instID, 7))).NoError(t)
		gt.V(t, rec.Job.FullName).Equal("renamed-org/repo-7")
	})

	t.Run("suspended installation keeps rows but loses schedules", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "octo-org", false)
		f.github.setRepos(instID, 1, 2)
		reconcile(t, f, false)

		f.github.setInstallation(instID, "octo-org", true)
		result := reconcile(t, f, true)

		gt.True(t, result.Installation.IsSuspended())
		gt.A(t, result.Repositories).Length(0)
		gt.V(t, result.Scheduled).Equal(0)
		gt.V(t, f.storedRepoIDs(t, instID)).Equal([]types.GitHubRepoID{1, 2})
		gt.False(t, f.hasSchedule(t, instID, 1))
		gt.False(t, f.hasSchedule(t, instID, 2))
		gt.V(t, f.scheduler.Pending()).Equal(0)
		gt.A(t, f.ghMock.ListInstallationReposCalls()).Length(1)
	})

	t.Run("auth failure aborts before any write", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "octo-org", false)
		f.github.fail[instID] = goerr.Wrap(types.ErrAuthFailed, "bad credentials")

		_, err := f.uc.ReconcileInstallation(context.Background(), instID, model.SyncTriggerAdmin, model.ReconcileOption{})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrAuthFailed))

		_, err = f.store.GetInstallation(context.Background(), instID)
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})

	t.Run("failed write leaves installation unscheduled", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "octo-org", false)
		f.github.setRepos(instID, 1, 2)
		reconcile(t, f, false)

		f.github.setRepos(instID, 2, 3)
		f.github.repos[instID][1].FullName = ""

		_, err := f.uc.ReconcileInstallation(context.Background(), instID, model.SyncTriggerAdmin, model.ReconcileOption{})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrReconciliation))

		gt.False(t, f.hasSchedule(t, instID, 1))
		gt.False(t, f.hasSchedule(t, instID, 2))
		gt.False(t, f.hasSchedule(t, instID, 3))
	})

	t.Run("unschedules before listing live repositories", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "octo-org", false)
		f.github.setRepos(instID, 1)
		reconcile(t, f, false)

		var scheduledWhileListing bool
		listRepos := f.ghMock.ListInstallationReposFunc
		f.ghMock.ListInstallationReposFunc = func(ctx context.Context, id types.GitHubAppInstallID) ([]*model.Repository, error) {
			scheduledWhileListing = f.hasSchedule(t, instID, 1)
			return listRepos(ctx, id)
		}

		reconcile(t, f, false)
		gt.False(t, scheduledWhileListing)
		gt.True(t, f.hasSchedule(t, instID, 1))
	})
}
