package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/octosched/pkg/domain/types"
)

func TestGetInstallationDetail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.github.setInstallation(instID, "octo-org", false)
	f.github.setRepos(instID, 1, 2)
	reconcile(t, f, false)

	t.Run("by numeric id", func(t *testing.T) {
		detail := gt.R1(f.uc.GetInstallationDetail(ctx, "42")).NoError(t)
		gt.V(t, detail.Installation.ID).Equal(instID)
		gt.A(t, detail.Repositories).Length(2)
	})

	t.Run("by login in local store", func(t *testing.T) {
		detail := gt.R1(f.uc.GetInstallationDetail(ctx, "octo-org")).NoError(t)
		gt.V(t, detail.Installation.ID).Equal(instID)
		gt.A(t, f.ghMock.GetInstallationIDForOwnerCalls()).Length(0)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := f.uc.GetInstallationDetail(ctx, "9999")
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})

	t.Run("unknown login is not found", func(t *testing.T) {
		_, err := f.uc.GetInstallationDetail(ctx, "nobody")
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})
}

func TestReconcileInstallationByIDOrLogin(t *testing.T) {
	t.Run("login resolved through GitHub App", func(t *testing.T) {
		f := newFixture(t)
		f.github.setInstallation(instID, "fresh-org", false)
		f.github.setRepos(instID, 5)

		result := gt.R1(f.uc.ReconcileInstallationByIDOrLogin(context.Background(), "fresh-org")).NoError(t)
		gt.V(t, result.Installation.ID).Equal(instID)
		gt.A(t, f.ghMock.GetInstallationIDForOwnerCalls()).Length(1)
		gt.True(t, f.hasSchedule(t, instID, 5))
		gt.V(t, f.scheduler.Pending()).Equal(1)
	})

	t.Run("empty identifier", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.ReconcileInstallationByIDOrLogin(context.Background(), "")
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}

func TestRepositoryByFullName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.github.setInstallation(instID, "octo-org", false)
	f.github.setRepos(instID, 1)
	reconcile(t, f, false)

	t.Run("get", func(t *testing.T) {
		repo := gt.R1(f.uc.GetRepositoryByFullName(ctx, "octo-org", "repo-1")).NoError(t)
		gt.V(t, repo.ID).Equal(types.GitHubRepoID(1))
	})

	t.Run("schedule triggers an immediate run", func(t *testing.T) {
		repo := gt.R1(f.uc.ScheduleRepositoryByFullName(ctx, "octo-org", "repo-1")).NoError(t)
		gt.V(t, repo.ID).Equal(types.GitHubRepoID(1))
		gt.True(t, f.hasSchedule(t, instID, 1))
		gt.V(t, f.scheduler.Pending()).Equal(1)
	})

	t.Run("missing repository", func(t *testing.T) {
		_, err := f.uc.ScheduleRepositoryByFullName(ctx, "octo-org", "missing")
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := f.uc.GetRepositoryByFullName(ctx, "", "repo-1")
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}
