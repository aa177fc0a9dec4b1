package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

func TestFullSync(t *testing.T) {
	t.Run("failed installation does not stop the sweep", func(t *testing.T) {
		f := newFixture(t)
		for _, id := range []types.GitHubAppInstallID{1, 2, 3, 4} {
			f.github.setInstallation(id, "owner", false)
			f.github.setRepos(id, types.GitHubRepoID(id*100), types.GitHubRepoID(id*100+1))
		}
		f.github.fail[3] = goerr.Wrap(types.ErrAuthFailed, "revoked")
		f.github.fail[1] = goerr.New("timeout")

		result := gt.R1(f.uc.FullSync(context.Background())).NoError(t)
		gt.V(t, result.Total).Equal(4)
		gt.V(t, result.Succeeded).Equal(2)
		gt.V(t, result.Failed).Equal([]types.GitHubAppInstallID{1, 3})

		gt.V(t, f.storedRepoIDs(t, 2)).Equal([]types.GitHubRepoID{200, 201})
		gt.V(t, f.storedRepoIDs(t, 4)).Equal([]types.GitHubRepoID{400, 401})
		gt.A(t, f.storedRepoIDs(t, 3)).Length(0)
		gt.True(t, f.hasSchedule(t, 2, 200))
		// full sync never triggers immediate runs
		gt.V(t, f.scheduler.Pending()).Equal(0)
	})

	t.Run("listing failure is returned", func(t *testing.T) {
		f := newFixture(t)
		f.ghMock.ListInstallationsFunc = func(ctx context.Context) ([]*model.Installation, error) {
			return nil, goerr.Wrap(types.ErrAuthFailed, "bad app key")
		}

		_, err := f.uc.FullSync(context.Background())
		gt.Error(t, err)
	})

	t.Run("no installations", func(t *testing.T) {
		f := newFixture(t)
		result := gt.R1(f.uc.FullSync(context.Background())).NoError(t)
		gt.V(t, result.Total).Equal(0)
		gt.V(t, result.Succeeded).Equal(0)
		gt.A(t, result.Failed).Length(0)
	})
}
