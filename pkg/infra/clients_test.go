package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/octosched/pkg/domain/mock"
	"github.com/m-mizutani/octosched/pkg/infra"
	"github.com/m-mizutani/octosched/pkg/repository/memory"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.GitHubApp()).Equal(nil)
		gt.V(t, clients.Repository()).Equal(nil)
		gt.V(t, clients.Scheduler()).Equal(nil)
		gt.V(t, clients.SchedulePolicy()).Equal(nil)
		gt.V(t, clients.BigQuery()).Equal(nil)
	})

	t.Run("options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{}
		mockBQ := &mock.BigQueryMock{}
		mockScheduler := &mock.JobSchedulerMock{}
		mockPolicy := &mock.SchedulePolicyMock{}
		repo := memory.New()

		clients := infra.New(
			infra.WithGitHubApp(mockGH),
			infra.WithBigQuery(mockBQ),
			infra.WithScheduler(mockScheduler),
			infra.WithSchedulePolicy(mockPolicy),
			infra.WithRepository(repo),
		)

		gt.V(t, clients.GitHubApp()).Equal(mockGH)
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
		gt.V(t, clients.Scheduler()).Equal(mockScheduler)
		gt.V(t, clients.SchedulePolicy()).Equal(mockPolicy)
		gt.V(t, clients.Repository()).Equal(repo)
	})
}
