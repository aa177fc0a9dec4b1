package policy_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/infra/policy"
	"github.com/m-mizutani/opac"
)

func newRepo(archived bool) *model.Repository {
	return &model.Repository{
		ID:             10,
		InstallationID: 1,
		Name:           "repo",
		FullName:       "acme/repo",
		Owner:          model.Account{ID: 100, Login: "acme"},
		Archived:       archived,
	}
}

func TestFixed(t *testing.T) {
	ctx := context.Background()

	t.Run("every repository gets the same cadence", func(t *testing.T) {
		p := gt.R1(policy.NewFixed("*/2 * * * *", types.JobPriorityNormal)).NoError(t)

		md, err := p.ComputeSchedule(ctx, newRepo(false), nil)
		gt.NoError(t, err)
		gt.V(t, md.RepositoryID).Equal(types.GitHubRepoID(10))
		gt.V(t, md.Cron).Equal(types.CronExpr("*/2 * * * *"))
		gt.V(t, md.Priority).Equal(types.JobPriorityNormal)

		md, err = p.ComputeSchedule(ctx, newRepo(true), nil)
		gt.NoError(t, err)
		gt.V(t, md).NotEqual(nil)
	})

	t.Run("inactive repositories can be skipped", func(t *testing.T) {
		p := gt.R1(policy.NewFixed("0 * * * *", types.JobPriorityLow, policy.WithSkipInactive(true))).NoError(t)

		md, err := p.ComputeSchedule(ctx, newRepo(true), nil)
		gt.NoError(t, err)
		gt.V(t, md).Equal(nil)
	})

	t.Run("invalid configuration is rejected", func(t *testing.T) {
		_, err := policy.NewFixed("hourly", types.JobPriorityNormal)
		gt.Error(t, err)

		_, err = policy.NewFixed("0 * * * *", types.JobPriority(7))
		gt.Error(t, err)
	})
}

const testPolicy = `package octosched.schedule

import rego.v1

default skip := false

skip if input.repository.archived

cron := "0 0 * * *" if {
	startswith(input.repository.name, "nightly-")
} else := input.current.cron if {
	input.current != null
} else := "0 * * * *"

priority := "high" if {
	not input.repository.private
} else := "low"
`

func TestOPA(t *testing.T) {
	ctx := context.Background()
	client := gt.R1(opac.New(opac.Data(map[string]string{"schedule.rego": testPolicy}))).NoError(t)
	p := policy.NewOPA(client, "")

	t.Run("default cadence", func(t *testing.T) {
		md, err := p.ComputeSchedule(ctx, newRepo(false), nil)
		gt.NoError(t, err)
		gt.V(t, md.Cron).Equal(types.CronExpr("0 * * * *"))
		gt.V(t, md.Priority).Equal(types.JobPriorityHigh)
	})

	t.Run("current metadata is kept", func(t *testing.T) {
		repo := newRepo(false)
		repo.Private = true
		current := &model.ScheduleMetadata{RepositoryID: 10, Cron: "*/5 * * * *", Priority: types.JobPriorityNormal}

		md, err := p.ComputeSchedule(ctx, repo, current)
		gt.NoError(t, err)
		gt.V(t, md.Cron).Equal(types.CronExpr("*/5 * * * *"))
		gt.V(t, md.Priority).Equal(types.JobPriorityLow)
	})

	t.Run("name based rule", func(t *testing.T) {
		repo := newRepo(false)
		repo.Name = "nightly-build"

		md, err := p.ComputeSchedule(ctx, repo, nil)
		gt.NoError(t, err)
		gt.V(t, md.Cron).Equal(types.CronExpr("0 0 * * *"))
	})

	t.Run("skip means no schedule", func(t *testing.T) {
		md, err := p.ComputeSchedule(ctx, newRepo(true), nil)
		gt.NoError(t, err)
		gt.V(t, md).Equal(nil)
	})
}
