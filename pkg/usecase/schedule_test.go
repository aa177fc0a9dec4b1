package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/mock"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/infra/scheduler/local"
)

func testRepo(repoID types.GitHubRepoID) *model.Repository {
	return &model.Repository{
		ID:             repoID,
		InstallationID: instID,
		Name:           "repo",
		FullName:       "octo-org/repo",
		Owner:          model.Account{Login: "octo-org"},
	}
}

func TestScheduleRepository(t *testing.T) {
	t.Run("policy without metadata skips and later metadata schedules", func(t *testing.T) {
		var assign bool
		p := &mock.SchedulePolicyMock{
			ComputeScheduleFunc: func(ctx context.Context, repo *model.Repository, current *model.ScheduleMetadata) (*model.ScheduleMetadata, error) {
				if !assign {
					return nil, nil
				}
				return &model.ScheduleMetadata{Cron: "*/5 * * * *", Priority: types.JobPriorityLow}, nil
			},
		}
		var sched *mock.JobSchedulerMock
		f := newFixture(t, withPolicy(p), withScheduler(func(s *local.Scheduler) interfaces.JobScheduler {
			sched = delegate(s)
			return sched
		}))
		ctx := context.Background()
		repo := testRepo(5)

		ok := gt.R1(f.uc.ScheduleRepository(ctx, repo, true)).NoError(t)
		gt.False(t, ok)
		gt.A(t, sched.UpsertRecurringCalls()).Length(0)
		gt.A(t, sched.EnqueueOnceCalls()).Length(0)
		_, err := f.store.GetScheduleMetadata(ctx, repo.ID)
		gt.True(t, errors.Is(err, types.ErrNotFound))

		assign = true
		ok = gt.R1(f.uc.ScheduleRepository(ctx, repo, false)).NoError(t)
		gt.True(t, ok)
		gt.A(t, sched.UpsertRecurringCalls()).Length(1)
		gt.A(t, sched.CancelRecurringCalls()).Length(0)

		md := gt.R1(f.store.GetScheduleMetadata(ctx, repo.ID)).NoError(t)
		gt.V(t, md.Cron).Equal(types.CronExpr("*/5 * * * *"))
		gt.V(t, md.Priority).Equal(types.JobPriorityLow)
		gt.V(t, md.RepositoryID).Equal(repo.ID)
	})

	t.Run("policy receives persisted metadata", func(t *testing.T) {
		var received *model.ScheduleMetadata
		p := &mock.SchedulePolicyMock{
			ComputeScheduleFunc: func(ctx context.Context, repo *model.Repository, current *model.ScheduleMetadata) (*model.ScheduleMetadata, error) {
				received = current
				return current, nil
			},
		}
		f := newFixture(t, withPolicy(p))
		ctx := context.Background()
		gt.NoError(t, f.store.PutScheduleMetadata(ctx, &model.ScheduleMetadata{
			RepositoryID: 6,
			Cron:         "0 3 * * *",
			Priority:     types.JobPriorityHigh,
		}))

		gt.True(t, gt.R1(f.uc.ScheduleRepository(ctx, testRepo(6), false)).NoError(t))
		gt.V(t, received).NotEqual(nil)
		gt.V(t, received.Cron).Equal(types.CronExpr("0 3 * * *"))

		rec := gt.R1(f.scheduler.GetRecurring(ctx, types.NewScheduleID(instID, 6))).NoError(t)
		gt.V(t, rec.Priority).Equal(types.JobPriorityHigh)
	})

	t.Run("without policy persisted metadata is used as is", func(t *testing.T) {
		f := newFixture(t, withPolicy(nil))
		ctx := context.Background()

		gt.False(t, gt.R1(f.uc.ScheduleRepository(ctx, testRepo(8), false)).NoError(t))

		gt.NoError(t, f.store.PutScheduleMetadata(ctx, &model.ScheduleMetadata{
			RepositoryID: 8,
			Cron:         "30 1 * * *",
			Priority:     types.JobPriorityNormal,
		}))
		gt.True(t, gt.R1(f.uc.ScheduleRepository(ctx, testRepo(8), false)).NoError(t))
	})

	t.Run("invalid metadata from policy is rejected", func(t *testing.T) {
		p := &mock.SchedulePolicyMock{
			ComputeScheduleFunc: func(ctx context.Context, repo *model.Repository, current *model.ScheduleMetadata) (*model.ScheduleMetadata, error) {
				return &model.ScheduleMetadata{Cron: "not a cron", Priority: types.JobPriorityNormal}, nil
			},
		}
		f := newFixture(t, withPolicy(p))

		_, err := f.uc.ScheduleRepository(context.Background(), testRepo(9), false)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("trigger uses a distinct identity at high priority", func(t *testing.T) {
		var sched *mock.JobSchedulerMock
		f := newFixture(t, withScheduler(func(s *local.Scheduler) interfaces.JobScheduler {
			sched = delegate(s)
			return sched
		}))

		gt.True(t, gt.R1(f.uc.ScheduleRepository(context.Background(), testRepo(3), true)).NoError(t))

		upserts := sched.UpsertRecurringCalls()
		gt.A(t, upserts).Length(1)
		gt.V(t, upserts[0].Id).Equal(types.NewScheduleID(instID, 3))

		enqueues := sched.EnqueueOnceCalls()
		gt.A(t, enqueues).Length(1)
		gt.V(t, enqueues[0].Id).Equal(types.NewOneOffJobID(instID, 3))
		gt.V(t, enqueues[0].Priority).Equal(types.JobPriorityHigh)
		gt.V(t, string(enqueues[0].Id)).NotEqual(string(upserts[0].Id))
	})

	t.Run("scheduler failure is a scheduling error", func(t *testing.T) {
		f := newFixture(t, withScheduler(func(s *local.Scheduler) interfaces.JobScheduler {
			m := delegate(s)
			m.UpsertRecurringFunc = func(ctx context.Context, id types.ScheduleID, cron types.CronExpr, priority types.JobPriority, job *model.RepoJob) error {
				return goerr.New("connection refused")
			}
			return m
		}))

		_, err := f.uc.ScheduleRepository(context.Background(), testRepo(4), false)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrScheduling))
		gt.S(t, err.Error()).Contains("connection refused")
	})
}

func TestUnscheduleRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gt.True(t, gt.R1(f.uc.ScheduleRepository(ctx, testRepo(1), false)).NoError(t))
	gt.NoError(t, f.uc.UnscheduleRepository(ctx, instID, 1))
	gt.False(t, f.hasSchedule(t, instID, 1))

	// cancelling an absent schedule is a no-op
	gt.NoError(t, f.uc.UnscheduleRepository(ctx, instID, 1))
}

func TestScheduleRepositoriesStopsAtFirstError(t *testing.T) {
	var sched *mock.JobSchedulerMock
	f := newFixture(t, withScheduler(func(s *local.Scheduler) interfaces.JobScheduler {
		sched = delegate(s)
		sched.UpsertRecurringFunc = func(ctx context.Context, id types.ScheduleID, cron types.CronExpr, priority types.JobPriority, job *model.RepoJob) error {
			if job.RepositoryID == 2 {
				return goerr.New("rejected")
			}
			return s.UpsertRecurring(ctx, id, cron, priority, job)
		}
		return sched
	}))

	n, err := f.uc.ScheduleRepositories(context.Background(), []*model.Repository{testRepo(1), testRepo(2), testRepo(3)}, false)
	gt.Error(t, err)
	gt.V(t, n).Equal(1)
	gt.A(t, sched.UpsertRecurringCalls()).Length(2)
	gt.False(t, f.hasSchedule(t, instID, 3))
}
