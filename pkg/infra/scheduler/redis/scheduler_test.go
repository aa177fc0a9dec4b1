package redis_test

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/infra/scheduler"
	schedredis "github.com/m-mizutani/octosched/pkg/infra/scheduler/redis"
	"github.com/m-mizutani/octosched/pkg/infra/scheduler/testhelper"
	"github.com/m-mizutani/octosched/pkg/utils/testutil"
	"github.com/redis/go-redis/v9"
)

func newServerClient(t *testing.T) *redis.Client {
	addr := testutil.GetEnvOrSkip(t, "TEST_REDIS_ADDR")
	client, err := schedredis.Connect(context.Background(), addr, "", 0)
	gt.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newMiniClient(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	client, err := schedredis.Connect(context.Background(), mr.Addr(), "", 0)
	gt.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// eachClient runs fn against an in-memory Redis and, when TEST_REDIS_ADDR is set, a real server.
func eachClient(t *testing.T, fn func(t *testing.T, newClient func(t *testing.T) *redis.Client)) {
	t.Run("miniredis", func(t *testing.T) { fn(t, newMiniClient) })
	t.Run("server", func(t *testing.T) { fn(t, newServerClient) })
}

func newScheduler(t *testing.T, client *redis.Client) *schedredis.Scheduler {
	prefix := "test:" + uuid.NewString() + ":"
	t.Cleanup(func() {
		ctx := context.Background()
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			_ = client.Del(ctx, keys...).Err()
		}
	})

	return schedredis.New(client,
		schedredis.WithPrefix(prefix),
		schedredis.WithWorkers(1),
		schedredis.WithPollInterval(100*time.Millisecond),
		schedredis.WithRetry(scheduler.RetryConfig{MaxAttempts: 3, InitialInterval: 10 * time.Millisecond}),
	)
}

func TestRedisScheduler(t *testing.T) {
	eachClient(t, func(t *testing.T, newClient func(t *testing.T) *redis.Client) {
		client := newClient(t)
		testhelper.TestAll(t, func(t *testing.T) testhelper.Backend {
			return newScheduler(t, client)
		})
	})
}

func TestPromoteDueSchedule(t *testing.T) {
	eachClient(t, func(t *testing.T, newClient func(t *testing.T) *redis.Client) {
		client := newClient(t)
		s := newScheduler(t, client)
		ctx := context.Background()

		id := types.NewScheduleID(1, 2)
		job := &model.RepoJob{InstallationID: 1, RepositoryID: 2, Owner: "acme", Repo: "repo", FullName: "acme/repo"}
		gt.NoError(t, s.UpsertRecurring(ctx, id, "0 * * * *", types.JobPriorityNormal, job))

		// Make the schedule due now
		gt.NoError(t, client.ZAdd(ctx, s.KeyNext(), redis.Z{Score: 0, Member: id.String()}).Err())
		gt.NoError(t, s.Promote(ctx))

		// Next fire time moved to the future
		score, err := client.ZScore(ctx, s.KeyNext(), id.String()).Result()
		gt.NoError(t, err)
		gt.True(t, score > float64(time.Now().UnixMilli()))

		// Promoting again does not enqueue a second run
		gt.NoError(t, s.Promote(ctx))

		rec := testhelper.NewRecorder()
		stop := testhelper.Run(t, s, rec)
		rec.Wait(t, 1, 10*time.Second)
		time.Sleep(300 * time.Millisecond)
		stop()

		gt.V(t, rec.Names()).Equal([]string{"repo"})
	})
}

func TestPromoteCancelledSchedule(t *testing.T) {
	eachClient(t, func(t *testing.T, newClient func(t *testing.T) *redis.Client) {
		client := newClient(t)
		s := newScheduler(t, client)
		ctx := context.Background()

		id := types.NewScheduleID(3, 4)
		job := &model.RepoJob{InstallationID: 3, RepositoryID: 4, Owner: "acme", Repo: "gone", FullName: "acme/gone"}
		gt.NoError(t, s.UpsertRecurring(ctx, id, "0 * * * *", types.JobPriorityNormal, job))
		gt.NoError(t, s.CancelRecurring(ctx, id))

		// A stale due entry without definition is dropped
		gt.NoError(t, client.ZAdd(ctx, s.KeyNext(), redis.Z{Score: 0, Member: id.String()}).Err())
		gt.NoError(t, s.Promote(ctx))

		n, err := client.ZCard(ctx, s.KeyNext()).Result()
		gt.NoError(t, err)
		gt.V(t, n).Equal(int64(0))
	})
}

// afterHGet runs fn once, right after the first HGET issued while armed.
type afterHGet struct {
	armed atomic.Bool
	fn    func(ctx context.Context)
}

func (x *afterHGet) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (x *afterHGet) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if cmd.Name() == "hget" && x.armed.CompareAndSwap(true, false) {
			x.fn(ctx)
		}
		return err
	}
}

func (x *afterHGet) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestPromoteKeepsConcurrentUpsert(t *testing.T) {
	client := newMiniClient(t)
	s := newScheduler(t, client)
	ctx := context.Background()

	id := types.NewScheduleID(5, 6)
	job := &model.RepoJob{InstallationID: 5, RepositoryID: 6, Owner: "acme", Repo: "busy", FullName: "acme/busy"}
	gt.NoError(t, s.UpsertRecurring(ctx, id, "0 * * * *", types.JobPriorityNormal, job))
	gt.NoError(t, client.ZAdd(ctx, s.KeyNext(), redis.Z{Score: 0, Member: id.String()}).Err())

	// A cancel and re-register lands between reading the definition and rescheduling it
	hook := &afterHGet{fn: func(ctx context.Context) {
		gt.NoError(t, s.CancelRecurring(ctx, id))
		gt.NoError(t, s.UpsertRecurring(ctx, id, "0 3 * * *", types.JobPriorityLow, job))
	}}
	client.AddHook(hook)
	hook.armed.Store(true)

	gt.NoError(t, s.Promote(ctx))
	gt.False(t, hook.armed.Load())

	got, err := s.GetRecurring(ctx, id)
	gt.NoError(t, err)
	gt.V(t, got.Cron).Equal(types.CronExpr("0 3 * * *"))
	gt.V(t, got.Priority).Equal(types.JobPriorityLow)

	score, err := client.ZScore(ctx, s.KeyNext(), id.String()).Result()
	gt.NoError(t, err)
	gt.V(t, int64(score)).Equal(got.NextRunAt.UnixMilli())
}

func TestPromoteAfterCancelDuringFire(t *testing.T) {
	client := newMiniClient(t)
	s := newScheduler(t, client)
	ctx := context.Background()

	id := types.NewScheduleID(7, 8)
	job := &model.RepoJob{InstallationID: 7, RepositoryID: 8, Owner: "acme", Repo: "left", FullName: "acme/left"}
	gt.NoError(t, s.UpsertRecurring(ctx, id, "0 * * * *", types.JobPriorityNormal, job))
	gt.NoError(t, client.ZAdd(ctx, s.KeyNext(), redis.Z{Score: 0, Member: id.String()}).Err())

	hook := &afterHGet{fn: func(ctx context.Context) {
		gt.NoError(t, s.CancelRecurring(ctx, id))
	}}
	client.AddHook(hook)
	hook.armed.Store(true)

	gt.NoError(t, s.Promote(ctx))

	// The cancelled schedule is not brought back by the reschedule
	_, err := s.GetRecurring(ctx, id)
	gt.Error(t, err)
	n, err := client.ZCard(ctx, s.KeyNext()).Result()
	gt.NoError(t, err)
	gt.V(t, n).Equal(int64(0))
}
