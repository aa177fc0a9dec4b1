package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/infra/scheduler"
	"github.com/m-mizutani/octosched/pkg/utils/errutil"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// Scheduler keeps schedules and queued jobs in Redis so that they survive restarts and can be
// drained by several worker processes.
//
//	{prefix}schedulers       hash  ScheduleID -> RecurringJob
//	{prefix}schedulers:next  zset  ScheduleID scored by next fire time (unix ms)
//	{prefix}jobs             hash  JobID -> QueuedJob
//	{prefix}ready            zset  JobID scored by priority, then enqueue time
type Scheduler struct {
	client       redis.UniversalClient
	prefix       string
	workers      int
	pollInterval time.Duration
	retry        scheduler.RetryConfig
	now          func() time.Time
	location     *time.Location
}

var (
	_ interfaces.JobScheduler = (*Scheduler)(nil)
	_ interfaces.JobRunner    = (*Scheduler)(nil)
)

// priorityWeight separates priority bands in the ready score; unix milliseconds stay below it.
const priorityWeight = 1e13

// enqueueScript adds a job only when no job with the same id is queued.
var enqueueScript = redis.NewScript(`
if redis.call('HSETNX', KEYS[1], ARGV[1], ARGV[2]) == 1 then
  redis.call('ZADD', KEYS[2], ARGV[3], ARGV[1])
  return 1
end
return 0
`)

// rescheduleScript stores the next fire time only when the stored definition is still the one
// the poller fired (ARGV[4]). A cancel or upsert in between wins.
var rescheduleScript = redis.NewScript(`
if redis.call('HGET', KEYS[1], ARGV[1]) == ARGV[4] then
  redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
  redis.call('ZADD', KEYS[2], ARGV[3], ARGV[1])
  return 1
end
return 0
`)

type Option func(*Scheduler)

func WithPrefix(prefix string) Option {
	return func(x *Scheduler) {
		x.prefix = prefix
	}
}

func WithWorkers(n int) Option {
	return func(x *Scheduler) {
		x.workers = n
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(x *Scheduler) {
		x.pollInterval = d
	}
}

func WithRetry(cfg scheduler.RetryConfig) Option {
	return func(x *Scheduler) {
		x.retry = cfg
	}
}

func WithClock(now func() time.Time) Option {
	return func(x *Scheduler) {
		x.now = now
	}
}

func New(client redis.UniversalClient, options ...Option) *Scheduler {
	x := &Scheduler{
		client:       client,
		prefix:       "octosched:",
		workers:      3,
		pollInterval: time.Second,
		retry:        scheduler.DefaultRetryConfig(),
		now:          time.Now,
		location:     time.UTC,
	}
	for _, opt := range options {
		opt(x)
	}
	if x.workers < 1 {
		x.workers = 1
	}
	return x
}

// Connect creates a client for addr and checks the connection.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, types.WrapCause(types.ErrScheduling, err, "failed to connect to redis",
			goerr.V("addr", addr),
		)
	}
	return client, nil
}

func (x *Scheduler) keySchedulers() string { return x.prefix + "schedulers" }
func (x *Scheduler) keyNext() string       { return x.prefix + "schedulers:next" }
func (x *Scheduler) keyJobs() string       { return x.prefix + "jobs" }
func (x *Scheduler) keyReady() string      { return x.prefix + "ready" }

func (x *Scheduler) UpsertRecurring(ctx context.Context, id types.ScheduleID, expr types.CronExpr, priority types.JobPriority, job *model.RepoJob) error {
	sched, err := expr.Schedule()
	if err != nil {
		return goerr.Wrap(err, "failed to upsert recurring job", goerr.V("scheduleID", id))
	}

	rec := model.RecurringJob{
		ID:        id,
		Cron:      expr,
		Priority:  priority,
		Job:       *job,
		NextRunAt: sched.Next(x.now().In(x.location)),
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal recurring job", goerr.V("scheduleID", id))
	}

	if _, err := x.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, x.keySchedulers(), id.String(), raw)
		pipe.ZAdd(ctx, x.keyNext(), redis.Z{
			Score:  float64(rec.NextRunAt.UnixMilli()),
			Member: id.String(),
		})
		return nil
	}); err != nil {
		return types.WrapCause(types.ErrScheduling, err, "failed to store recurring job",
			goerr.V("scheduleID", id),
		)
	}

	return nil
}

func (x *Scheduler) CancelRecurring(ctx context.Context, id types.ScheduleID) error {
	if _, err := x.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, x.keySchedulers(), id.String())
		pipe.ZRem(ctx, x.keyNext(), id.String())
		if jobID, ok := id.OneOffJobID(); ok {
			pipe.HDel(ctx, x.keyJobs(), jobID.String())
			pipe.ZRem(ctx, x.keyReady(), jobID.String())
		}
		return nil
	}); err != nil {
		return types.WrapCause(types.ErrScheduling, err, "failed to cancel recurring job",
			goerr.V("scheduleID", id),
		)
	}
	return nil
}

func (x *Scheduler) GetRecurring(ctx context.Context, id types.ScheduleID) (*model.RecurringJob, error) {
	rec, _, err := x.getRecurring(ctx, id)
	return rec, err
}

// getRecurring also returns the stored bytes so that callers can detect a concurrent change.
func (x *Scheduler) getRecurring(ctx context.Context, id types.ScheduleID) (*model.RecurringJob, string, error) {
	raw, err := x.client.HGet(ctx, x.keySchedulers(), id.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, "", goerr.Wrap(types.ErrNotFound, "recurring job not found", goerr.V("scheduleID", id))
		}
		return nil, "", types.WrapCause(types.ErrScheduling, err, "failed to get recurring job",
			goerr.V("scheduleID", id),
		)
	}

	var rec model.RecurringJob
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, "", goerr.Wrap(err, "failed to unmarshal recurring job", goerr.V("scheduleID", id))
	}
	return &rec, raw, nil
}

func (x *Scheduler) EnqueueOnce(ctx context.Context, id types.JobID, priority types.JobPriority, job *model.RepoJob) error {
	_, err := x.enqueue(ctx, id, priority, *job)
	return err
}

func (x *Scheduler) enqueue(ctx context.Context, id types.JobID, priority types.JobPriority, job model.RepoJob) (bool, error) {
	queued := model.QueuedJob{
		ID:         id,
		Priority:   priority,
		Job:        job,
		EnqueuedAt: x.now(),
	}
	raw, err := json.Marshal(queued)
	if err != nil {
		return false, goerr.Wrap(err, "failed to marshal queued job", goerr.V("jobID", id))
	}

	score := float64(priority)*priorityWeight + float64(queued.EnqueuedAt.UnixMilli())
	added, err := enqueueScript.Run(ctx, x.client,
		[]string{x.keyJobs(), x.keyReady()},
		id.String(), raw, strconv.FormatFloat(score, 'f', 0, 64),
	).Int()
	if err != nil {
		return false, types.WrapCause(types.ErrScheduling, err, "failed to enqueue job",
			goerr.V("jobID", id),
		)
	}

	return added == 1, nil
}

// promote enqueues one run of every schedule whose fire time has passed. A schedule is claimed
// by removing it from the next-fire set, so concurrent pollers never fire it twice.
func (x *Scheduler) promote(ctx context.Context) error {
	now := x.now()
	ids, err := x.client.ZRangeByScore(ctx, x.keyNext(), &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return types.WrapCause(types.ErrScheduling, err, "failed to list due schedules")
	}

	for _, member := range ids {
		claimed, err := x.client.ZRem(ctx, x.keyNext(), member).Result()
		if err != nil {
			return types.WrapCause(types.ErrScheduling, err, "failed to claim schedule",
				goerr.V("scheduleID", member),
			)
		}
		if claimed == 0 {
			continue
		}

		id := types.ScheduleID(member)
		rec, stored, err := x.getRecurring(ctx, id)
		if errors.Is(err, types.ErrNotFound) {
			continue
		} else if err != nil {
			return err
		}

		firedAt := rec.NextRunAt
		job := rec.Job
		job.InsertedAt = now
		if _, err := x.enqueue(ctx, types.NewRecurringRunJobID(id, firedAt.UnixMilli()), rec.Priority, job); err != nil {
			return err
		}

		sched, err := rec.Cron.Schedule()
		if err != nil {
			return err
		}
		rec.NextRunAt = sched.Next(now.In(x.location))
		raw, err := json.Marshal(rec)
		if err != nil {
			return goerr.Wrap(err, "failed to marshal recurring job", goerr.V("scheduleID", id))
		}

		updated, err := rescheduleScript.Run(ctx, x.client,
			[]string{x.keySchedulers(), x.keyNext()},
			id.String(), raw, rec.NextRunAt.UnixMilli(), stored,
		).Int()
		if err != nil {
			return types.WrapCause(types.ErrScheduling, err, "failed to reschedule recurring job",
				goerr.V("scheduleID", id),
			)
		}

		logging.From(ctx).Debug("recurring job fired",
			slog.String("scheduleID", id.String()),
			slog.Time("nextRunAt", rec.NextRunAt),
			slog.Bool("changedMeanwhile", updated == 0),
		)
	}

	return nil
}

// claim pops the next ready job. It returns nil after waiting one poll interval when the ready
// queue is empty.
func (x *Scheduler) claim(ctx context.Context) (*model.QueuedJob, error) {
	res, err := x.client.ZPopMin(ctx, x.keyReady(), 1).Result()
	if err != nil {
		return nil, types.WrapCause(types.ErrScheduling, err, "failed to pop ready job")
	}
	if len(res) == 0 {
		sleep(ctx, x.pollInterval)
		return nil, nil
	}

	member, _ := res[0].Member.(string)
	raw, err := x.client.HGet(ctx, x.keyJobs(), member).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, types.WrapCause(types.ErrScheduling, err, "failed to get queued job",
			goerr.V("jobID", member),
		)
	}
	if err := x.client.HDel(ctx, x.keyJobs(), member).Err(); err != nil {
		return nil, types.WrapCause(types.ErrScheduling, err, "failed to delete queued job",
			goerr.V("jobID", member),
		)
	}

	var job model.QueuedJob
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal queued job", goerr.V("jobID", member))
	}
	return &job, nil
}

// Run polls due schedules and drains the ready queue until ctx is cancelled. Transient Redis
// errors are reported and retried on the next tick.
func (x *Scheduler) Run(ctx context.Context, handler interfaces.JobHandler) error {
	logging.From(ctx).Info("starting redis job scheduler",
		slog.String("prefix", x.prefix),
		slog.Int("workers", x.workers),
	)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		ticker := time.NewTicker(x.pollInterval)
		defer ticker.Stop()

		for {
			if err := x.promote(ctx); err != nil && ctx.Err() == nil {
				errutil.HandleError(ctx, "failed to promote due schedules", err)
			}

			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	})

	for i := 0; i < x.workers; i++ {
		eg.Go(func() error {
			for ctx.Err() == nil {
				job, err := x.claim(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return nil
					}
					errutil.HandleError(ctx, "failed to claim job", err)
					sleep(ctx, x.pollInterval)
					continue
				}
				if job == nil {
					continue
				}

				scheduler.Execute(ctx, handler, job, x.retry)
			}
			return nil
		})
	}

	return eg.Wait()
}

func sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
