package local

import (
	"container/heap"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/infra/scheduler"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Scheduler is an in-process job scheduler. Recurring entries are driven by robfig/cron and
// every firing or one-off job goes through a priority queue drained by a fixed worker pool.
// State is lost on restart; the full sync at startup re-registers every schedule.
type Scheduler struct {
	mu       sync.Mutex
	cron     *cron.Cron
	entries  map[types.ScheduleID]*entry
	queue    jobQueue
	pending  map[types.JobID]struct{}
	notify   chan struct{}
	workers  int
	retry    scheduler.RetryConfig
	now      func() time.Time
	location *time.Location
}

type entry struct {
	job      model.RecurringJob
	schedule cron.Schedule
	cronID   cron.EntryID
}

var (
	_ interfaces.JobScheduler = (*Scheduler)(nil)
	_ interfaces.JobRunner    = (*Scheduler)(nil)
)

type Option func(*Scheduler)

func WithWorkers(n int) Option {
	return func(x *Scheduler) {
		x.workers = n
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

func WithLocation(loc *time.Location) Option {
	return func(x *Scheduler) {
		x.location = loc
	}
}

func New(options ...Option) *Scheduler {
	x := &Scheduler{
		entries:  make(map[types.ScheduleID]*entry),
		pending:  make(map[types.JobID]struct{}),
		notify:   make(chan struct{}, 1),
		workers:  3,
		retry:    scheduler.DefaultRetryConfig(),
		now:      time.Now,
		location: time.UTC,
	}
	for _, opt := range options {
		opt(x)
	}
	if x.workers < 1 {
		x.workers = 1
	}

	x.cron = cron.New(cron.WithLocation(x.location))
	return x
}

func (x *Scheduler) UpsertRecurring(ctx context.Context, id types.ScheduleID, expr types.CronExpr, priority types.JobPriority, job *model.RepoJob) error {
	sched, err := expr.Schedule()
	if err != nil {
		return goerr.Wrap(err, "failed to upsert recurring job", goerr.V("scheduleID", id))
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if old, ok := x.entries[id]; ok {
		x.cron.Remove(old.cronID)
	}

	e := &entry{
		job: model.RecurringJob{
			ID:       id,
			Cron:     expr,
			Priority: priority,
			Job:      *job,
		},
		schedule: sched,
	}
	e.cronID = x.cron.Schedule(sched, cron.FuncJob(func() {
		x.fire(context.Background(), id)
	}))
	x.entries[id] = e

	logging.From(ctx).Debug("recurring job registered",
		slog.String("scheduleID", id.String()),
		slog.String("cron", expr.String()),
	)
	return nil
}

func (x *Scheduler) CancelRecurring(ctx context.Context, id types.ScheduleID) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if e, ok := x.entries[id]; ok {
		x.cron.Remove(e.cronID)
		delete(x.entries, id)
	}

	if jobID, ok := id.OneOffJobID(); ok {
		x.drop(jobID)
	}
	return nil
}

// drop removes a queued job that has not started yet. It requires x.mu to be held.
func (x *Scheduler) drop(id types.JobID) {
	if _, ok := x.pending[id]; !ok {
		return
	}
	for i, job := range x.queue {
		if job.ID == id {
			heap.Remove(&x.queue, i)
			break
		}
	}
	delete(x.pending, id)
}

func (x *Scheduler) GetRecurring(ctx context.Context, id types.ScheduleID) (*model.RecurringJob, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	e, ok := x.entries[id]
	if !ok {
		return nil, goerr.Wrap(types.ErrNotFound, "recurring job not found", goerr.V("scheduleID", id))
	}

	job := e.job
	job.NextRunAt = e.schedule.Next(x.now().In(x.location))
	return &job, nil
}

func (x *Scheduler) EnqueueOnce(ctx context.Context, id types.JobID, priority types.JobPriority, job *model.RepoJob) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.push(id, priority, *job)
	return nil
}

// push requires x.mu to be held.
func (x *Scheduler) push(id types.JobID, priority types.JobPriority, job model.RepoJob) {
	if _, ok := x.pending[id]; ok {
		return
	}

	x.pending[id] = struct{}{}
	heap.Push(&x.queue, &model.QueuedJob{
		ID:         id,
		Priority:   priority,
		Job:        job,
		EnqueuedAt: x.now(),
	})
	x.signal()
}

func (x *Scheduler) signal() {
	select {
	case x.notify <- struct{}{}:
	default:
	}
}

// fire enqueues one execution of a recurring entry.
func (x *Scheduler) fire(ctx context.Context, id types.ScheduleID) {
	x.mu.Lock()
	defer x.mu.Unlock()

	e, ok := x.entries[id]
	if !ok {
		return
	}

	now := x.now()
	job := e.job.Job
	job.InsertedAt = now
	x.push(types.NewRecurringRunJobID(id, now.UnixMilli()), e.job.Priority, job)

	logging.From(ctx).Debug("recurring job fired", slog.String("scheduleID", id.String()))
}

func (x *Scheduler) next(ctx context.Context) (*model.QueuedJob, bool) {
	for {
		x.mu.Lock()
		if x.queue.Len() > 0 {
			job := heap.Pop(&x.queue).(*model.QueuedJob)
			delete(x.pending, job.ID)
			if x.queue.Len() > 0 {
				x.signal()
			}
			x.mu.Unlock()
			return job, true
		}
		x.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, false
		case <-x.notify:
		}
	}
}

// Run starts the cron driver and the worker pool and blocks until ctx is cancelled.
func (x *Scheduler) Run(ctx context.Context, handler interfaces.JobHandler) error {
	logging.From(ctx).Info("starting local job scheduler", slog.Int("workers", x.workers))

	x.cron.Start()
	defer func() {
		<-x.cron.Stop().Done()
	}()

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < x.workers; i++ {
		eg.Go(func() error {
			for {
				job, ok := x.next(ctx)
				if !ok {
					return nil
				}
				scheduler.Execute(ctx, handler, job, x.retry)
			}
		})
	}

	return eg.Wait()
}

// Pending returns the number of queued jobs.
func (x *Scheduler) Pending() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.queue.Len()
}
