package testhelper

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

// Backend is a scheduler implementation under test. It must run jobs with a single worker so
// that execution order is observable.
type Backend interface {
	interfaces.JobScheduler
	interfaces.JobRunner
}

// TestAll runs all test cases for a JobScheduler implementation. newBackend must return a fresh,
// isolated instance on every call.
func TestAll(t *testing.T, newBackend func(t *testing.T) Backend) {
	t.Run("RecurringUpsertAndCancel", func(t *testing.T) {
		TestRecurringUpsertAndCancel(t, newBackend(t))
	})
	t.Run("InvalidCron", func(t *testing.T) {
		TestInvalidCron(t, newBackend(t))
	})
	t.Run("EnqueueOrderAndDedupe", func(t *testing.T) {
		TestEnqueueOrderAndDedupe(t, newBackend(t))
	})
	t.Run("HandlerRetry", func(t *testing.T) {
		TestHandlerRetry(t, newBackend(t))
	})
	t.Run("CancelDropsPendingTrigger", func(t *testing.T) {
		TestCancelDropsPendingTrigger(t, newBackend(t))
	})
}

func newJob(name string) *model.RepoJob {
	return &model.RepoJob{
		InstallationID: 1,
		RepositoryID:   types.GitHubRepoID(len(name) + 100),
		Owner:          "acme",
		Repo:           name,
		FullName:       "acme/" + name,
		InsertedAt:     time.Now(),
	}
}

// Recorder is a JobHandler that records executed jobs.
type Recorder struct {
	mu      sync.Mutex
	jobs    []model.RepoJob
	failFor map[string]int
	done    chan struct{}
}

func NewRecorder() *Recorder {
	return &Recorder{
		failFor: map[string]int{},
		done:    make(chan struct{}, 128),
	}
}

// FailFirst makes the first n executions of the job with the given full name fail.
func (x *Recorder) FailFirst(fullName string, n int) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.failFor[fullName] = n
}

func (x *Recorder) HandleRepoJob(ctx context.Context, job *model.RepoJob) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.jobs = append(x.jobs, *job)
	x.done <- struct{}{}

	if x.failFor[job.FullName] > 0 {
		x.failFor[job.FullName]--
		return errors.New("injected failure")
	}
	return nil
}

func (x *Recorder) Names() []string {
	x.mu.Lock()
	defer x.mu.Unlock()

	names := make([]string, len(x.jobs))
	for i, j := range x.jobs {
		names[i] = j.Repo
	}
	return names
}

// Wait blocks until n executions happened or the timeout expires.
func (x *Recorder) Wait(t *testing.T, n int, timeout time.Duration) {
	t.Helper()
	deadline := time.After(timeout)
	for i := 0; i < n; i++ {
		select {
		case <-x.done:
		case <-deadline:
			t.Fatalf("timeout waiting for %d job executions, got %d", n, i)
		}
	}
}

// Run starts backend in the background and returns a function stopping it.
func Run(t *testing.T, backend Backend, handler interfaces.JobHandler) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- backend.Run(ctx, handler)
	}()

	return func() {
		cancel()
		select {
		case err := <-errCh:
			gt.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("scheduler did not stop")
		}
	}
}

// TestRecurringUpsertAndCancel tests identity-keyed replace and idempotent cancel
func TestRecurringUpsertAndCancel(t *testing.T, backend Backend) {
	ctx := context.Background()
	id := types.ScheduleID(fmt.Sprintf("[job-scheduler_%s]", uuid.NewString()))

	_, err := backend.GetRecurring(ctx, id)
	gt.True(t, errors.Is(err, types.ErrNotFound))

	gt.NoError(t, backend.UpsertRecurring(ctx, id, "*/2 * * * *", types.JobPriorityNormal, newJob("a")))

	got, err := backend.GetRecurring(ctx, id)
	gt.NoError(t, err)
	gt.V(t, got.ID).Equal(id)
	gt.V(t, got.Cron).Equal(types.CronExpr("*/2 * * * *"))
	gt.V(t, got.Priority).Equal(types.JobPriorityNormal)
	gt.V(t, got.Job.FullName).Equal("acme/a")
	gt.True(t, got.NextRunAt.After(time.Now().Add(-time.Second)))

	// Same identity replaces the definition
	gt.NoError(t, backend.UpsertRecurring(ctx, id, "0 3 * * *", types.JobPriorityLow, newJob("a")))
	got, err = backend.GetRecurring(ctx, id)
	gt.NoError(t, err)
	gt.V(t, got.Cron).Equal(types.CronExpr("0 3 * * *"))
	gt.V(t, got.Priority).Equal(types.JobPriorityLow)

	gt.NoError(t, backend.CancelRecurring(ctx, id))
	_, err = backend.GetRecurring(ctx, id)
	gt.True(t, errors.Is(err, types.ErrNotFound))

	// Cancelling an absent entry is not an error
	gt.NoError(t, backend.CancelRecurring(ctx, id))
}

// TestInvalidCron tests that malformed cron expressions are rejected
func TestInvalidCron(t *testing.T, backend Backend) {
	ctx := context.Background()
	id := types.ScheduleID(uuid.NewString())

	gt.Error(t, backend.UpsertRecurring(ctx, id, "every minute", types.JobPriorityNormal, newJob("a")))
	_, err := backend.GetRecurring(ctx, id)
	gt.True(t, errors.Is(err, types.ErrNotFound))
}

// TestEnqueueOrderAndDedupe tests priority ordering and identity dedupe of one-off jobs
func TestEnqueueOrderAndDedupe(t *testing.T, backend Backend) {
	ctx := context.Background()
	prefix := uuid.NewString()

	gt.NoError(t, backend.EnqueueOnce(ctx, types.JobID(prefix+"low"), types.JobPriorityLow, newJob("low")))
	time.Sleep(5 * time.Millisecond)
	gt.NoError(t, backend.EnqueueOnce(ctx, types.JobID(prefix+"high"), types.JobPriorityHigh, newJob("high")))
	time.Sleep(5 * time.Millisecond)
	gt.NoError(t, backend.EnqueueOnce(ctx, types.JobID(prefix+"normal"), types.JobPriorityNormal, newJob("normal")))
	time.Sleep(5 * time.Millisecond)
	gt.NoError(t, backend.EnqueueOnce(ctx, types.JobID(prefix+"high"), types.JobPriorityHigh, newJob("high")))

	rec := NewRecorder()
	stop := Run(t, backend, rec)
	rec.Wait(t, 3, 10*time.Second)
	time.Sleep(200 * time.Millisecond)
	stop()

	gt.V(t, rec.Names()).Equal([]string{"high", "normal", "low"})
}

// TestHandlerRetry tests that a failing job is retried inside the queue
func TestHandlerRetry(t *testing.T, backend Backend) {
	ctx := context.Background()
	job := newJob("flaky")

	rec := NewRecorder()
	rec.FailFirst(job.FullName, 1)

	gt.NoError(t, backend.EnqueueOnce(ctx, types.JobID(uuid.NewString()), types.JobPriorityHigh, job))

	stop := Run(t, backend, rec)
	rec.Wait(t, 2, 10*time.Second)
	stop()

	gt.V(t, rec.Names()).Equal([]string{"flaky", "flaky"})
}

// TestCancelDropsPendingTrigger tests that cancelling a schedule also drops the immediate trigger
// of the same repository that has not started yet
func TestCancelDropsPendingTrigger(t *testing.T, backend Backend) {
	ctx := context.Background()
	instID := types.GitHubAppInstallID(rand.Int64N(1 << 40))

	dropped := newJob("dropped")
	dropped.InstallationID = instID
	dropped.RepositoryID = 2
	kept := newJob("kept")
	kept.InstallationID = instID
	kept.RepositoryID = 3

	scheduleID := types.NewScheduleID(instID, dropped.RepositoryID)
	gt.NoError(t, backend.UpsertRecurring(ctx, scheduleID, "0 0 1 1 *", types.JobPriorityNormal, dropped))
	gt.NoError(t, backend.EnqueueOnce(ctx, types.NewOneOffJobID(instID, dropped.RepositoryID), types.JobPriorityHigh, dropped))
	gt.NoError(t, backend.EnqueueOnce(ctx, types.NewOneOffJobID(instID, kept.RepositoryID), types.JobPriorityHigh, kept))

	gt.NoError(t, backend.CancelRecurring(ctx, scheduleID))

	rec := NewRecorder()
	stop := Run(t, backend, rec)
	rec.Wait(t, 1, 10*time.Second)
	time.Sleep(200 * time.Millisecond)
	stop()

	gt.V(t, rec.Names()).Equal([]string{"kept"})
}
