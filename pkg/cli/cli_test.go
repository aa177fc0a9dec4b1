package cli_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/octosched/pkg/cli"
	"github.com/m-mizutani/octosched/pkg/domain/mock"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

func TestRunRejectsInvalidUsage(t *testing.T) {
	t.Run("reconcile needs a target", func(t *testing.T) {
		err := cli.New().Run([]string{"octosched", "reconcile",
			"--github-app-id", "1",
			"--github-app-private-key", "dummy",
		})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("worker needs redis", func(t *testing.T) {
		err := cli.New().Run([]string{"octosched", "worker"})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("invalid log level", func(t *testing.T) {
		err := cli.New().Run([]string{"octosched", "--log-level", "verbose", "worker"})
		gt.Error(t, err)
	})
}

func TestRunFullSync(t *testing.T) {
	t.Run("startup sweep only", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			FullSyncFunc: func(ctx context.Context) (*model.FullSyncResult, error) {
				return &model.FullSyncResult{Total: 1, Succeeded: 1}, nil
			},
		}
		cli.RunFullSync(context.Background(), uc, true, 0)
		gt.A(t, uc.FullSyncCalls()).Length(1)
	})

	t.Run("skip startup without interval", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		cli.RunFullSync(context.Background(), uc, false, 0)
		gt.A(t, uc.FullSyncCalls()).Length(0)
	})

	t.Run("periodic sweeps continue after failure", func(t *testing.T) {
		var calls atomic.Int32
		ctx, cancel := context.WithCancel(context.Background())
		uc := &mock.UseCaseMock{
			FullSyncFunc: func(ctx context.Context) (*model.FullSyncResult, error) {
				if calls.Add(1) >= 3 {
					cancel()
				}
				return nil, goerr.New("listing failed")
			},
		}

		done := make(chan struct{})
		go func() {
			cli.RunFullSync(ctx, uc, false, 5*time.Millisecond)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("full sync loop did not stop")
		}
		gt.True(t, calls.Load() >= 3)
	})
}
