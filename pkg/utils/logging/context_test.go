package logging_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/octosched/pkg/utils/logging"
)

func TestFrom(t *testing.T) {
	t.Run("logger in context", func(t *testing.T) {
		logger := slog.Default()
		ctx := logging.With(context.Background(), logger)
		gt.V(t, logging.From(ctx)).Equal(logger)
	})

	t.Run("falls back to default logger", func(t *testing.T) {
		retrieved := logging.From(context.Background())
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxRequestID(t *testing.T) {
	reqID1, ctx := logging.CtxRequestID(context.Background())
	gt.V(t, reqID1).NotEqual("")

	reqID2, _ := logging.CtxRequestID(ctx)
	gt.V(t, reqID2).Equal(reqID1)
}

func TestCtxTime(t *testing.T) {
	t.Run("current time without clock", func(t *testing.T) {
		gt.False(t, logging.CtxTime(context.Background()).IsZero())
	})

	t.Run("clock in context", func(t *testing.T) {
		ctx := logging.CtxWithTime(context.Background(), func() time.Time {
			return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		})
		gt.V(t, logging.CtxTime(ctx).Year()).Equal(2024)
	})
}

func TestDetach(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(nil, nil))
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	parent, cancel := context.WithCancel(context.Background())
	reqID, parent := logging.CtxRequestID(parent)
	parent = logging.CtxWithTime(parent, func() time.Time { return now })
	parent = logging.With(parent, logger)

	detached := logging.Detach(parent)
	cancel()

	gt.NoError(t, detached.Err())
	gotID, _ := logging.CtxRequestID(detached)
	gt.V(t, gotID).Equal(reqID)
	gt.V(t, logging.CtxTime(detached)).Equal(now)
	gt.V(t, logging.From(detached)).Equal(logger)
}
