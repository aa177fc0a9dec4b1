package types_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

func TestWrapCause(t *testing.T) {
	cause := goerr.New("dial tcp 127.0.0.1:6379: connection refused")
	err := types.WrapCause(types.ErrScheduling, cause, "failed to store recurring job",
		goerr.V("scheduleID", "[job-scheduler_1_2]"),
	)

	gt.True(t, errors.Is(err, types.ErrScheduling))
	gt.True(t, errors.Is(err, cause))
	gt.False(t, errors.Is(err, types.ErrNotFound))

	msg := err.Error()
	gt.S(t, msg).Contains("failed to store recurring job")
	gt.S(t, msg).Contains("scheduling failed")
	gt.S(t, msg).Contains("connection refused")

	var ge *goerr.Error
	gt.True(t, errors.As(err, &ge))
	gt.V(t, ge.Values()["scheduleID"]).Equal("[job-scheduler_1_2]")
}
