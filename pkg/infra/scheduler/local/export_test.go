package local

import (
	"context"

	"github.com/m-mizutani/octosched/pkg/domain/types"
)

// Fire triggers one execution of a recurring entry without waiting for its cron time.
func (x *Scheduler) Fire(ctx context.Context, id types.ScheduleID) {
	x.fire(ctx, id)
}
