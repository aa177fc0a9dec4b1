package policy

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

// Fixed gives every repository the same cadence.
type Fixed struct {
	cron         types.CronExpr
	priority     types.JobPriority
	skipInactive bool
}

var _ interfaces.SchedulePolicy = (*Fixed)(nil)

type FixedOption func(*Fixed)

// WithSkipInactive makes archived and disabled repositories unscheduled.
func WithSkipInactive(skip bool) FixedOption {
	return func(x *Fixed) {
		x.skipInactive = skip
	}
}

func NewFixed(cron types.CronExpr, priority types.JobPriority, options ...FixedOption) (*Fixed, error) {
	if err := cron.Validate(); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid schedule cron", goerr.V("cron", cron))
	}
	if err := priority.Validate(); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid schedule priority", goerr.V("priority", priority))
	}

	x := &Fixed{cron: cron, priority: priority}
	for _, opt := range options {
		opt(x)
	}
	return x, nil
}

func (x *Fixed) ComputeSchedule(ctx context.Context, repo *model.Repository, current *model.ScheduleMetadata) (*model.ScheduleMetadata, error) {
	if x.skipInactive && (repo.Archived || repo.Disabled) {
		return nil, nil
	}

	return &model.ScheduleMetadata{
		RepositoryID: repo.ID,
		Cron:         x.cron,
		Priority:     x.priority,
		UpdatedAt:    time.Now(),
	}, nil
}
