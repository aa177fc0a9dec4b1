package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/infra/policy"
	"github.com/urfave/cli/v3"
)

// Policy selects the schedule policy. Rego files take precedence over the fixed cadence.
type Policy struct {
	cron         string
	priority     string
	skipInactive bool

	files []string
	query string
}

func (x *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "schedule-cron",
			Usage:       "Cron expression given to every repository",
			Category:    "Policy",
			Sources:     cli.EnvVars("OCTOSCHED_SCHEDULE_CRON"),
			Value:       "0 * * * *",
			Destination: &x.cron,
		},
		&cli.StringFlag{
			Name:        "schedule-priority",
			Usage:       "Priority of recurring jobs [high|normal|low]",
			Category:    "Policy",
			Sources:     cli.EnvVars("OCTOSCHED_SCHEDULE_PRIORITY"),
			Value:       "normal",
			Destination: &x.priority,
		},
		&cli.BoolFlag{
			Name:        "schedule-skip-inactive",
			Usage:       "Do not schedule archived or disabled repositories",
			Category:    "Policy",
			Sources:     cli.EnvVars("OCTOSCHED_SCHEDULE_SKIP_INACTIVE"),
			Destination: &x.skipInactive,
		},
		&cli.StringSliceFlag{
			Name:        "policy-file",
			Usage:       "Rego policy file or directory deciding the schedule of each repository",
			Category:    "Policy",
			Sources:     cli.EnvVars("OCTOSCHED_POLICY_FILE"),
			Destination: &x.files,
		},
		&cli.StringFlag{
			Name:        "policy-query",
			Usage:       "Rego query of the schedule policy",
			Category:    "Policy",
			Sources:     cli.EnvVars("OCTOSCHED_POLICY_QUERY"),
			Value:       policy.DefaultQuery,
			Destination: &x.query,
		},
	}
}

func (x *Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("cron", x.cron),
		slog.String("priority", x.priority),
		slog.Bool("skipInactive", x.skipInactive),
		slog.Any("files", x.files),
		slog.String("query", x.query),
	)
}

func (x *Policy) New() (interfaces.SchedulePolicy, error) {
	if len(x.files) > 0 {
		return policy.NewOPAFromFiles(x.query, x.files...)
	}

	priority, err := types.ParseJobPriority(x.priority)
	if err != nil {
		return nil, types.WrapCause(types.ErrInvalidOption, err, "invalid schedule priority",
			goerr.V("priority", x.priority),
		)
	}

	return policy.NewFixed(types.CronExpr(x.cron), priority,
		policy.WithSkipInactive(x.skipInactive),
	)
}
