package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/robfig/cron/v3"
)

// JobPriority orders job execution. A lower value runs first.
type JobPriority int

const (
	JobPriorityHigh   JobPriority = 5
	JobPriorityNormal JobPriority = 10
	JobPriorityLow    JobPriority = 20
)

func (x JobPriority) String() string {
	switch x {
	case JobPriorityHigh:
		return "high"
	case JobPriorityNormal:
		return "normal"
	case JobPriorityLow:
		return "low"
	default:
		return strconv.Itoa(int(x))
	}
}

func (x JobPriority) Validate() error {
	switch x {
	case JobPriorityHigh, JobPriorityNormal, JobPriorityLow:
		return nil
	}
	return goerr.Wrap(ErrValidationFailed, "unknown job priority", goerr.V("priority", int(x)))
}

// ParseJobPriority accepts "high", "normal", "low" or their numeric values.
func ParseJobPriority(v string) (JobPriority, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "high":
		return JobPriorityHigh, nil
	case "normal", "":
		return JobPriorityNormal, nil
	case "low":
		return JobPriorityLow, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, goerr.Wrap(ErrInvalidOption, "invalid job priority", goerr.V("value", v))
	}
	p := JobPriority(n)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p, nil
}

// CronExpr is a standard five-field cron expression (minute, hour, dom, month, dow).
type CronExpr string

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

func (x CronExpr) String() string { return string(x) }

// Schedule parses the expression into a robfig/cron schedule.
func (x CronExpr) Schedule() (cron.Schedule, error) {
	sched, err := cronParser.Parse(string(x))
	if err != nil {
		return nil, goerr.Wrap(ErrValidationFailed, "invalid cron expression",
			goerr.V("cron", string(x)),
			goerr.V("cause", err.Error()),
		)
	}
	return sched, nil
}

func (x CronExpr) Validate() error {
	_, err := x.Schedule()
	return err
}

// ScheduleID identifies the recurring schedule of one repository.
type ScheduleID string

// JobID identifies one enqueued execution.
type JobID string

func (x ScheduleID) String() string { return string(x) }
func (x JobID) String() string      { return string(x) }

// NewScheduleID derives the recurring schedule identity from installation and repository ids only,
// so renames never orphan a schedule and repeated upserts replace instead of duplicate.
func NewScheduleID(installID GitHubAppInstallID, repoID GitHubRepoID) ScheduleID {
	return ScheduleID(fmt.Sprintf("[job-scheduler_%d_%d]", installID, repoID))
}

// NewOneOffJobID derives the immediate trigger identity. Its prefix differs from the schedule
// identity so a trigger can never replace or cancel the recurring entry.
func NewOneOffJobID(installID GitHubAppInstallID, repoID GitHubRepoID) JobID {
	return JobID(fmt.Sprintf("[oneoff-job_%d_%d]", installID, repoID))
}

// NewRecurringRunJobID identifies one firing of a recurring schedule.
func NewRecurringRunJobID(id ScheduleID, unixMilli int64) JobID {
	return JobID(fmt.Sprintf("%s_%d", strings.Replace(string(id), "job-scheduler", "job", 1), unixMilli))
}

// OneOffJobID returns the immediate trigger identity of the same repository. It reports false
// when x was not built by NewScheduleID.
func (x ScheduleID) OneOffJobID() (JobID, bool) {
	var installID GitHubAppInstallID
	var repoID GitHubRepoID
	if n, err := fmt.Sscanf(string(x), "[job-scheduler_%d_%d]", &installID, &repoID); err != nil || n != 2 {
		return "", false
	}
	if NewScheduleID(installID, repoID) != x {
		return "", false
	}
	return NewOneOffJobID(installID, repoID), true
}
