package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

// ScheduleMetadata is the desired cadence of a repository's recurring job. At most one exists
// per repository; no metadata means no recurring schedule is desired.
type ScheduleMetadata struct {
	RepositoryID types.GitHubRepoID `json:"repository_id"`
	Cron         types.CronExpr     `json:"cron"`
	Priority     types.JobPriority  `json:"job_priority"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (x *ScheduleMetadata) Validate() error {
	if x.RepositoryID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "schedule metadata repository ID is empty")
	}
	if err := x.Cron.Validate(); err != nil {
		return goerr.Wrap(err, "invalid schedule metadata", goerr.V("repoID", x.RepositoryID))
	}
	if err := x.Priority.Validate(); err != nil {
		return goerr.Wrap(err, "invalid schedule metadata", goerr.V("repoID", x.RepositoryID))
	}
	return nil
}

// RepoJob is the payload handed to the repository job handler.
type RepoJob struct {
	InstallationID types.GitHubAppInstallID `json:"installation_id"`
	RepositoryID   types.GitHubRepoID       `json:"repository_id"`
	Owner          string                   `json:"owner"`
	Repo           string                   `json:"repo"`
	FullName       string                   `json:"full_name"`
	Metadata       *ScheduleMetadata        `json:"metadata,omitempty"`
	InsertedAt     time.Time                `json:"inserted_at"`
}

func NewRepoJob(repo *Repository, md *ScheduleMetadata, now time.Time) *RepoJob {
	return &RepoJob{
		InstallationID: repo.InstallationID,
		RepositoryID:   repo.ID,
		Owner:          repo.Owner.Login,
		Repo:           repo.Name,
		FullName:       repo.FullName,
		Metadata:       md,
		InsertedAt:     now,
	}
}

// RecurringJob is a schedule registered at the job scheduler.
type RecurringJob struct {
	ID        types.ScheduleID  `json:"id"`
	Cron      types.CronExpr    `json:"cron"`
	Priority  types.JobPriority `json:"priority"`
	Job       RepoJob           `json:"job"`
	NextRunAt time.Time         `json:"next_run_at"`
}

// QueuedJob is one pending execution.
type QueuedJob struct {
	ID         types.JobID       `json:"id"`
	Priority   types.JobPriority `json:"priority"`
	Job        RepoJob           `json:"job"`
	EnqueuedAt time.Time         `json:"enqueued_at"`
}

// Before reports whether x should run before y: lower priority value first, then FIFO.
func (x *QueuedJob) Before(y *QueuedJob) bool {
	if x.Priority != y.Priority {
		return x.Priority < y.Priority
	}
	return x.EnqueuedAt.Before(y.EnqueuedAt)
}
