package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHubApp JobScheduler SchedulePolicy JobHandler

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// GitHubApp is the external directory of installations and repositories. Every method that
// talks to GitHub returns types.ErrAuthFailed when credentials are rejected and
// types.ErrNotFound when the target does not exist.
type GitHubApp interface {
	GetInstallation(ctx context.Context, installID types.GitHubAppInstallID) (*model.Installation, error)
	ListInstallations(ctx context.Context) ([]*model.Installation, error)
	ListInstallationRepos(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.Repository, error)
	GetRepositoryByID(ctx context.Context, installID types.GitHubAppInstallID, repoID types.GitHubRepoID) (*model.Repository, error)
	GetInstallationIDForOwner(ctx context.Context, owner string) (types.GitHubAppInstallID, error)
}

// JobScheduler registers recurring schedules and one-off jobs. Identities are caller supplied:
// UpsertRecurring with an existing id replaces the entry, EnqueueOnce with the id of a pending job
// is a no-op and CancelRecurring of an unknown id succeeds.
type JobScheduler interface {
	UpsertRecurring(ctx context.Context, id types.ScheduleID, cron types.CronExpr, priority types.JobPriority, job *model.RepoJob) error
	EnqueueOnce(ctx context.Context, id types.JobID, priority types.JobPriority, job *model.RepoJob) error
	CancelRecurring(ctx context.Context, id types.ScheduleID) error
	GetRecurring(ctx context.Context, id types.ScheduleID) (*model.RecurringJob, error)
}

// JobRunner executes due jobs until ctx is cancelled.
type JobRunner interface {
	Run(ctx context.Context, handler JobHandler) error
}

type JobHandler interface {
	HandleRepoJob(ctx context.Context, job *model.RepoJob) error
}

// SchedulePolicy decides the cadence of a repository. Returning nil means the repository must
// not have a recurring schedule.
type SchedulePolicy interface {
	ComputeSchedule(ctx context.Context, repo *model.Repository, current *model.ScheduleMetadata) (*model.ScheduleMetadata, error)
}
