package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
)

// LogJobHandler is the default repository job. It only records that the job ran.
type LogJobHandler struct{}

var _ interfaces.JobHandler = LogJobHandler{}

func (LogJobHandler) HandleRepoJob(ctx context.Context, job *model.RepoJob) error {
	attrs := []any{
		slog.Int64("installation_id", int64(job.InstallationID)),
		slog.Int64("repo_id", int64(job.RepositoryID)),
		slog.String("full_name", job.FullName),
		slog.Time("inserted_at", job.InsertedAt),
	}
	if job.Metadata != nil {
		attrs = append(attrs,
			slog.String("cron", job.Metadata.Cron.String()),
			slog.String("priority", job.Metadata.Priority.String()),
		)
	}

	logging.From(ctx).Info("Repository job executed", attrs...)
	return nil
}
