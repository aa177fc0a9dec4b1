package policy

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/m-mizutani/opac"
)

// DefaultQuery is evaluated when no query is configured.
const DefaultQuery = "data.octosched.schedule"

// OPA evaluates a Rego policy to decide the cadence of each repository.
//
// Input:
//
//	{"repository": {...}, "current": {...} | null}
//
// Expected output:
//
//	{"cron": "0 * * * *", "priority": "normal", "skip": false}
//
// An empty cron or skip=true means the repository has no recurring schedule.
type OPA struct {
	client *opac.Client
	query  string
}

var _ interfaces.SchedulePolicy = (*OPA)(nil)

type opaInput struct {
	Repository opaRepository `json:"repository"`
	Current    *opaCurrent   `json:"current"`
}

type opaRepository struct {
	ID             int64  `json:"id"`
	InstallationID int64  `json:"installation_id"`
	Owner          string `json:"owner"`
	Name           string `json:"name"`
	FullName       string `json:"full_name"`
	DefaultBranch  string `json:"default_branch"`
	Visibility     string `json:"visibility"`
	Private        bool   `json:"private"`
	Archived       bool   `json:"archived"`
	Disabled       bool   `json:"disabled"`
	Fork           bool   `json:"fork"`
}

type opaCurrent struct {
	Cron     string `json:"cron"`
	Priority string `json:"priority"`
}

type opaOutput struct {
	Cron     string `json:"cron"`
	Priority string `json:"priority"`
	Skip     bool   `json:"skip"`
}

func NewOPA(client *opac.Client, query string) *OPA {
	if query == "" {
		query = DefaultQuery
	}
	return &OPA{client: client, query: query}
}

// NewOPAFromFiles loads Rego policies from the given files or directories.
func NewOPAFromFiles(query string, paths ...string) (*OPA, error) {
	client, err := opac.New(opac.Files(paths...))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load schedule policy", goerr.V("paths", paths))
	}
	return NewOPA(client, query), nil
}

func (x *OPA) ComputeSchedule(ctx context.Context, repo *model.Repository, current *model.ScheduleMetadata) (*model.ScheduleMetadata, error) {
	input := opaInput{
		Repository: opaRepository{
			ID:             int64(repo.ID),
			InstallationID: int64(repo.InstallationID),
			Owner:          repo.Owner.Login,
			Name:           repo.Name,
			FullName:       repo.FullName,
			DefaultBranch:  repo.DefaultBranch,
			Visibility:     repo.Visibility,
			Private:        repo.Private,
			Archived:       repo.Archived,
			Disabled:       repo.Disabled,
			Fork:           repo.Fork,
		},
	}
	if current != nil {
		input.Current = &opaCurrent{
			Cron:     current.Cron.String(),
			Priority: current.Priority.String(),
		}
	}

	var output opaOutput
	if err := x.client.Query(ctx, x.query, input, &output); err != nil {
		return nil, goerr.Wrap(err, "failed to evaluate schedule policy",
			goerr.V("query", x.query),
			goerr.V("repo", repo.FullName),
		)
	}

	if output.Skip || output.Cron == "" {
		logging.From(ctx).Debug("policy skipped repository", slog.String("repo", repo.FullName))
		return nil, nil
	}

	priority, err := types.ParseJobPriority(output.Priority)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid priority from schedule policy", goerr.V("repo", repo.FullName))
	}

	md := &model.ScheduleMetadata{
		RepositoryID: repo.ID,
		Cron:         types.CronExpr(output.Cron),
		Priority:     priority,
		UpdatedAt:    time.Now(),
	}
	if err := md.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid schedule from policy", goerr.V("repo", repo.FullName))
	}

	return md, nil
}
