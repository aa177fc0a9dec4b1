package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/infra/ghapp"
	"github.com/m-mizutani/octosched/pkg/utils/errutil"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
)

// webhookJob is one validated webhook ready to be handed to the use case.
type webhookJob func(ctx context.Context, uc interfaces.UseCase) error

func handleGitHubAppWebhook(uc interfaces.UseCase, cfg *config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		job, err := parseGitHubAppEvent(r, cfg.ghSecret)
		if err != nil {
			logging.From(ctx).Warn("Invalid GitHub App webhook", slog.Any("error", err))
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		if job == nil {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
			return
		}

		cfg.dispatch(ctx, func(ctx context.Context) {
			if err := job(ctx, uc); err != nil {
				errutil.HandleError(ctx, "failed to handle GitHub App webhook", err)
				return
			}
			logging.From(ctx).Info("GitHub App webhook handled")
		})

		writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
	}
}

// parseGitHubAppEvent validates the signature and converts the payload. A nil job means the
// event is not one the scheduler cares about.
func parseGitHubAppEvent(r *http.Request, secret types.GitHubAppSecret) (webhookJob, error) {
	payload, err := github.ValidatePayload(r, []byte(secret))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to validate payload")
	}

	eventType := github.WebHookType(r)
	logging.From(r.Context()).Info("Received GitHub App event",
		slog.String("type", eventType),
		slog.String("delivery", github.DeliveryID(r)),
	)

	// go-github v53 does not know installation_target, so it is decoded here.
	if eventType == eventInstallationTarget {
		var ev installationTargetPayload
		if err := json.Unmarshal(payload, &ev); err != nil {
			return nil, types.WrapCause(types.ErrInvalidGitHubData, err, "failed to decode installation_target event")
		}
		return toInstallationTargetJob(&ev)
	}

	event, err := github.ParseWebHook(eventType, payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse webhook", goerr.V("type", eventType))
	}

	return toWebhookJob(event)
}

const eventInstallationTarget = "installation_target"

// installationTargetPayload is the part of an installation_target webhook the scheduler reads.
type installationTargetPayload struct {
	Action       string               `json:"action"`
	Account      *github.User         `json:"account"`
	Installation *github.Installation `json:"installation"`
	Changes      struct {
		Login struct {
			From string `json:"from"`
		} `json:"login"`
	} `json:"changes"`
}

func toInstallationTargetJob(ev *installationTargetPayload) (webhookJob, error) {
	if ev.Installation == nil {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "installation_target event without installation")
	}
	action := types.InstallationTargetAction(ev.Action)
	if action != types.InstallationTargetActionRenamed {
		return nil, nil
	}

	inst := ghapp.ToInstallation(ev.Installation)
	if inst.Account.Login == "" && ev.Account != nil {
		inst.Account.ID = types.GitHubAccountID(ev.Account.GetID())
		inst.Account.Login = ev.Account.GetLogin()
		inst.Account.Type = types.AccountType(ev.Account.GetType())
	}
	input := &model.InstallationTargetEvent{
		Action:       action,
		Installation: *inst,
		OldLogin:     ev.Changes.Login.From,
	}
	return func(ctx context.Context, uc interfaces.UseCase) error {
		return uc.HandleInstallationTargetEvent(ctx, input)
	}, nil
}

func toWebhookJob(event any) (webhookJob, error) {
	switch ev := event.(type) {
	case *github.InstallationEvent:
		if ev.Installation == nil {
			return nil, goerr.Wrap(types.ErrInvalidGitHubData, "installation event without installation")
		}
		action := types.InstallationAction(ev.GetAction())
		switch action {
		case types.InstallationActionCreated,
			types.InstallationActionDeleted,
			types.InstallationActionSuspend,
			types.InstallationActionUnsuspend,
			types.InstallationActionNewPermissionsAccepted:
		default:
			return nil, nil
		}

		input := &model.InstallationEvent{
			Action:       action,
			Installation: *ghapp.ToInstallation(ev.Installation),
		}
		return func(ctx context.Context, uc interfaces.UseCase) error {
			return uc.HandleInstallationEvent(ctx, input)
		}, nil

	case *github.InstallationRepositoriesEvent:
		if ev.Installation == nil {
			return nil, goerr.Wrap(types.ErrInvalidGitHubData, "installation_repositories event without installation")
		}
		action := types.InstallationRepositoriesAction(ev.GetAction())
		if action != types.InstallationRepositoriesActionAdded && action != types.InstallationRepositoriesActionRemoved {
			return nil, nil
		}

		input := &model.InstallationRepositoriesEvent{
			Action:       action,
			Installation: *ghapp.ToInstallation(ev.Installation),
			Added:        toRepositoryRefs(ev.RepositoriesAdded),
			Removed:      toRepositoryRefs(ev.RepositoriesRemoved),
		}
		return func(ctx context.Context, uc interfaces.UseCase) error {
			return uc.HandleInstallationRepositoriesEvent(ctx, input)
		}, nil

	default:
		logging.Default().Debug("Ignore unsupported event", slog.String("type", fmt.Sprintf("%T", event)))
		return nil, nil
	}
}

func toRepositoryRefs(repos []*github.Repository) []model.RepositoryRef {
	refs := make([]model.RepositoryRef, 0, len(repos))
	for _, repo := range repos {
		refs = append(refs, model.RepositoryRef{
			ID:       types.GitHubRepoID(repo.GetID()),
			FullName: repo.GetFullName(),
		})
	}
	return refs
}
