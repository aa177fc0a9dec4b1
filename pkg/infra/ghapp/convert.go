package ghapp

import (
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

func toAccount(user *github.User) model.Account {
	return model.Account{
		ID:    types.GitHubAccountID(user.GetID()),
		Login: user.GetLogin(),
		Type:  types.AccountType(user.GetType()),
	}
}

// ToInstallation converts an installation of the GitHub API or webhook payload.
func ToInstallation(src *github.Installation) *model.Installation {
	return toInstallation(src)
}

func toInstallation(src *github.Installation) *model.Installation {
	inst := &model.Installation{
		ID:                  types.GitHubAppInstallID(src.GetID()),
		AppID:               types.GitHubAppID(src.GetAppID()),
		Account:             toAccount(src.GetAccount()),
		RepositorySelection: types.RepositorySelection(src.GetRepositorySelection()),
		TargetType:          types.AccountType(src.GetTargetType()),
		CreatedAt:           src.GetCreatedAt().Time,
		UpdatedAt:           src.GetUpdatedAt().Time,
	}

	if src.SuspendedAt != nil && !src.SuspendedAt.IsZero() {
		t := src.SuspendedAt.Time
		inst.SuspendedAt = &t
	}
	if src.SuspendedBy != nil {
		by := toAccount(src.SuspendedBy)
		inst.SuspendedBy = &by
	}

	return inst
}

func toRepository(installID types.GitHubAppInstallID, src *github.Repository) *model.Repository {
	return &model.Repository{
		ID:             types.GitHubRepoID(src.GetID()),
		InstallationID: installID,
		Name:           src.GetName(),
		FullName:       src.GetFullName(),
		Owner:          toAccount(src.GetOwner()),
		DefaultBranch:  src.GetDefaultBranch(),
		Visibility:     src.GetVisibility(),
		Private:        src.GetPrivate(),
		Archived:       src.GetArchived(),
		Disabled:       src.GetDisabled(),
		Fork:           src.GetFork(),
		Description:    src.GetDescription(),
		PushedAt:       src.GetPushedAt().Time,
		CreatedAt:      src.GetCreatedAt().Time,
		UpdatedAt:      src.GetUpdatedAt().Time,
	}
}
