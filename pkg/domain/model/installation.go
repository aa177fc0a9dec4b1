package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

// Account is the GitHub user or organization that owns an installation or repository.
type Account struct {
	ID    types.GitHubAccountID
	Login string
	Type  types.AccountType
}

// Installation is one GitHub App installation. The same type carries both the regular and the
// suspended payload shapes; SuspendedAt is nil while the installation is active.
type Installation struct {
	ID                  types.GitHubAppInstallID
	AppID               types.GitHubAppID
	Account             Account
	RepositorySelection types.RepositorySelection
	TargetType          types.AccountType
	SuspendedAt         *time.Time
	SuspendedBy         *Account
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (x *Installation) IsSuspended() bool {
	return x != nil && x.SuspendedAt != nil && !x.SuspendedAt.IsZero()
}

func (x *Installation) Validate() error {
	if x.ID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "installation ID is empty")
	}
	if x.Account.Login == "" {
		return goerr.Wrap(types.ErrValidationFailed, "installation account login is empty",
			goerr.V("installationID", x.ID),
		)
	}
	return nil
}

// InstallationDetail is an installation together with its locally tracked repositories.
type InstallationDetail struct {
	Installation *Installation  `json:"installation"`
	Repositories []*Repository `json:"repositories"`
}
