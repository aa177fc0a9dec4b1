package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

// Repository is a GitHub repository accessible to an installation. The pair
// (ID, InstallationID) is unique.
type Repository struct {
	ID             types.GitHubRepoID
	InstallationID types.GitHubAppInstallID
	Name           string
	FullName       string
	Owner          Account
	DefaultBranch  string
	Visibility     string
	Private        bool
	Archived       bool
	Disabled       bool
	Fork           bool
	Description    string
	PushedAt       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (x *Repository) Validate() error {
	if x.ID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "repository ID is empty")
	}
	if x.InstallationID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "repository installation ID is empty",
			goerr.V("repoID", x.ID),
		)
	}
	if x.FullName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository full name is empty",
			goerr.V("repoID", x.ID),
		)
	}
	return nil
}

// RepositoryRef is the minimal repository shape carried by installation_repositories events.
type RepositoryRef struct {
	ID       types.GitHubRepoID
	FullName string
}

// SplitFullName splits "owner/name". ok is false when the input is not in that form.
func SplitFullName(fullName string) (owner, name string, ok bool) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// RepositoryIDs returns ids in input order.
func RepositoryIDs(repos []*Repository) []types.GitHubRepoID {
	ids := make([]types.GitHubRepoID, len(repos))
	for i, r := range repos {
		ids[i] = r.ID
	}
	return ids
}
