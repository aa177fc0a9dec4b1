package types

import (
	"log/slog"
	"strconv"
)

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubRepoID        int64
	GitHubAccountID     int64
	GitHubAppSecret     string
	GitHubAppPrivateKey string
)

func (x GitHubAppInstallID) String() string {
	return strconv.FormatInt(int64(x), 10)
}

func (x GitHubRepoID) String() string {
	return strconv.FormatInt(int64(x), 10)
}

func (x GitHubAppSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppSecret) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

// RepositorySelection is the repository access mode of an installation.
type RepositorySelection string

const (
	RepositorySelectionAll      RepositorySelection = "all"
	RepositorySelectionSelected RepositorySelection = "selected"
)

type AccountType string

const (
	AccountTypeUser         AccountType = "User"
	AccountTypeOrganization AccountType = "Organization"
)

// Webhook actions handled by the ingress layer. Any other action is logged and ignored.
type InstallationAction string

const (
	InstallationActionCreated                InstallationAction = "created"
	InstallationActionDeleted                InstallationAction = "deleted"
	InstallationActionSuspend                InstallationAction = "suspend"
	InstallationActionUnsuspend              InstallationAction = "unsuspend"
	InstallationActionNewPermissionsAccepted InstallationAction = "new_permissions_accepted"
)

type InstallationRepositoriesAction string

const (
	InstallationRepositoriesActionAdded   InstallationRepositoriesAction = "added"
	InstallationRepositoriesActionRemoved InstallationRepositoriesAction = "removed"
)

type InstallationTargetAction string

const (
	InstallationTargetActionRenamed InstallationTargetAction = "renamed"
)

type (
	GoogleProjectID     string
	BQDatasetID         string
	BQTableID           string
	FirestoreDatabaseID string
)

func (x GoogleProjectID) String() string     { return string(x) }
func (x BQDatasetID) String() string         { return string(x) }
func (x BQTableID) String() string           { return string(x) }
func (x FirestoreDatabaseID) String() string { return string(x) }
