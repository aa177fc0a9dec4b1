package model

import "github.com/m-mizutani/octosched/pkg/domain/types"

// InstallationEvent is the closed shape of an `installation` webhook.
type InstallationEvent struct {
	Action       types.InstallationAction
	Installation Installation
}

// InstallationRepositoriesEvent is the closed shape of an `installation_repositories` webhook.
type InstallationRepositoriesEvent struct {
	Action       types.InstallationRepositoriesAction
	Installation Installation
	Added        []RepositoryRef
	Removed      []RepositoryRef
}

// InstallationTargetEvent is the closed shape of an `installation_target` webhook.
type InstallationTargetEvent struct {
	Action       types.InstallationTargetAction
	Installation Installation
	OldLogin     string
}
