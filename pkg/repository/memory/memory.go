package memory

import (
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

// New creates a new in-memory repository
func New() interfaces.InstallationRepository {
	return &installationRepository{
		installations: make(map[types.GitHubAppInstallID]*model.Installation),
		repos:         make(map[types.GitHubAppInstallID]map[types.GitHubRepoID]*model.Repository),
		metadata:      make(map[types.GitHubRepoID]*model.ScheduleMetadata),
	}
}
