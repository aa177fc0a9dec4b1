package interfaces

import (
	"context"

	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

//go:generate moq -out ../mock/installation_repository_mock.go -pkg mock . InstallationRepository

// InstallationRepository persists installations, their repositories and per-repository schedule
// metadata. Lookups of absent records return types.ErrNotFound.
type InstallationRepository interface {
	// Installation operations
	PutInstallation(ctx context.Context, inst *model.Installation) error
	GetInstallation(ctx context.Context, id types.GitHubAppInstallID) (*model.Installation, error)
	FindInstallationByLogin(ctx context.Context, login string) (*model.Installation, error)
	GetInstallationWithRepositories(ctx context.Context, id types.GitHubAppInstallID) (*model.Installation, []*model.Repository, error)
	// DeleteInstallation also removes every repository of the installation and their metadata.
	DeleteInstallation(ctx context.Context, id types.GitHubAppInstallID) error

	// Repository operations
	ListRepositories(ctx context.Context, id types.GitHubAppInstallID) ([]*model.Repository, error)
	// WriteRepositories makes the stored set of the installation equal to live in one batched
	// write. Failure is reported as types.ErrReconciliation.
	WriteRepositories(ctx context.Context, id types.GitHubAppInstallID, live []*model.Repository) (*model.WriteResult, error)
	DeleteRepositories(ctx context.Context, id types.GitHubAppInstallID) error
	GetRepository(ctx context.Context, id types.GitHubAppInstallID, repoID types.GitHubRepoID) (*model.Repository, error)
	FindRepositoryByFullName(ctx context.Context, fullName string) (*model.Repository, error)
	PutRepository(ctx context.Context, repo *model.Repository) error
	DeleteRepository(ctx context.Context, id types.GitHubAppInstallID, repoID types.GitHubRepoID) (*model.Repository, error)

	// Schedule metadata operations
	GetScheduleMetadata(ctx context.Context, repoID types.GitHubRepoID) (*model.ScheduleMetadata, error)
	PutScheduleMetadata(ctx context.Context, md *model.ScheduleMetadata) error
}
