package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/octosched/pkg/domain/model"
)

type UseCase interface {
	HandleInstallationEvent(ctx context.Context, event *model.InstallationEvent) error
	HandleInstallationRepositoriesEvent(ctx context.Context, event *model.InstallationRepositoriesEvent) error
	HandleInstallationTargetEvent(ctx context.Context, event *model.InstallationTargetEvent) error

	GetInstallationDetail(ctx context.Context, idOrLogin string) (*model.InstallationDetail, error)
	ReconcileInstallationByIDOrLogin(ctx context.Context, idOrLogin string) (*model.ReconcileResult, error)
	GetRepositoryByFullName(ctx context.Context, owner, name string) (*model.Repository, error)
	ScheduleRepositoryByFullName(ctx context.Context, owner, name string) (*model.Repository, error)

	FullSync(ctx context.Context) (*model.FullSyncResult, error)
}
