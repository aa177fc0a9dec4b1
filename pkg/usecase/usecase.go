package usecase

import (
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/infra"
)

const defaultFullSyncConcurrency = 15

type UseCase struct {
	clients *infra.Clients
	locks   *keyedMutex

	fullSyncConcurrency int
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithFullSyncConcurrency sets how many installations a full sync reconciles at once.
func WithFullSyncConcurrency(n int) Option {
	return func(x *UseCase) {
		if n > 0 {
			x.fullSyncConcurrency = n
		}
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:             clients,
		locks:               newKeyedMutex(),
		fullSyncConcurrency: defaultFullSyncConcurrency,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
