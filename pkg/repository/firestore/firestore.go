package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
)

type Option func(*installationRepository)

// WithCollectionPrefix prepends prefix to every collection name so that several deployments
// or test runs can share one database.
func WithCollectionPrefix(prefix string) Option {
	return func(r *installationRepository) {
		r.prefix = prefix
	}
}

// New connects to Firestore. An empty databaseID selects the "(default)" database.
func New(ctx context.Context, projectID, databaseID string, options ...Option) (interfaces.InstallationRepository, error) {
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	repo := &installationRepository{
		client: client,
	}
	for _, opt := range options {
		opt(repo)
	}
	return repo, nil
}
