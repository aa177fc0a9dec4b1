package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/repository/firestore"
	"github.com/m-mizutani/octosched/pkg/repository/memory"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID        string
	databaseID       string
	collectionPrefix string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID. In-memory store is used if empty",
			Category:    "Firestore",
			Sources:     cli.EnvVars("OCTOSCHED_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("OCTOSCHED_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix of Firestore collection names",
			Category:    "Firestore",
			Sources:     cli.EnvVars("OCTOSCHED_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &x.collectionPrefix,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
		slog.Any("collectionPrefix", x.collectionPrefix),
	)
}

// NewRepository returns the Firestore store, or the in-memory store when no project is set.
func (x *Firestore) NewRepository(ctx context.Context) (interfaces.InstallationRepository, error) {
	if !x.Enabled() {
		logging.From(ctx).Warn("firestore is not configured, installation state is kept in memory")
		return memory.New(), nil
	}
	return firestore.New(ctx, x.projectID, x.databaseID,
		firestore.WithCollectionPrefix(x.collectionPrefix),
	)
}
