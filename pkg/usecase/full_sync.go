package usecase

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/m-mizutani/octosched/pkg/utils/metrics"
)

// FullSync reconciles every installation visible to the App with bounded concurrency. A failed
// installation is logged and counted; it never stops the sweep. Only a failure to list
// installations is returned as an error.
func (x *UseCase) FullSync(ctx context.Context) (*model.FullSyncResult, error) {
	logger := logging.From(ctx)

	installations, err := x.clients.GitHubApp().ListInstallations(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list installations")
	}
	logger.Info("Start full sync", slog.Int("installations", len(installations)))

	var (
		mu     sync.Mutex
		result = &model.FullSyncResult{Total: len(installations)}
		eg     errgroup.Group
	)
	eg.SetLimit(x.fullSyncConcurrency)

	for _, inst := range installations {
		eg.Go(func() error {
			_, err := x.ReconcileInstallation(ctx, inst.ID, model.SyncTriggerFullSync, model.ReconcileOption{})
			metrics.FullSyncInstallations.WithLabelValues(metrics.Result(err)).Inc()

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Warn("Failed to reconcile installation in full sync",
					slog.Int64("installation_id", int64(inst.ID)),
					slog.String("account", inst.Account.Login),
					slog.Any("error", err),
				)
				result.Failed = append(result.Failed, inst.ID)
				return nil
			}
			result.Succeeded++
			return nil
		})
	}
	_ = eg.Wait()

	slices.Sort(result.Failed)

	logger.Info("Full sync completed",
		slog.Int("total", result.Total),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("failed", len(result.Failed)),
	)
	return result, nil
}
