package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
)

// HandleInstallationTargetEvent reconciles an installation whose account was renamed. Schedule
// identities do not depend on names, so no immediate run is triggered.
func (x *UseCase) HandleInstallationTargetEvent(ctx context.Context, event *model.InstallationTargetEvent) error {
	if event.Action != types.InstallationTargetActionRenamed {
		logging.From(ctx).Info("Ignore installation_target event",
			slog.String("action", string(event.Action)),
			slog.Int64("installation_id", int64(event.Installation.ID)),
		)
		return nil
	}

	logging.From(ctx).Info("Installation account renamed",
		slog.Int64("installation_id", int64(event.Installation.ID)),
		slog.String("old_login", event.OldLogin),
		slog.String("new_login", event.Installation.Account.Login),
	)

	_, err := x.ReconcileInstallation(ctx, event.Installation.ID, model.SyncTriggerWebhook, model.ReconcileOption{})
	return err
}
