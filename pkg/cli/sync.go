package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func syncCommand() *cli.Command {
	var st stack

	return &cli.Command{
		Name:  "sync",
		Usage: "Reconcile every installation once and exit",
		Flags: st.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting sync", slog.Any("config", &st))
			if !st.scheduler.Distributed() {
				logging.Default().Warn("redis is not configured, registered schedules are lost on exit")
			}

			uc, _, cleanup, err := st.build(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := uc.FullSync(ctx)
			if err != nil {
				return err
			}
			if err := printJSON(result); err != nil {
				return err
			}

			if len(result.Failed) > 0 {
				return goerr.Wrap(types.ErrReconciliation, "some installations failed to sync",
					goerr.V("failed", result.Failed),
				)
			}
			return nil
		},
	}
}
