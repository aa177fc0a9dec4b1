package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func reconcileCommand() *cli.Command {
	var st stack

	return &cli.Command{
		Name:      "reconcile",
		Usage:     "Reconcile one installation given by ID or account login",
		ArgsUsage: "<installation ID or login>",
		Flags:     st.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.Wrap(types.ErrInvalidOption, "exactly one installation ID or login is required")
			}
			target := c.Args().First()
			logging.Default().Info("starting reconcile",
				slog.String("target", target),
				slog.Any("config", &st),
			)

			uc, _, cleanup, err := st.build(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := uc.ReconcileInstallationByIDOrLogin(ctx, target)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
}
