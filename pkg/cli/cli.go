package cli

import (
	"context"

	"github.com/fisclab/fiscaliza/pkg/cli/config"
	"github.com/fisclab/fiscaliza/pkg/utils/logging"
	"github.com/fisclab/fiscaliza/pkg/utils/user"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var inspector string
	var closer func()
	app := &cli.Command{
		Name:  "fiscaliza",
		Usage: "Municipal code enforcement records",
		Flags: joinFlags(loggerCfg.Flags(), []cli.Flag{
			&cli.StringFlag{
				Name:        "inspector",
				Usage:       "Name of the inspector operating the tool",
				Value:       "João Silva",
				Sources:     cli.EnvVars("FISCALIZA_INSPECTOR"),
				Destination: &inspector,
			},
		}),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Debug("base options", "inspector", inspector, "logger", loggerCfg)

			return user.WithInspector(ctx, inspector), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdNotice(),
			cmdWorks(),
			cmdLots(),
			cmdConduct(),
			cmdAgenda(),
			cmdUsers(),
			cmdDashboard(),
			cmdReport(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}
