package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"activityhub/internal/app"
	"activityhub/internal/logger"
)

var (
	verbose bool
	appCtx  *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "activityhub",
		Short: "Console menu of student programming activities",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}

			cfg := app.DefaultConfig()
			cfg.In = cmd.InOrStdin()
			cfg.Out = cmd.OutOrStdout()
			cfg.Log = logger.New(cmd.ErrOrStderr(), level)
			appCtx = app.NewWire(cfg)

			cfg.Log.Debug().Str("command", cmd.Name()).Msg("app wired")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Run()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(infoCmd(), gradesCmd(), triangleCmd(), exchangeCmd(), ratesCmd())
	return root.Execute()
}
