package commands

import "github.com/spf13/cobra"

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the virtual student info card",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.RunActivity(appCtx.Info)
		},
	}
}
