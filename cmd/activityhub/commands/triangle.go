package commands

import "github.com/spf13/cobra"

func triangleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "triangle",
		Short: "Print right and inverted star triangles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.RunActivity(appCtx.Triangle)
		},
	}
}
