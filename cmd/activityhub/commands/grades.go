package commands

import "github.com/spf13/cobra"

func gradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "Average four term grades and report pass or fail",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.RunActivity(appCtx.Grades)
		},
	}
}
