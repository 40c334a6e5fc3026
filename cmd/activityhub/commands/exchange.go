package commands

import "github.com/spf13/cobra"

func exchangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange",
		Short: "Convert PHP to foreign currencies at the fixed rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.RunActivity(appCtx.Exchange)
		},
	}
}

// rates dumps the rate screen without entering the sub-menu.
func ratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Print today's exchange rates and transaction policy",
		Run: func(cmd *cobra.Command, args []string) {
			appCtx.Exchange.ShowRates()
		},
	}
}
