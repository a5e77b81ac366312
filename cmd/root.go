package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bz",
		Short:         "bizzone: single-operator business console",
		Long:          "bz tracks clients, sales orders and a chat log in local storage, and derives dashboard and analytics views from them. No network backend: everything lives in per-kind JSON documents on disk.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
		newDashboardCmd(app),
		newClientCmd(app),
		newOrderCmd(app),
		newChatCmd(app),
		newAnalyticsCmd(app),
		newSettingsCmd(app),
		newExportCmd(app),
		newResetCmd(app),
	)

	return rootCmd
}
