package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GSMProject-Team/bizzone.kz/internal/application"
)

func newDashboardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard counters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.coordinator(cmd.OutOrStdout()).Refresh(application.ViewDashboard)
			return nil
		},
	}
}

func newAnalyticsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show KPIs and the 7-day order series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.moduleEnabled(cmd, "analytics") {
				return nil
			}
			app.coordinator(cmd.OutOrStdout()).Refresh(application.ViewAnalytics)
			return nil
		},
	}
}
