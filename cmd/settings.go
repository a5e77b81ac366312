package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GSMProject-Team/bizzone.kz/internal/application"
	"github.com/GSMProject-Team/bizzone.kz/internal/domain"
)

func newSettingsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Module toggles",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show module settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.coordinator(cmd.OutOrStdout()).Refresh(application.ViewSettings)
			return nil
		},
	}
}

func newSettingsSetCmd(app *app) *cobra.Command {
	settings := domain.DefaultSettings()

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace module settings",
		Long:  "Replaces the whole settings record. Flags not given revert to their default (enabled); flags are never merged with the stored record.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := app.store.ReplaceSettings(cmd.Context(), application.ReplaceSettingsCommand{Settings: settings})
			return app.finishMutation(cmd, application.MutationSettings, err)
		},
	}

	cmd.Flags().BoolVar(&settings.ModuleClients, "clients", true, "Enable the clients module")
	cmd.Flags().BoolVar(&settings.ModuleSales, "sales", true, "Enable the sales module")
	cmd.Flags().BoolVar(&settings.ModuleAnalytics, "analytics", true, "Enable the analytics module")
	cmd.Flags().BoolVar(&settings.ModuleChat, "chat", true, "Enable the chat module")

	return cmd
}
