package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GSMProject-Team/bizzone.kz/internal/application"
)

func newClientCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(
		newClientAddCmd(app),
		newClientListCmd(app),
		newClientDeleteCmd(app),
	)

	return cmd
}

func newClientAddCmd(app *app) *cobra.Command {
	var create application.CreateClientCommand

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := app.store.CreateClient(cmd.Context(), create)
			return app.finishMutation(cmd, application.MutationClient, err)
		},
	}

	cmd.Flags().StringVar(&create.Name, "name", "", "Client name")
	cmd.Flags().StringVar(&create.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&create.Channel, "channel", "", "Acquisition channel")
	cmd.Flags().StringVar(&create.Notes, "notes", "", "Free-form notes")

	return cmd
}

func newClientListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.moduleEnabled(cmd, "clients") {
				return nil
			}
			app.coordinator(cmd.OutOrStdout()).Refresh(application.ViewClients)
			return nil
		},
	}
}

func newClientDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a client (orders keep their reference)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.store.DeleteClient(cmd.Context(), args[0])
			return app.finishMutation(cmd, application.MutationClient, err)
		},
	}
}
