package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/GSMProject-Team/bizzone.kz/internal/application"
)

func newChatCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Two-party chat log",
	}

	cmd.AddCommand(
		newChatSendCmd(app),
		newChatLogCmd(app),
	)

	return cmd
}

func newChatSendCmd(app *app) *cobra.Command {
	var noWait bool

	cmd := &cobra.Command{
		Use:   "send <text>...",
		Short: "Send a message and wait for the simulated reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			_, done, err := app.chat.Send(cmd.Context(), text)
			if err := app.finishMutation(cmd, application.MutationMessage, err); err != nil {
				return err
			}

			if noWait {
				// Exiting drops the scheduled reply, same as canceling it.
				app.chat.CancelPending()
				return nil
			}

			if err := waitForReply(done); err != nil {
				return err
			}
			app.coordinator(cmd.OutOrStdout()).Apply(application.MutationMessage)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noWait, "no-wait", false, "Exit without waiting; the pending reply is dropped")

	return cmd
}

func newChatLogCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the chat log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.moduleEnabled(cmd, "chat") {
				return nil
			}
			app.coordinator(cmd.OutOrStdout()).Refresh(application.ViewChat)
			return nil
		},
	}
}
