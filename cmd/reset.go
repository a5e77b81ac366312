package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/GSMProject-Team/bizzone.kz/internal/application"
)

var errResetNotConfirmed = errors.New("refusing to wipe data without --yes")

func newResetCmd(app *app) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all data and restore default settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return errResetNotConfirmed
			}

			// A scheduled chat reply must not append into the cleared log.
			app.chat.CancelPending()

			err := app.store.ResetAll(cmd.Context())
			return app.finishMutation(cmd, application.MutationReset, err)
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm wiping all data")

	return cmd
}
