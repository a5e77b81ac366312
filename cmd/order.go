package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GSMProject-Team/bizzone.kz/internal/application"
)

func newOrderCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Manage sales orders",
	}

	cmd.AddCommand(
		newOrderAddCmd(app),
		newOrderListCmd(app),
		newOrderSetStatusCmd(app),
		newOrderDeleteCmd(app),
	)

	return cmd
}

func newOrderAddCmd(app *app) *cobra.Command {
	var create application.CreateOrderCommand

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := app.store.CreateOrder(cmd.Context(), create)
			return app.finishMutation(cmd, application.MutationOrder, err)
		},
	}

	cmd.Flags().StringVar(&create.ClientID, "client", "", "Client id")
	cmd.Flags().Float64Var(&create.Amount, "amount", 0, "Order amount (negative or non-finite becomes 0)")
	cmd.Flags().StringVar(&create.Status, "status", "", "Order status: new, paid or canceled (defaults to new)")

	return cmd
}

func newOrderListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.moduleEnabled(cmd, "sales") {
				return nil
			}
			coord := app.coordinator(cmd.OutOrStdout())
			coord.Refresh(application.ViewClientSelector)
			coord.Refresh(application.ViewOrders)
			return nil
		},
	}
}

func newOrderSetStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.store.SetOrderStatus(cmd.Context(), args[0], args[1])
			return app.finishMutation(cmd, application.MutationOrder, err)
		},
	}
}

func newOrderDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.store.DeleteOrder(cmd.Context(), args[0])
			return app.finishMutation(cmd, application.MutationOrder, err)
		},
	}
}
