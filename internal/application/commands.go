package application

import "github.com/GSMProject-Team/bizzone.kz/internal/domain"

// Mutation classifies a completed command for the sync coordinator.
type Mutation string

const (
	MutationClient   Mutation = "client"
	MutationOrder    Mutation = "order"
	MutationMessage  Mutation = "message"
	MutationSettings Mutation = "settings"
	MutationReset    Mutation = "reset"
)

// Command payloads, one per mutation the store accepts. Each is plain data
// translated from user input at the CLI boundary; no presentation types
// reach the store.

type CreateClientCommand struct {
	Name    string
	Phone   string
	Channel string
	Notes   string
}

type CreateOrderCommand struct {
	ClientID string
	Amount   float64
	// Status is raw input; empty or unknown values fall back to "new" on
	// create. Only SetOrderStatus rejects unknown values.
	Status string
}

type AppendMessageCommand struct {
	Who  domain.Speaker
	Text string
}

type ReplaceSettingsCommand struct {
	Settings domain.Settings
}
