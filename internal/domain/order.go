package domain

import (
	"math"
	"time"
)

type OrderStatus string

const (
	OrderStatusNew      OrderStatus = "new"
	OrderStatusPaid     OrderStatus = "paid"
	OrderStatusCanceled OrderStatus = "canceled"
)

// ParseOrderStatus maps raw input to a known status. Empty input defaults to
// "new"; anything else unrecognized reports false.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case OrderStatusNew, OrderStatusPaid, OrderStatusCanceled:
		return OrderStatus(raw), true
	case "":
		return OrderStatusNew, true
	default:
		return "", false
	}
}

// Order references a client by id. The reference is not enforced: deleting a
// client leaves its orders in place with an unresolved ClientID. Status is
// the only field that may change after creation.
type Order struct {
	ID        string      `json:"id"`
	ClientID  string      `json:"client_id"`
	Amount    float64     `json:"amount"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// CoerceAmount normalizes order amounts the way the intake form does:
// negative and non-finite values become 0 rather than being rejected.
func CoerceAmount(raw float64) float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw < 0 {
		return 0
	}
	return raw
}
