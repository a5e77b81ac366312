package domain

import "time"

// Client is a contact record. Everything except deletion is immutable once
// the record is created; missing text fields default to empty strings.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Channel   string    `json:"channel"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
