package domain

import "time"

type Speaker string

const (
	SpeakerMe   Speaker = "me"
	SpeakerThem Speaker = "them"
)

// Message is one entry of the two-party chat log. The log is append-only:
// messages are never edited or removed individually.
type Message struct {
	ID        string    `json:"id"`
	Who       Speaker   `json:"who"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
