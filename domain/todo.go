package domain

import "time"

// Todo is a single persisted note. Items are immutable after creation;
// the store assigns ID and CreatedAt, never the caller.
type Todo struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
