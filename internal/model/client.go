package model

import "time"

// Client is a consultancy customer. The ID is the canonical key everywhere;
// the name is a display string and may change, so manifest entries and
// opening balances carry it only as a denormalized copy.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
