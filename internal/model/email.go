package model

import "time"

// Email is an inbound contact-form message stored in the admin inbox.
type Email struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject,omitempty"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
	Read       bool      `json:"read"`
	Favorited  bool      `json:"favorited"`
	Status     string    `json:"status"`
}

// EmailListOptions filters and paginates inbox listings.
// Status "" or "all" returns every message regardless of lifecycle state.
type EmailListOptions struct {
	Status string
	Query  string
	Limit  int
	Offset int
}
