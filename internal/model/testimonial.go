package model

import "time"

// Testimonial is a customer quote shown on the public site.
// Testimonials have no trash state; deletion is permanent.
type Testimonial struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination,omitempty"`
	Testimonial string    `json:"testimonial"`
	Image       string    `json:"image,omitempty"`
	Role        string    `json:"role,omitempty"`
	Country     string    `json:"country,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
