package model

import "time"

// Service represents one visa service offered on the public site
// (tourist visa, student visa, work permit, ...).
type Service struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description,omitempty"`
	Requirements    []string  `json:"requirements,omitempty"`
	Image           string    `json:"image,omitempty"`
	Icon            string    `json:"icon,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// serviceIcons is the closed set of icon identifiers the admin UI may pick
// from. Icons are validated at write time, never resolved dynamically.
var serviceIcons = map[string]struct{}{
	"plane":     {},
	"passport":  {},
	"graduate":  {},
	"briefcase": {},
	"family":    {},
	"globe":     {},
	"stamp":     {},
	"building":  {},
}

// ValidServiceIcon reports whether name is a known icon identifier.
// The empty string is allowed (no icon).
func ValidServiceIcon(name string) bool {
	if name == "" {
		return true
	}
	_, ok := serviceIcons[name]
	return ok
}
