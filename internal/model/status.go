package model

// Lifecycle status values shared by the soft-deletable collections.
// Manifest entries use StatusActive/StatusInactive instead of trash:
// "inactive" means excluded from the current accounting period, not deleted.
const (
	StatusActive   = "active"
	StatusTrash    = "trash"
	StatusInactive = "inactive"
)
