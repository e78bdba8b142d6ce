package models

import "time"

// Record is an event record. The same shape backs both the unscoped
// and the owner-scoped event stores.
type Record struct {
	// ID is the server-assigned UUID of the record.
	ID string `json:"id"`

	// OwnerID references the owning user in the owner-scoped store.
	// Empty for unscoped records. Set once at creation and never exposed.
	OwnerID string `json:"-"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// CreatedAt is set once, at creation.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation. Always >= CreatedAt.
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordUpdate describes a partial update of a single record.
// Only non-nil fields are written.
type RecordUpdate struct {
	ID      string
	OwnerID string

	Title       *string
	Description *string
}
