package models

import "time"

// Profile holds the optional display fields for a user. At most one row per
// user; lazily created on first access with both fields unset.
type Profile struct {
	UserID      string    `json:"-" db:"id"`
	FullName    *string   `json:"full_name" db:"full_name"`
	DisplayName *string   `json:"display_name" db:"display_name"`
	CreatedAt   time.Time `json:"-" db:"created_at"`
	UpdatedAt   time.Time `json:"-" db:"updated_at"`
}
