// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered user.
// Identity is carried by an opaque session token rather than a password.
type User struct {
	// ID is the UUID of the user.
	ID string `gorm:"primaryKey;size:36"`

	// Name is the display name.
	Name string `gorm:"size:255;not null"`

	// Email must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// SessionID is the opaque session token issued at registration.
	// It is nil until a token has been issued and maps to exactly one user.
	SessionID *string `gorm:"uniqueIndex;size:64"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time
}
