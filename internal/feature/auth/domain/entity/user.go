// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// DefaultRole is assigned to every user created through registration.
const DefaultRole = "user"

// User represents a registered user in the system.
// A user is identified by a normalized 11-digit mobile phone number.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// PhoneNumber is the user's mobile number used for authentication.
	// It is stored normalized (digits only, leading 09) and must be
	// unique across all users.
	PhoneNumber string `gorm:"uniqueIndex;size:11;not null"`

	// FullName is the display name provided at registration.
	FullName string `gorm:"size:100"`

	// Role is the user's role within the platform.
	Role string `gorm:"size:32;not null;default:user"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
