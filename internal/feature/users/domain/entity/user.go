// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and profile data.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// FirstName and LastName form the user's display name.
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users; the unique index is the
	// authoritative guard against duplicate registration.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// MobileNo is an 11-character mobile number. Accounts created via
	// Google login have no mobile number.
	MobileNo string `gorm:"size:11"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// IsAdmin marks the user as an administrator.
	IsAdmin bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
