// Package entity defines the domain entities for the courses feature.
package entity

import "time"

// Course represents a bookable course in the catalog.
type Course struct {
	// ID is the unique identifier for the course.
	ID uint `gorm:"primaryKey"`

	// Name is the course title. It must be unique across the catalog.
	Name string `gorm:"uniqueIndex;size:255;not null"`

	// Description explains the course contents.
	Description string `gorm:"type:text;not null"`

	// Price is the enrollment price.
	Price float64 `gorm:"not null"`

	// IsActive marks the course as open for enrollment.
	// Archived courses keep their record but disappear from the
	// public listing.
	IsActive bool `gorm:"not null;default:true"`

	// CreatedAt is the timestamp when the course was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the course was last updated.
	UpdatedAt time.Time
}
