// Package domain defines domain-level errors for the enrollments feature.
package domain

import "errors"

var (
	// ErrEnrollmentNotFound indicates that no enrollment matches the given criteria.
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrAdminCannotEnroll indicates that an administrator attempted to enroll.
	// Admins manage the catalog; they do not book courses.
	ErrAdminCannotEnroll = errors.New("admin is forbidden from enrolling")
)
