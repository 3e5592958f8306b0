// Package domain defines domain-level errors for the courses feature.
package domain

import "errors"

var (
	// ErrCourseNotFound indicates that no course was found with the given criteria.
	ErrCourseNotFound = errors.New("course not found")

	// ErrCourseAlreadyExists indicates that a course with the given name already exists.
	ErrCourseAlreadyExists = errors.New("course already exists")
)
