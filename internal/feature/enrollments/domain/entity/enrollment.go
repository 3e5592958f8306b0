// Package entity defines the domain entities for the enrollments feature.
package entity

import "time"

// EnrollmentStatusEnrolled is the initial status of a booked course.
const EnrollmentStatusEnrolled = "Enrolled"

// Enrollment represents one booking transaction: a user enrolling in
// one or more courses at a total price.
type Enrollment struct {
	// ID is the unique identifier for the enrollment.
	ID uint `gorm:"primaryKey"`

	// UserID references the enrolling user.
	UserID uint `gorm:"index;not null"`

	// EnrolledCourses lists the booked courses with their per-course status.
	EnrolledCourses []EnrolledCourse `gorm:"foreignKey:EnrollmentID"`

	// TotalPrice is the total charged for this enrollment.
	TotalPrice float64 `gorm:"not null"`

	// EnrolledOn is the timestamp when the enrollment was created.
	EnrolledOn time.Time `gorm:"autoCreateTime"`
}

// EnrolledCourse is a single course entry inside an enrollment.
type EnrolledCourse struct {
	// ID is the unique identifier for the entry.
	ID uint `gorm:"primaryKey"`

	// EnrollmentID references the owning enrollment.
	EnrollmentID uint `gorm:"index;not null"`

	// CourseID references the booked course.
	CourseID uint `gorm:"index;not null"`

	// Status tracks the entry's lifecycle (e.g. Enrolled, Completed, Cancelled).
	// Admins update it via the enrollment update endpoint.
	Status string `gorm:"size:50;not null"`
}
