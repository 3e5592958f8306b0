// Package dto はenrollmentsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/enrollments/domain/entity"
)

// EnrollReq は/users/enrollエンドポイントのリクエストボディを表します。
type EnrollReq struct {
	EnrolledCourses []EnrolledCourseReq `json:"enrolledCourses" binding:"required,min=1,dive"`
	TotalPrice      float64             `json:"totalPrice"`
}

// EnrolledCourseReq は受講登録リクエスト内の1コースを表します。
type EnrolledCourseReq struct {
	CourseID uint `json:"courseId" binding:"required"`
}

// EnrollmentUpdateReq は/users/enrollmentUpdateエンドポイントのリクエストボディを表します。
type EnrollmentUpdateReq struct {
	UserID   uint   `json:"userId" binding:"required"`
	CourseID uint   `json:"courseId" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

// EnrollmentItem is the JSON shape of an enrollment in responses.
type EnrollmentItem struct {
	ID              uint                 `json:"id"`
	UserID          uint                 `json:"userId"`
	EnrolledCourses []EnrolledCourseItem `json:"enrolledCourses"`
	TotalPrice      float64              `json:"totalPrice"`
	EnrolledOn      time.Time            `json:"enrolledOn"`
}

// EnrolledCourseItem is the JSON shape of one course entry.
type EnrolledCourseItem struct {
	CourseID uint   `json:"courseId"`
	Status   string `json:"status"`
}

// NewEnrollmentItem converts an enrollment entity into its response shape.
func NewEnrollmentItem(e *entity.Enrollment) EnrollmentItem {
	courses := make([]EnrolledCourseItem, 0, len(e.EnrolledCourses))
	for _, ec := range e.EnrolledCourses {
		courses = append(courses, EnrolledCourseItem{
			CourseID: ec.CourseID,
			Status:   ec.Status,
		})
	}
	return EnrollmentItem{
		ID:              e.ID,
		UserID:          e.UserID,
		EnrolledCourses: courses,
		TotalPrice:      e.TotalPrice,
		EnrolledOn:      e.EnrolledOn,
	}
}

// NewEnrollmentItems converts a slice of enrollment entities.
func NewEnrollmentItems(enrollments []entity.Enrollment) []EnrollmentItem {
	out := make([]EnrollmentItem, 0, len(enrollments))
	for i := range enrollments {
		out = append(out, NewEnrollmentItem(&enrollments[i]))
	}
	return out
}
