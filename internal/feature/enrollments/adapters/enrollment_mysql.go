// Package adapters はenrollmentsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	coursesusecase "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/usecase"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/enrollments/domain"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/enrollments/domain/entity"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/enrollments/usecase"
)

// enrollmentMySQL はEnrollmentRepositoryインターフェースのMySQL実装です。
// coursesフィーチャーのEnrollmentLookupも兼ねます。
type enrollmentMySQL struct {
	db *gorm.DB
}

var (
	_ usecase.EnrollmentRepository    = (*enrollmentMySQL)(nil)
	_ coursesusecase.EnrollmentLookup = (*enrollmentMySQL)(nil)
)

// NewEnrollmentMySQL は指定されたgorm.DB接続でenrollmentMySQLの新しいインスタンスを生成します。
func NewEnrollmentMySQL(db *gorm.DB) *enrollmentMySQL {
	return &enrollmentMySQL{db: db}
}

// Create は受講登録と紐づくコースエントリを保存します。
// gormのアソシエーションにより、EnrolledCoursesも同時にINSERTされます。
func (r *enrollmentMySQL) Create(ctx context.Context, e *entity.Enrollment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindByUserID は指定されたユーザーの受講登録をコースエントリ込みで返します。
func (r *enrollmentMySQL) FindByUserID(ctx context.Context, userID uint) ([]entity.Enrollment, error) {
	var enrollments []entity.Enrollment
	if err := r.db.WithContext(ctx).
		Preload("EnrolledCourses").
		Where("user_id = ?", userID).
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// UpdateCourseStatus は指定されたユーザーとコースに一致するコースエントリの
// ステータスを更新し、更新後の受講登録を返します。
func (r *enrollmentMySQL) UpdateCourseStatus(ctx context.Context, userID, courseID uint, status string) (*entity.Enrollment, error) {
	var entry entity.EnrolledCourse
	err := r.db.WithContext(ctx).
		Joins("JOIN enrollments ON enrollments.id = enrolled_courses.enrollment_id").
		Where("enrollments.user_id = ? AND enrolled_courses.course_id = ?", userID, courseID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, err
	}

	entry.Status = status
	if err := r.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}

	var enrollment entity.Enrollment
	if err := r.db.WithContext(ctx).
		Preload("EnrolledCourses").
		First(&enrollment, entry.EnrollmentID).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// EmailsByCourseID は指定されたコースに登録しているユーザーのメールアドレスを返します。
func (r *enrollmentMySQL) EmailsByCourseID(ctx context.Context, courseID uint) ([]string, error) {
	var emails []string
	if err := r.db.WithContext(ctx).
		Table("users").
		Distinct("users.email").
		Joins("JOIN enrollments ON enrollments.user_id = users.id").
		Joins("JOIN enrolled_courses ON enrolled_courses.enrollment_id = enrollments.id").
		Where("enrolled_courses.course_id = ?", courseID).
		Pluck("users.email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}
