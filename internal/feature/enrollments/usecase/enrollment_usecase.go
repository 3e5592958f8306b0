// Package usecase はenrollmentsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/enrollments/domain"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/enrollments/domain/entity"
)

// EnrollmentRepository は受講登録エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type EnrollmentRepository interface {
	// Create は新しい受講登録を永続化します。
	Create(ctx context.Context, enrollment *entity.Enrollment) error

	// FindByUserID は指定されたユーザーの受講登録をすべて返します。
	FindByUserID(ctx context.Context, userID uint) ([]entity.Enrollment, error)

	// UpdateCourseStatus は指定されたユーザーとコースに一致する受講登録の
	// ステータスを更新し、更新後の受講登録を返します。
	// 一致する登録がない場合、domain.ErrEnrollmentNotFoundを返します。
	UpdateCourseStatus(ctx context.Context, userID, courseID uint, status string) (*entity.Enrollment, error)
}

// enrollmentUsecase は受講登録のビジネスロジックを実装します。
type enrollmentUsecase struct {
	enrollments EnrollmentRepository
}

// NewEnrollmentUsecase はenrollmentUsecaseの新しいインスタンスを生成します。
func NewEnrollmentUsecase(enrollments EnrollmentRepository) *enrollmentUsecase {
	return &enrollmentUsecase{enrollments: enrollments}
}

// Enroll は認証済みユーザーの受講登録を作成します。
// 管理者はカタログの管理者であり受講者ではないため、登録できません。
func (u *enrollmentUsecase) Enroll(ctx context.Context, userID uint, isAdmin bool, courseIDs []uint, totalPrice float64) (*entity.Enrollment, error) {
	if isAdmin {
		return nil, domain.ErrAdminCannotEnroll
	}

	courses := make([]entity.EnrolledCourse, 0, len(courseIDs))
	for _, id := range courseIDs {
		courses = append(courses, entity.EnrolledCourse{
			CourseID: id,
			Status:   entity.EnrollmentStatusEnrolled,
		})
	}

	enrollment := &entity.Enrollment{
		UserID:          userID,
		EnrolledCourses: courses,
		TotalPrice:      totalPrice,
	}
	if err := u.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// ListByUser は指定されたユーザーの受講登録をすべて返します。
func (u *enrollmentUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.Enrollment, error) {
	return u.enrollments.FindByUserID(ctx, userID)
}

// UpdateStatus は受講登録内の特定コースのステータスを更新します（管理者操作）。
func (u *enrollmentUsecase) UpdateStatus(ctx context.Context, userID, courseID uint, status string) (*entity.Enrollment, error) {
	return u.enrollments.UpdateCourseStatus(ctx, userID, courseID, status)
}
