// Package usecase はcoursesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/domain"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/domain/entity"
)

// CourseRepository はコースエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CourseRepository interface {
	// Create は新しいコースを永続化します。
	// 同名のコースが既に存在する場合、domain.ErrCourseAlreadyExistsを返します。
	Create(ctx context.Context, course *entity.Course) error

	// FindAll はすべてのコースを返します。
	FindAll(ctx context.Context) ([]entity.Course, error)

	// FindActive は有効なコースのみを返します。
	FindActive(ctx context.Context) ([]entity.Course, error)

	// FindByID は指定されたIDのコースを取得します。
	// コースが存在しない場合、domain.ErrCourseNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Course, error)

	// Update は既存コースの変更を永続化します。
	Update(ctx context.Context, course *entity.Course) error

	// SearchByName は名前の部分一致（大文字小文字を区別しない）でコースを検索します。
	SearchByName(ctx context.Context, name string) ([]entity.Course, error)

	// SearchByPrice は価格帯でコースを検索します。
	SearchByPrice(ctx context.Context, minPrice, maxPrice float64) ([]entity.Course, error)
}

// EnrollmentLookup は受講者情報への参照を抽象化します。
// 実装はenrollmentsフィーチャーのadaptersが提供します。
type EnrollmentLookup interface {
	// EmailsByCourseID は指定されたコースに登録しているユーザーのメールアドレスを返します。
	EmailsByCourseID(ctx context.Context, courseID uint) ([]string, error)
}

// UpdateCourseInput はコース更新リクエストの入力データです。
type UpdateCourseInput struct {
	Name        string
	Description string
	Price       float64
}

// courseUsecase はコースカタログのビジネスロジックを実装します。
type courseUsecase struct {
	courses     CourseRepository
	enrollments EnrollmentLookup
}

// NewCourseUsecase はcourseUsecaseの新しいインスタンスを生成します。
func NewCourseUsecase(courses CourseRepository, enrollments EnrollmentLookup) *courseUsecase {
	return &courseUsecase{
		courses:     courses,
		enrollments: enrollments,
	}
}

// AddCourse は新しいコースをカタログに追加します。
// 同名コースが存在する場合はdomain.ErrCourseAlreadyExistsを返します。
func (u *courseUsecase) AddCourse(ctx context.Context, name, description string, price float64) (*entity.Course, error) {
	course := &entity.Course{
		Name:        name,
		Description: description,
		Price:       price,
		IsActive:    true,
	}
	if err := u.courses.Create(ctx, course); err != nil {
		if errors.Is(err, domain.ErrCourseAlreadyExists) {
			return nil, domain.ErrCourseAlreadyExists
		}
		return nil, fmt.Errorf("failed to save course: %w", err)
	}
	return course, nil
}

// GetAllCourses はアーカイブ済みを含むすべてのコースを返します。
func (u *courseUsecase) GetAllCourses(ctx context.Context) ([]entity.Course, error) {
	return u.courses.FindAll(ctx)
}

// GetActiveCourses は有効なコースのみを返します。
func (u *courseUsecase) GetActiveCourses(ctx context.Context) ([]entity.Course, error) {
	return u.courses.FindActive(ctx)
}

// GetCourse は指定されたIDのコースを返します。
func (u *courseUsecase) GetCourse(ctx context.Context, id uint) (*entity.Course, error) {
	return u.courses.FindByID(ctx, id)
}

// UpdateCourse はコースの名前・説明・価格を更新します。
func (u *courseUsecase) UpdateCourse(ctx context.Context, id uint, in UpdateCourseInput) (*entity.Course, error) {
	course, err := u.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Name = in.Name
	course.Description = in.Description
	course.Price = in.Price
	if err := u.courses.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	return course, nil
}

// ArchiveCourse はコースを公開リストから除外します。
func (u *courseUsecase) ArchiveCourse(ctx context.Context, id uint) (*entity.Course, error) {
	return u.setActive(ctx, id, false)
}

// ActivateCourse はアーカイブ済みコースを再公開します。
func (u *courseUsecase) ActivateCourse(ctx context.Context, id uint) (*entity.Course, error) {
	return u.setActive(ctx, id, true)
}

func (u *courseUsecase) setActive(ctx context.Context, id uint, active bool) (*entity.Course, error) {
	course, err := u.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.IsActive = active
	if err := u.courses.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	return course, nil
}

// SearchByName は名前の部分一致でコースを検索します。
func (u *courseUsecase) SearchByName(ctx context.Context, name string) ([]entity.Course, error) {
	return u.courses.SearchByName(ctx, name)
}

// SearchByPrice は価格帯でコースを検索します。
func (u *courseUsecase) SearchByPrice(ctx context.Context, minPrice, maxPrice float64) ([]entity.Course, error) {
	return u.courses.SearchByPrice(ctx, minPrice, maxPrice)
}

// GetEnrolledUserEmails は指定されたコースに登録しているユーザーのメールアドレスを返します。
func (u *courseUsecase) GetEnrolledUserEmails(ctx context.Context, courseID uint) ([]string, error) {
	return u.enrollments.EmailsByCourseID(ctx, courseID)
}
