// Package adapters はcoursesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/domain"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/domain/entity"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/usecase"
)

// courseMySQL はCourseRepositoryインターフェースのMySQL実装です。
type courseMySQL struct {
	db *gorm.DB
}

var _ usecase.CourseRepository = (*courseMySQL)(nil)

// NewCourseMySQL は指定されたgorm.DB接続でcourseMySQLの新しいインスタンスを生成します。
func NewCourseMySQL(db *gorm.DB) *courseMySQL {
	return &courseMySQL{db: db}
}

// Create はコースをデータベースに追加します。
// 同名のコースが既に存在する場合、domain.ErrCourseAlreadyExistsを返します。
func (r *courseMySQL) Create(ctx context.Context, course *entity.Course) error {
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return domain.ErrCourseAlreadyExists
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrCourseAlreadyExists
		}
		return err
	}
	return nil
}

// FindAll はすべてのコースを返します。
func (r *courseMySQL) FindAll(ctx context.Context) ([]entity.Course, error) {
	var courses []entity.Course
	if err := r.db.WithContext(ctx).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// FindActive は有効なコースのみを返します。
func (r *courseMySQL) FindActive(ctx context.Context) ([]entity.Course, error) {
	var courses []entity.Course
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// FindByID はIDでコースを取得します。
// コースが存在しない場合、domain.ErrCourseNotFoundを返します。
func (r *courseMySQL) FindByID(ctx context.Context, id uint) (*entity.Course, error) {
	var course entity.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// Update は既存コースの変更を保存します。
func (r *courseMySQL) Update(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

// SearchByName は名前の部分一致（大文字小文字を区別しない）でコースを検索します。
func (r *courseMySQL) SearchByName(ctx context.Context, name string) ([]entity.Course, error) {
	var courses []entity.Course
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// SearchByPrice は価格帯でコースを検索します。
func (r *courseMySQL) SearchByPrice(ctx context.Context, minPrice, maxPrice float64) ([]entity.Course, error) {
	var courses []entity.Course
	if err := r.db.WithContext(ctx).
		Where("price >= ? AND price <= ?", minPrice, maxPrice).
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}
