// Package dto はcoursesフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/domain/entity"
)

// AddCourseReq は/coursesエンドポイントのリクエストボディを表します。
type AddCourseReq struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

// UpdateCourseReq はコース更新エンドポイントのリクエストボディを表します。
type UpdateCourseReq struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

// SearchByNameReq は名前検索エンドポイントのリクエストボディを表します。
type SearchByNameReq struct {
	CourseName string `json:"courseName"`
}

// SearchByPriceReq は価格帯検索エンドポイントのリクエストボディを表します。
// ポインタ型により、欠落フィールドと0値を区別します。
type SearchByPriceReq struct {
	MinPrice *float64 `json:"minPrice"`
	MaxPrice *float64 `json:"maxPrice"`
}

// CourseItem is the JSON shape of a course in responses.
type CourseItem struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	IsActive    bool      `json:"isActive"`
	CreatedOn   time.Time `json:"createdOn"`
}

// NewCourseItem converts a course entity into its response shape.
func NewCourseItem(c *entity.Course) CourseItem {
	return CourseItem{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		IsActive:    c.IsActive,
		CreatedOn:   c.CreatedAt,
	}
}

// NewCourseItems converts a slice of course entities.
func NewCourseItems(courses []entity.Course) []CourseItem {
	out := make([]CourseItem, 0, len(courses))
	for i := range courses {
		out = append(out, NewCourseItem(&courses[i]))
	}
	return out
}
