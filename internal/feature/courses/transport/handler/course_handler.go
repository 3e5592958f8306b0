// Package handler はcoursesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/domain"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/domain/entity"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/transport/http/dto"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/usecase"
)

// CourseUsecase はコースカタログ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type CourseUsecase interface {
	AddCourse(ctx context.Context, name, description string, price float64) (*entity.Course, error)
	GetAllCourses(ctx context.Context) ([]entity.Course, error)
	GetActiveCourses(ctx context.Context) ([]entity.Course, error)
	GetCourse(ctx context.Context, id uint) (*entity.Course, error)
	UpdateCourse(ctx context.Context, id uint, in usecase.UpdateCourseInput) (*entity.Course, error)
	ArchiveCourse(ctx context.Context, id uint) (*entity.Course, error)
	ActivateCourse(ctx context.Context, id uint) (*entity.Course, error)
	SearchByName(ctx context.Context, name string) ([]entity.Course, error)
	SearchByPrice(ctx context.Context, minPrice, maxPrice float64) ([]entity.Course, error)
	GetEnrolledUserEmails(ctx context.Context, courseID uint) ([]string, error)
}

// CourseHandler はコースカタログのHTTPリクエストを処理します。
type CourseHandler struct {
	courses CourseUsecase
}

// NewCourseHandler はCourseHandlerの新しいインスタンスを生成します。
func NewCourseHandler(courses CourseUsecase) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// courseID parses the :courseId path parameter.
func courseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("courseId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return 0, false
	}
	return uint(id), true
}

// Add は新規コース追加APIです（管理者のみ）。
func (h *CourseHandler) Add(c *gin.Context) {
	var req dto.AddCourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	course, err := h.courses.AddCourse(c.Request.Context(), req.Name, req.Description, req.Price)
	if err != nil {
		if err == domain.ErrCourseAlreadyExists {
			c.JSON(http.StatusConflict, gin.H{"error": "Course already exists"})
			return
		}
		slog.Error("add course failed", "error", err, "name", req.Name)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save the course"})
		return
	}

	slog.Info("course added", "course_id", course.ID, "name", course.Name)
	c.JSON(http.StatusCreated, gin.H{"savedCourse": dto.NewCourseItem(course)})
}

// GetAll はアーカイブ済みを含むすべてのコースを返すAPIです（管理者のみ）。
func (h *CourseHandler) GetAll(c *gin.Context) {
	courses, err := h.courses.GetAllCourses(c.Request.Context())
	if err != nil {
		slog.Error("list courses failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error finding all courses"})
		return
	}
	if len(courses) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No courses found."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": dto.NewCourseItems(courses)})
}

// GetActive は有効なコースの一覧を返す公開APIです。
func (h *CourseHandler) GetActive(c *gin.Context) {
	courses, err := h.courses.GetActiveCourses(c.Request.Context())
	if err != nil {
		slog.Error("list active courses failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error finding active courses"})
		return
	}
	if len(courses) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No active courses found."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": dto.NewCourseItems(courses)})
}

// Get は指定されたコースを返す公開APIです。
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	course, err := h.courses.GetCourse(c.Request.Context(), id)
	if err != nil {
		if err == domain.ErrCourseNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		slog.Error("fetch course failed", "error", err, "course_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch course"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": dto.NewCourseItem(course)})
}

// Update はコース情報を更新するAPIです（管理者のみ）。
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	var req dto.UpdateCourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	course, err := h.courses.UpdateCourse(c.Request.Context(), id, usecase.UpdateCourseInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		if err == domain.ErrCourseNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		slog.Error("update course failed", "error", err, "course_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating a course"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Course updated successfully",
		"updatedCourse": dto.NewCourseItem(course),
	})
}

// Archive はコースを公開リストから除外するAPIです（管理者のみ）。
func (h *CourseHandler) Archive(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	course, err := h.courses.ArchiveCourse(c.Request.Context(), id)
	if err != nil {
		if err == domain.ErrCourseNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		slog.Error("archive course failed", "error", err, "course_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive course"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Course archived successfully",
		"archiveCourse": dto.NewCourseItem(course),
	})
}

// Activate はアーカイブ済みコースを再公開するAPIです（管理者のみ）。
func (h *CourseHandler) Activate(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	course, err := h.courses.ActivateCourse(c.Request.Context(), id)
	if err != nil {
		if err == domain.ErrCourseNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		slog.Error("activate course failed", "error", err, "course_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate course"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Course activated successfully",
		"activateCourse": dto.NewCourseItem(course),
	})
}

// SearchByName は名前の部分一致でコースを検索する公開APIです。
func (h *CourseHandler) SearchByName(c *gin.Context) {
	var req dto.SearchByNameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	courses, err := h.courses.SearchByName(c.Request.Context(), req.CourseName)
	if err != nil {
		slog.Error("search courses failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": dto.NewCourseItems(courses)})
}

// SearchByPrice は価格帯でコースを検索する公開APIです。
func (h *CourseHandler) SearchByPrice(c *gin.Context) {
	var req dto.SearchByPriceReq
	if err := c.ShouldBindJSON(&req); err != nil || req.MinPrice == nil || req.MaxPrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price range"})
		return
	}

	courses, err := h.courses.SearchByPrice(c.Request.Context(), *req.MinPrice, *req.MaxPrice)
	if err != nil {
		slog.Error("search courses by price failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if len(courses) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No courses found within the specified price range."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": dto.NewCourseItems(courses)})
}

// EnrolledUsers は指定コースの受講者メールアドレス一覧を返すAPIです（管理者のみ）。
func (h *CourseHandler) EnrolledUsers(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	emails, err := h.courses.GetEnrolledUserEmails(c.Request.Context(), id)
	if err != nil {
		slog.Error("list enrolled users failed", "error", err, "course_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while retrieving enrolled users"})
		return
	}
	if len(emails) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No users enrolled in this course"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"userEmails": emails})
}
