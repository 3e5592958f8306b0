// Package handler はenrollmentsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/enrollments/domain"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/enrollments/domain/entity"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/enrollments/transport/http/dto"
	jwtmw "github.com/ChadMaddela/Course-Booking-Backend/internal/platform/jwt"
)

// EnrollmentUsecase は受講登録操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type EnrollmentUsecase interface {
	Enroll(ctx context.Context, userID uint, isAdmin bool, courseIDs []uint, totalPrice float64) (*entity.Enrollment, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.Enrollment, error)
	UpdateStatus(ctx context.Context, userID, courseID uint, status string) (*entity.Enrollment, error)
}

// EnrollmentHandler は受講登録のHTTPリクエストを処理します。
type EnrollmentHandler struct {
	enrollments EnrollmentUsecase
}

// NewEnrollmentHandler はEnrollmentHandlerの新しいインスタンスを生成します。
func NewEnrollmentHandler(enrollments EnrollmentUsecase) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// Enroll は認証済みユーザーの受講登録APIです。
// 管理者による登録は403で拒否されます。
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	identity, ok := jwtmw.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	var req dto.EnrollReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	courseIDs := make([]uint, 0, len(req.EnrolledCourses))
	for _, ec := range req.EnrolledCourses {
		courseIDs = append(courseIDs, ec.CourseID)
	}

	enrollment, err := h.enrollments.Enroll(c.Request.Context(), identity.UserID, identity.IsAdmin(), courseIDs, req.TotalPrice)
	if err != nil {
		if err == domain.ErrAdminCannotEnroll {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin is forbidden"})
			return
		}
		slog.Error("enrollment failed", "error", err, "user_id", identity.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error in enrolling"})
		return
	}

	slog.Info("user enrolled", "user_id", identity.UserID, "courses", len(courseIDs))
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Successfully enrolled",
		"enrolled": dto.NewEnrollmentItem(enrollment),
	})
}

// GetEnrollments は認証済みユーザー自身の受講登録一覧を返すAPIです。
func (h *EnrollmentHandler) GetEnrollments(c *gin.Context) {
	identity, ok := jwtmw.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	enrollments, err := h.enrollments.ListByUser(c.Request.Context(), identity.UserID)
	if err != nil {
		slog.Error("list enrollments failed", "error", err, "user_id", identity.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch enrollments"})
		return
	}
	if len(enrollments) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No enrollments found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollments": dto.NewEnrollmentItems(enrollments)})
}

// UpdateStatus は受講登録内の特定コースのステータスを更新するAPIです（管理者のみ）。
func (h *EnrollmentHandler) UpdateStatus(c *gin.Context) {
	var req dto.EnrollmentUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	enrollment, err := h.enrollments.UpdateStatus(c.Request.Context(), req.UserID, req.CourseID, req.Status)
	if err != nil {
		if err == domain.ErrEnrollmentNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Enrollment not found"})
			return
		}
		slog.Error("enrollment status update failed", "error", err, "user_id", req.UserID, "course_id", req.CourseID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update enrollment status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Enrollment status updated successfully",
		"enrollment": dto.NewEnrollmentItem(enrollment),
	})
}
