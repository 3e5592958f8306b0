package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/domain"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/domain/entity"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/usecase"
)

// mockCourseUsecase is a mock implementation of the CourseUsecase interface.
type mockCourseUsecase struct {
	AddCourseFunc             func(ctx context.Context, name, description string, price float64) (*entity.Course, error)
	GetAllCoursesFunc         func(ctx context.Context) ([]entity.Course, error)
	GetActiveCoursesFunc      func(ctx context.Context) ([]entity.Course, error)
	GetCourseFunc             func(ctx context.Context, id uint) (*entity.Course, error)
	UpdateCourseFunc          func(ctx context.Context, id uint, in usecase.UpdateCourseInput) (*entity.Course, error)
	ArchiveCourseFunc         func(ctx context.Context, id uint) (*entity.Course, error)
	ActivateCourseFunc        func(ctx context.Context, id uint) (*entity.Course, error)
	SearchByNameFunc          func(ctx context.Context, name string) ([]entity.Course, error)
	SearchByPriceFunc         func(ctx context.Context, minPrice, maxPrice float64) ([]entity.Course, error)
	GetEnrolledUserEmailsFunc func(ctx context.Context, courseID uint) ([]string, error)
}

func (m *mockCourseUsecase) AddCourse(ctx context.Context, name, description string, price float64) (*entity.Course, error) {
	if m.AddCourseFunc != nil {
		return m.AddCourseFunc(ctx, name, description, price)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseUsecase) GetAllCourses(ctx context.Context) ([]entity.Course, error) {
	if m.GetAllCoursesFunc != nil {
		return m.GetAllCoursesFunc(ctx)
	}
	return nil, nil
}

func (m *mockCourseUsecase) GetActiveCourses(ctx context.Context) ([]entity.Course, error) {
	if m.GetActiveCoursesFunc != nil {
		return m.GetActiveCoursesFunc(ctx)
	}
	return nil, nil
}

func (m *mockCourseUsecase) GetCourse(ctx context.Context, id uint) (*entity.Course, error) {
	if m.GetCourseFunc != nil {
		return m.GetCourseFunc(ctx, id)
	}
	return nil, domain.ErrCourseNotFound
}

func (m *mockCourseUsecase) UpdateCourse(ctx context.Context, id uint, in usecase.UpdateCourseInput) (*entity.Course, error) {
	if m.UpdateCourseFunc != nil {
		return m.UpdateCourseFunc(ctx, id, in)
	}
	return nil, domain.ErrCourseNotFound
}

func (m *mockCourseUsecase) ArchiveCourse(ctx context.Context, id uint) (*entity.Course, error) {
	if m.ArchiveCourseFunc != nil {
		return m.ArchiveCourseFunc(ctx, id)
	}
	return nil, domain.ErrCourseNotFound
}

func (m *mockCourseUsecase) ActivateCourse(ctx context.Context, id uint) (*entity.Course, error) {
	if m.ActivateCourseFunc != nil {
		return m.ActivateCourseFunc(ctx, id)
	}
	return nil, domain.ErrCourseNotFound
}

func (m *mockCourseUsecase) SearchByName(ctx context.Context, name string) ([]entity.Course, error) {
	if m.SearchByNameFunc != nil {
		return m.SearchByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockCourseUsecase) SearchByPrice(ctx context.Context, minPrice, maxPrice float64) ([]entity.Course, error) {
	if m.SearchByPriceFunc != nil {
		return m.SearchByPriceFunc(ctx, minPrice, maxPrice)
	}
	return nil, nil
}

func (m *mockCourseUsecase) GetEnrolledUserEmails(ctx context.Context, courseID uint) ([]string, error) {
	if m.GetEnrolledUserEmailsFunc != nil {
		return m.GetEnrolledUserEmailsFunc(ctx, courseID)
	}
	return nil, nil
}

func doJSON(router *gin.Engine, method, path string, body gin.H) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		buf.Write(b)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCourseHandler_Add(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockFunc       func(ctx context.Context, name, description string, price float64) (*entity.Course, error)
		expectedStatus int
		expectedKey    string
	}{
		{
			name:        "success: course added",
			requestBody: gin.H{"name": "Go Basics", "description": "intro", "price": 1500},
			mockFunc: func(ctx context.Context, name, description string, price float64) (*entity.Course, error) {
				return &entity.Course{ID: 1, Name: name, Description: description, Price: price, IsActive: true}, nil
			},
			expectedStatus: http.StatusCreated,
			expectedKey:    "savedCourse",
		},
		{
			name:        "failure: duplicate course",
			requestBody: gin.H{"name": "Go Basics", "description": "intro", "price": 1500},
			mockFunc: func(ctx context.Context, name, description string, price float64) (*entity.Course, error) {
				return nil, domain.ErrCourseAlreadyExists
			},
			expectedStatus: http.StatusConflict,
			expectedKey:    "error",
		},
		{
			name:           "failure: missing name",
			requestBody:    gin.H{"description": "intro", "price": 1500},
			mockFunc:       nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCourseHandler(&mockCourseUsecase{AddCourseFunc: tt.mockFunc})

			router := gin.New()
			router.POST("/courses", handler.Add)

			w := doJSON(router, http.MethodPost, "/courses", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Contains(t, responseBody, tt.expectedKey)
		})
	}
}

func TestCourseHandler_GetActive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: returns active courses", func(t *testing.T) {
		handler := NewCourseHandler(&mockCourseUsecase{
			GetActiveCoursesFunc: func(ctx context.Context) ([]entity.Course, error) {
				return []entity.Course{
					{ID: 1, Name: "Go Basics", Price: 1500, IsActive: true},
				}, nil
			},
		})

		router := gin.New()
		router.GET("/courses", handler.GetActive)

		w := doJSON(router, http.MethodGet, "/courses", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Go Basics")
	})

	t.Run("success: empty catalog returns message", func(t *testing.T) {
		handler := NewCourseHandler(&mockCourseUsecase{})

		router := gin.New()
		router.GET("/courses", handler.GetActive)

		w := doJSON(router, http.MethodGet, "/courses", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No active courses found.")
	})
}

func TestCourseHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		mockFunc       func(ctx context.Context, id uint) (*entity.Course, error)
		expectedStatus int
	}{
		{
			name: "success: course found",
			path: "/courses/1",
			mockFunc: func(ctx context.Context, id uint) (*entity.Course, error) {
				return &entity.Course{ID: id, Name: "Go Basics"}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: course not found",
			path:           "/courses/999",
			mockFunc:       nil, // Default: not found
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "failure: non-numeric id",
			path:           "/courses/abc",
			mockFunc:       nil,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCourseHandler(&mockCourseUsecase{GetCourseFunc: tt.mockFunc})

			router := gin.New()
			router.GET("/courses/:courseId", handler.Get)

			w := doJSON(router, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCourseHandler_Archive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewCourseHandler(&mockCourseUsecase{
		ArchiveCourseFunc: func(ctx context.Context, id uint) (*entity.Course, error) {
			return &entity.Course{ID: id, Name: "Go Basics", IsActive: false}, nil
		},
	})

	router := gin.New()
	router.PATCH("/courses/:courseId/archive", handler.Archive)

	w := doJSON(router, http.MethodPatch, "/courses/1/archive", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var responseBody gin.H
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
	assert.Contains(t, responseBody, "archiveCourse")
	assert.Equal(t, "Course archived successfully", responseBody["message"])
}

func TestCourseHandler_Activate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewCourseHandler(&mockCourseUsecase{
		ActivateCourseFunc: func(ctx context.Context, id uint) (*entity.Course, error) {
			return &entity.Course{ID: id, Name: "Go Basics", IsActive: true}, nil
		},
	})

	router := gin.New()
	router.PUT("/courses/:courseId/activate", handler.Activate)

	w := doJSON(router, http.MethodPut, "/courses/1/activate", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var responseBody gin.H
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
	assert.Contains(t, responseBody, "activateCourse")
}

func TestCourseHandler_SearchByPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockFunc       func(ctx context.Context, minPrice, maxPrice float64) ([]entity.Course, error)
		expectedStatus int
		expectedText   string
	}{
		{
			name:        "success: courses in range",
			requestBody: gin.H{"minPrice": 1000, "maxPrice": 2000},
			mockFunc: func(ctx context.Context, minPrice, maxPrice float64) ([]entity.Course, error) {
				return []entity.Course{{ID: 1, Name: "Go Basics", Price: 1500}}, nil
			},
			expectedStatus: http.StatusOK,
			expectedText:   "Go Basics",
		},
		{
			name:           "success: no courses in range",
			requestBody:    gin.H{"minPrice": 10000, "maxPrice": 20000},
			mockFunc:       nil,
			expectedStatus: http.StatusOK,
			expectedText:   "No courses found within the specified price range.",
		},
		{
			name:           "failure: missing bounds",
			requestBody:    gin.H{"minPrice": 1000},
			mockFunc:       nil,
			expectedStatus: http.StatusBadRequest,
			expectedText:   "Invalid price range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCourseHandler(&mockCourseUsecase{SearchByPriceFunc: tt.mockFunc})

			router := gin.New()
			router.POST("/courses/searchByPrice", handler.SearchByPrice)

			w := doJSON(router, http.MethodPost, "/courses/searchByPrice", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedText)
		})
	}
}

func TestCourseHandler_EnrolledUsers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: returns emails", func(t *testing.T) {
		handler := NewCourseHandler(&mockCourseUsecase{
			GetEnrolledUserEmailsFunc: func(ctx context.Context, courseID uint) ([]string, error) {
				return []string{"a@example.com", "b@example.com"}, nil
			},
		})

		router := gin.New()
		router.GET("/courses/:courseId/enrolled-users", handler.EnrolledUsers)

		w := doJSON(router, http.MethodGet, "/courses/1/enrolled-users", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var responseBody struct {
			UserEmails []string `json:"userEmails"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		assert.Len(t, responseBody.UserEmails, 2)
	})

	t.Run("failure: no enrollments", func(t *testing.T) {
		handler := NewCourseHandler(&mockCourseUsecase{})

		router := gin.New()
		router.GET("/courses/:courseId/enrolled-users", handler.EnrolledUsers)

		w := doJSON(router, http.MethodGet, "/courses/1/enrolled-users", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "No users enrolled in this course")
	})
}
