// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	courseadapters "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/adapters"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/usecase"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/platform/cache"
)

// courseCacheTTL bounds how stale the public catalog listing may get.
const courseCacheTTL = 5 * time.Minute

// NewCourseRepository creates a CourseRepository implementation.
// If Redis is available, the MySQL repository is wrapped with a caching
// decorator so the public catalog listing does not hit the database on
// every request. Without Redis it returns the plain MySQL repository.
func NewCourseRepository(rdb *redis.Client, db *gorm.DB) usecase.CourseRepository {
	inner := courseadapters.NewCourseMySQL(db)
	if rdb == nil {
		return inner
	}
	return cache.NewCachingCourseRepository(rdb, courseCacheTTL, inner, "courses")
}
