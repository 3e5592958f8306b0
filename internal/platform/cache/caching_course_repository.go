// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/domain/entity"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/usecase"
)

// CachingCourseRepository decorates a CourseRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Only the list queries are cached;
// every write invalidates them.
type CachingCourseRepository struct {
	inner     usecase.CourseRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.CourseRepository = (*CachingCourseRepository)(nil)

// NewCachingCourseRepository decorates a CourseRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "courses".
func NewCachingCourseRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CourseRepository, namespace string) *CachingCourseRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "courses"
	}
	return &CachingCourseRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a course and invalidates the list caches.
func (c *CachingCourseRepository) Create(ctx context.Context, course *entity.Course) error {
	if err := c.inner.Create(ctx, course); err != nil {
		return err
	}
	c.invalidateLists(ctx)
	return nil
}

// Update persists course changes and invalidates the list caches.
func (c *CachingCourseRepository) Update(ctx context.Context, course *entity.Course) error {
	if err := c.inner.Update(ctx, course); err != nil {
		return err
	}
	c.invalidateLists(ctx)
	return nil
}

// FindAll retrieves all courses, checking cache first then falling back to the database.
func (c *CachingCourseRepository) FindAll(ctx context.Context) ([]entity.Course, error) {
	return c.cachedList(ctx, c.cacheKey("all"), c.inner.FindAll)
}

// FindActive retrieves active courses, checking cache first then falling back to the database.
func (c *CachingCourseRepository) FindActive(ctx context.Context) ([]entity.Course, error) {
	return c.cachedList(ctx, c.cacheKey("active"), c.inner.FindActive)
}

// FindByID delegates to the underlying repository. Single-course reads are
// cheap primary-key lookups, so they bypass the cache.
func (c *CachingCourseRepository) FindByID(ctx context.Context, id uint) (*entity.Course, error) {
	return c.inner.FindByID(ctx, id)
}

// SearchByName delegates to the underlying repository. Search terms are
// unbounded, so caching them would pollute the keyspace.
func (c *CachingCourseRepository) SearchByName(ctx context.Context, name string) ([]entity.Course, error) {
	return c.inner.SearchByName(ctx, name)
}

// SearchByPrice delegates to the underlying repository.
func (c *CachingCourseRepository) SearchByPrice(ctx context.Context, minPrice, maxPrice float64) ([]entity.Course, error) {
	return c.inner.SearchByPrice(ctx, minPrice, maxPrice)
}

// cachedList runs a list query through the cache-aside pattern.
func (c *CachingCourseRepository) cachedList(ctx context.Context, key string, load func(context.Context) ([]entity.Course, error)) ([]entity.Course, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load(ctx)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Course
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// invalidateLists drops the cached list entries. Best effort: cache deletion
// failures never surface to the caller.
func (c *CachingCourseRepository) invalidateLists(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey("all"), c.cacheKey("active")).Err()
}

// cacheKey generates a cache key for a list query.
func (c *CachingCourseRepository) cacheKey(list string) string {
	return fmt.Sprintf("%s:%s", c.namespace, list)
}
