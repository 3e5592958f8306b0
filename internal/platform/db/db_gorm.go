// Package db bootstraps the gorm database connection.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/config"
	courseentity "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/domain/entity"
	enrollmententity "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/enrollments/domain/entity"
	userentity "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/users/domain/entity"
)

// OpenDB connects to MySQL, retrying until the database accepts connections.
// Startup is allowed to block; a missing database is fatal.
func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := cfg.DSN()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// Migrate creates or updates the schema for every persisted entity.
// The unique index on users.email is the real guard against the
// duplicate-registration race; the pre-insert existence check is only
// a friendlier error path.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userentity.User{},
		&courseentity.Course{},
		&enrollmententity.Enrollment{},
		&enrollmententity.EnrolledCourse{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
