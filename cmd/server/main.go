package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/app/di"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/app/router"
	courseusecase "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/usecase"
	enrollmentadapters "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/enrollments/adapters"
	enrollmentusecase "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/enrollments/usecase"
	useradapters "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/users/adapters"
	userusecase "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/users/usecase"

	coursehandler "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/transport/handler"
	enrollmenthandler "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/enrollments/transport/handler"
	userhandler "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/users/transport/handler"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/config"
	platformdb "github.com/ChadMaddela/Course-Booking-Backend/internal/platform/db"
	jwtmw "github.com/ChadMaddela/Course-Booking-Backend/internal/platform/jwt"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/platform/oauth"
	platformredis "github.com/ChadMaddela/Course-Booking-Backend/internal/platform/redis"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/platform/session"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/shared/ratelimiter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := platformdb.OpenDB(cfg)

	// Redis
	var rdb *redisv9.Client
	if cfg.RedisAddr() == "" {
		log.Println("[WARN] Redis not configured. Running without cache and OAuth sessions.")
	} else if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache and OAuth sessions.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	verifier := jwtmw.NewVerifier(cfg.JWTSecret)

	// Repository
	userRepo := useradapters.NewUserMySQL(db)
	enrollmentRepo := enrollmentadapters.NewEnrollmentMySQL(db)
	// Redisキャッシュでラップ
	courseRepo := di.NewCourseRepository(rdb, db)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo, tokenGen)
	courseUC := courseusecase.NewCourseUsecase(courseRepo, enrollmentRepo)
	enrollmentUC := enrollmentusecase.NewEnrollmentUsecase(enrollmentRepo)

	// オプション依存。未設定ならnilのままハンドラーに渡す。
	var google userhandler.GoogleAuthenticator
	if g := oauth.NewGoogleClient(cfg); g != nil {
		google = g
	}
	var sessions userhandler.SessionStore
	if rdb != nil {
		sessions = session.NewSessionRedis(rdb, "session")
	}

	// Handler
	userH := userhandler.NewUserHandler(userUC, google, sessions, cfg.JWTExpiration)
	courseH := coursehandler.NewCourseHandler(courseUC)
	enrollmentH := enrollmenthandler.NewEnrollmentHandler(enrollmentUC)

	// ログイン/登録のブルートフォース対策
	loginLimiter := ratelimiter.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)

	// ルータ生成
	r := router.NewRouter(verifier, loginLimiter, userH, courseH, enrollmentH)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
