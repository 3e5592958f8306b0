package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	coursehandler "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/courses/transport/handler"
	enrollmenthandler "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/enrollments/transport/handler"
	userhandler "github.com/ChadMaddela/Course-Booking-Backend/internal/feature/users/transport/handler"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/platform/http/handler"
	jwtmw "github.com/ChadMaddela/Course-Booking-Backend/internal/platform/jwt"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/shared/ratelimiter"
)

func NewRouter(verifier *jwtmw.Verifier, loginLimiter ratelimiter.RateLimiterInterface,
	userH *userhandler.UserHandler, courseH *coursehandler.CourseHandler,
	enrollmentH *enrollmenthandler.EnrollmentHandler) *gin.Engine {
	r := gin.Default()

	// SPAフロントエンドからのアクセスを許可
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	users := r.Group("/users")
	{
		// 認証不要
		users.POST("/checkEmail", userH.CheckEmail)
		users.POST("/register", ratelimiter.Middleware(loginLimiter), userH.Register)
		// ログイン（JWT 発行）ブルートフォース対策のレートリミット付き
		users.POST("/login", ratelimiter.Middleware(loginLimiter), userH.Login)

		// Google OAuthフロー
		users.GET("/google", userH.GoogleLogin)
		users.GET("/google/callback", userH.GoogleCallback)
		users.GET("/success", jwtmw.OptionalAuth(verifier), userH.Success)
		users.GET("/failed", userH.Failed)
		users.GET("/logout", userH.Logout)

		// 認証必須のルート
		// → リクエストヘッダーに JWT が必要になる
		auth := users.Group("/")
		auth.Use(jwtmw.AuthRequired(verifier))
		{
			auth.GET("/details", userH.Details)
			auth.PUT("/reset-password", userH.ResetPassword)
			auth.PUT("/profile", userH.UpdateProfile)
			auth.POST("/enroll", enrollmentH.Enroll)
			auth.GET("/getEnrollments", enrollmentH.GetEnrollments)

			// 管理者のみ
			admin := auth.Group("/")
			admin.Use(jwtmw.AdminRequired())
			{
				admin.PUT("/updateAdmin", userH.UpdateAdmin)
				admin.PUT("/enrollmentUpdate", enrollmentH.UpdateStatus)
			}
		}
	}

	courses := r.Group("/courses")
	{
		// 認証不要（公開カタログ）
		courses.GET("", courseH.GetActive)
		courses.GET("/:courseId", courseH.Get)
		courses.POST("/search", courseH.SearchByName)
		courses.POST("/searchByPrice", courseH.SearchByPrice)

		// 管理者のみ
		admin := courses.Group("/")
		admin.Use(jwtmw.AuthRequired(verifier), jwtmw.AdminRequired())
		{
			admin.POST("", courseH.Add)
			admin.GET("/all", courseH.GetAll)
			admin.PUT("/:courseId", courseH.Update)
			admin.PATCH("/:courseId/archive", courseH.Archive)
			admin.PUT("/:courseId/activate", courseH.Activate)
			admin.GET("/:courseId/enrolled-users", courseH.EnrolledUsers)
		}
	}

	return r
}
