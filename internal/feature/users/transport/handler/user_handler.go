// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/users/domain"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/users/domain/entity"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/users/transport/http/dto"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/users/usecase"
	jwtmw "github.com/ChadMaddela/Course-Booking-Backend/internal/platform/jwt"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/platform/oauth"
)

// stateCookie carries the OAuth state nonce between the redirect and the callback.
const stateCookie = "oauth_state"

// sessionCookie carries the server-side OAuth session ID.
const sessionCookie = "session_id"

// UserUsecase はユーザー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	CheckEmail(ctx context.Context, email string) error
	Register(ctx context.Context, in usecase.RegisterInput) error
	Login(ctx context.Context, email, password string) (string, error)
	GetProfile(ctx context.Context, userID uint) (*entity.User, error)
	ResetPassword(ctx context.Context, userID uint, newPassword string) error
	UpdateProfile(ctx context.Context, userID uint, firstName, lastName, mobileNo string) (*entity.User, error)
	PromoteAdmin(ctx context.Context, targetUserID uint) error
	LoginWithGoogle(ctx context.Context, email, firstName, lastName string) (string, *entity.User, error)
}

// GoogleAuthenticator はGoogle OAuth2フローを抽象化します。
type GoogleAuthenticator interface {
	AuthCodeURL(state string) string
	FetchProfile(ctx context.Context, code string) (*oauth.Profile, error)
}

// SessionStore はOAuthログインセッションの永続化を抽象化します。
type SessionStore interface {
	Create(ctx context.Context, session *entity.Session) error
	Revoke(ctx context.Context, id string) error
}

// UserHandler はユーザー操作のHTTPリクエストを処理します。
type UserHandler struct {
	users    UserUsecase
	google   GoogleAuthenticator // nil when Google login is not configured
	sessions SessionStore        // nil when Redis is unavailable
	tokenTTL time.Duration
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
// googleとsessionsはオプションの依存であり、nilを許容します。
func NewUserHandler(users UserUsecase, google GoogleAuthenticator, sessions SessionStore, tokenTTL time.Duration) *UserHandler {
	return &UserHandler{
		users:    users,
		google:   google,
		sessions: sessions,
		tokenTTL: tokenTTL,
	}
}

// CheckEmail はメールアドレスの重複を事前確認するAPIです。
// - 形式不正は400、重複は409、未登録は200を返却
func (h *UserHandler) CheckEmail(c *gin.Context) {
	var req dto.CheckEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.users.CheckEmail(c.Request.Context(), req.Email)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Email not found"})
	case isValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
	case err == domain.ErrEmailAlreadyExists:
		c.JSON(http.StatusConflict, gin.H{"error": "Duplicate email found"})
	default:
		slog.Error("check email failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error in find"})
	}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーション違反は固定順でチェックされ、最初の違反のメッセージで400を返却
// - メール重複は409、それ以外の永続化エラーは500を返却
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.users.Register(c.Request.Context(), usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		MobileNo:  req.MobileNo,
		Password:  req.Password,
	})
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
			return
		}
		if err == domain.ErrEmailAlreadyExists {
			c.JSON(http.StatusConflict, gin.H{"error": "Duplicate email found"})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error in save"})
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"message": "Registered successfully"})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - 形式不正は400、未登録メールは404、パスワード不一致は401
// - 認証成功時はJWTトークン付きで200を返却
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case isValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		case err == domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "No email found"})
		case err == domain.ErrInvalidCredentials:
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email and password do not match"})
		default:
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error in find"})
		}
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"access": token})
}

// Details は認証済みユーザー自身のプロフィールを返すAPIです。
// パスワードフィールドは常に空文字で返却されます。
func (h *UserHandler) Details(c *gin.Context) {
	identity, ok := jwtmw.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	user, err := h.users.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Failed to fetch user profile"})
			return
		}
		slog.Error("fetch profile failed", "error", err, "user_id", identity.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.NewUserItem(user)})
}

// ResetPassword は認証済みユーザーのパスワードを再設定するAPIです。
func (h *UserHandler) ResetPassword(c *gin.Context) {
	identity, ok := jwtmw.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.users.ResetPassword(c.Request.Context(), identity.UserID, req.NewPassword); err != nil {
		slog.Error("password reset failed", "error", err, "user_id", identity.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	slog.Info("password reset", "user_id", identity.UserID)
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}

// UpdateProfile は認証済みユーザーのプロフィールを更新するAPIです。
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	identity, ok := jwtmw.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), identity.UserID, req.FirstName, req.LastName, req.MobileNo)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		slog.Error("profile update failed", "error", err, "user_id", identity.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    dto.NewUserItem(user),
	})
}

// UpdateAdmin は指定されたユーザーを管理者に昇格するAPIです。
// AdminRequiredミドルウェアの背後でのみ使用されます。
func (h *UserHandler) UpdateAdmin(c *gin.Context) {
	var req dto.UpdateAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.users.PromoteAdmin(c.Request.Context(), req.UserID); err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		slog.Error("admin promotion failed", "error", err, "target_user_id", req.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	slog.Info("user promoted to admin", "target_user_id", req.UserID)
	c.JSON(http.StatusOK, gin.H{"message": "User updated as admin successfully"})
}

// GoogleLogin はGoogleの同意画面へリダイレクトします。
// CSRF対策としてstateノンスをクッキーに保存します。
func (h *UserHandler) GoogleLogin(c *gin.Context) {
	if h.google == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google login is not configured"})
		return
	}

	state := uuid.NewString()
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, h.google.AuthCodeURL(state))
}

// GoogleCallback はGoogleからのコールバックを処理します。
// stateの検証、コード交換、プロフィール取得、ユーザー検索/作成、
// トークン発行を行い、成功/失敗ページへリダイレクトします。
func (h *UserHandler) GoogleCallback(c *gin.Context) {
	if h.google == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google login is not configured"})
		return
	}

	state := c.Query("state")
	expected, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != expected {
		slog.Warn("google callback state mismatch", "remote_addr", c.ClientIP())
		c.Redirect(http.StatusFound, "/users/failed")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/users/failed")
		return
	}

	profile, err := h.google.FetchProfile(c.Request.Context(), code)
	if err != nil {
		slog.Warn("google profile fetch failed", "error", err)
		c.Redirect(http.StatusFound, "/users/failed")
		return
	}

	token, user, err := h.users.LoginWithGoogle(c.Request.Context(), profile.Email, profile.GivenName, profile.FamilyName)
	if err != nil {
		slog.Error("google login failed", "error", err, "email", profile.Email)
		c.Redirect(http.StatusFound, "/users/failed")
		return
	}

	maxAge := int(h.tokenTTL.Seconds())
	c.SetCookie(jwtmw.AccessTokenCookie, token, maxAge, "/", "", false, true)

	// Session record is bookkeeping for logout; losing it is not fatal.
	if h.sessions != nil {
		now := time.Now()
		sess := &entity.Session{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Email:     user.Email,
			CreatedAt: now,
			ExpiresAt: now.Add(h.tokenTTL),
		}
		if err := h.sessions.Create(c.Request.Context(), sess); err != nil {
			slog.Warn("failed to store oauth session", "error", err, "user_id", user.ID)
		} else {
			c.SetCookie(sessionCookie, sess.ID, maxAge, "/", "", false, true)
		}
	}

	slog.Info("google login successful", "email", user.Email)
	c.Redirect(http.StatusFound, "/users/success")
}

// Success はGoogleログイン成功ページです。
// OptionalAuthミドルウェアの背後で動作し、未認証でもリクエストは失敗しません。
func (h *UserHandler) Success(c *gin.Context) {
	if identity, ok := jwtmw.IdentityFromContext(c); ok {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome " + identity.Email})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "You are not logged in"})
}

// Failed はGoogleログイン失敗ページです。
func (h *UserHandler) Failed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Failed"})
}

// Logout はOAuthセッションを破棄し、クッキーを削除します。
// Bearerトークン自体は失効しません（クライアント側での破棄が前提）。
func (h *UserHandler) Logout(c *gin.Context) {
	if h.sessions != nil {
		if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
			if err := h.sessions.Revoke(c.Request.Context(), id); err != nil && err != domain.ErrSessionNotFound {
				slog.Warn("failed to revoke oauth session", "error", err)
			}
		}
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.SetCookie(jwtmw.AccessTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "You are logged out"})
}

// isValidation はerrがValidationErrorかを判定します。
func isValidation(err error) bool {
	_, ok := domain.AsValidationError(err)
	return ok
}
