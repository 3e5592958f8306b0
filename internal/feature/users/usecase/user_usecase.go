// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/users/domain"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/users/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// mobileNoLength は携帯電話番号の固定長を定義します。
	mobileNoLength = 11

	// hashCost はbcryptのワークファクターです。
	hashCost = 10
)

// dummyHash is compared against when the user is not found, so login takes
// roughly the same time whether or not the email exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、domain.ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// ExistsByEmail は指定されたメールアドレスのユーザーが存在するかを返します。
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update は既存ユーザーの変更を永続化します。
	Update(ctx context.Context, user *entity.User) error
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt)ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string, isAdmin bool) (string, error)
}

// RegisterInput は新規登録リクエストの入力データです。
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	MobileNo  string
	Password  string
}

// userUsecase はユーザー関連のビジネスロジックを実装します。
type userUsecase struct {
	users  UserRepository
	tokens JWTGenerator
}

// NewUserUsecase はuserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository, tokens JWTGenerator) *userUsecase {
	return &userUsecase{
		users:  users,
		tokens: tokens,
	}
}

// validateRegistration checks the registration input in a fixed order:
// name fields, email format, mobile number length, then password length.
// The first violation wins.
func validateRegistration(in RegisterInput) error {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return domain.NewValidationError("firstName", "First name and last name must be strings")
	}
	if !strings.Contains(in.Email, "@") {
		return domain.NewValidationError("email", "Email invalid")
	}
	if len(in.MobileNo) != mobileNoLength {
		return domain.NewValidationError("mobileNo", "Mobile number invalid")
	}
	if len(in.Password) < minPasswordLength {
		return domain.NewValidationError("password", "Password must be at least 8 characters")
	}
	return nil
}

// CheckEmail はメールアドレスが登録済みかを確認します。
// 形式不正の場合はValidationError、登録済みの場合はdomain.ErrEmailAlreadyExistsを返します。
// このチェックは登録処理とトランザクションを共有しないため、重複防止の保証は
// データベースのユニークインデックスが担います。
func (u *userUsecase) CheckEmail(ctx context.Context, email string) error {
	if !strings.Contains(email, "@") {
		return domain.NewValidationError("email", "Invalid email format")
	}
	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return domain.ErrEmailAlreadyExists
	}
	return nil
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
func (u *userUsecase) Register(ctx context.Context, in RegisterInput) error {
	if err := validateRegistration(in); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     strings.ToLower(in.Email),
		MobileNo:  in.MobileNo,
		Password:  string(hashed),
	}
	return u.users.Create(ctx, user)
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// タイミング攻撃を緩和するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *userUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if !strings.Contains(email, "@") {
		return "", domain.NewValidationError("email", "Invalid email format")
	}

	user, findErr := u.users.FindByEmail(ctx, strings.ToLower(email))

	passwordHash := dummyHash
	if findErr == nil {
		passwordHash = user.Password
	}

	// bcrypt比較は常に実行する
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if findErr != nil {
		if errors.Is(findErr, domain.ErrUserNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to look up user: %w", findErr)
	}
	if compareErr != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// GetProfile は指定されたIDのユーザーを取得します。
func (u *userUsecase) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// ResetPassword は認証済みユーザーのパスワードを再設定します。
func (u *userUsecase) ResetPassword(ctx context.Context, userID uint, newPassword string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = string(hashed)
	return u.users.Update(ctx, user)
}

// UpdateProfile は認証済みユーザーのプロフィール情報を更新します。
func (u *userUsecase) UpdateProfile(ctx context.Context, userID uint, firstName, lastName, mobileNo string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.MobileNo = mobileNo
	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// PromoteAdmin は指定されたユーザーに管理者権限を付与します。
func (u *userUsecase) PromoteAdmin(ctx context.Context, targetUserID uint) error {
	user, err := u.users.FindByID(ctx, targetUserID)
	if err != nil {
		return err
	}

	user.IsAdmin = true
	return u.users.Update(ctx, user)
}

// LoginWithGoogle はGoogleログインのプロフィールからユーザーを検索または作成し、
// JWTトークンを発行します。OAuth経由で作成されたアカウントには推測不能な
// ランダムパスワードのハッシュを設定します。
func (u *userUsecase) LoginWithGoogle(ctx context.Context, email, firstName, lastName string) (string, *entity.User, error) {
	if email == "" {
		return "", nil, domain.NewValidationError("email", "Google profile has no email")
	}
	email = strings.ToLower(email)

	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), hashCost)
		if hashErr != nil {
			return "", nil, fmt.Errorf("failed to hash placeholder password: %w", hashErr)
		}
		user = &entity.User{
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			Password:  string(hashed),
		}
		if createErr := u.users.Create(ctx, user); createErr != nil {
			// Another request may have created the account between the
			// lookup and the insert; fall back to the stored record.
			if errors.Is(createErr, domain.ErrEmailAlreadyExists) {
				user, err = u.users.FindByEmail(ctx, email)
				if err != nil {
					return "", nil, fmt.Errorf("failed to load existing user: %w", err)
				}
			} else {
				return "", nil, fmt.Errorf("failed to create user: %w", createErr)
			}
		}
	} else if err != nil {
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}
