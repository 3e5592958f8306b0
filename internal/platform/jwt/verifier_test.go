package jwtmw

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signToken はテスト用に任意のクレームでHS256署名済みトークンを生成します。
func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func testClaims(userID uint, role Role, expiration time.Duration) Claims {
	now := time.Now()
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
		Email: "test@example.com",
		Role:  role,
	}
}

// TestVerifier_Verify_ValidToken は正しく署名されたトークンからIdentityが復元されることを検証します。
func TestVerifier_Verify_ValidToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
		role   Role
	}{
		{"standard user", 1, RoleStandard},
		{"admin user", 42, RoleAdmin},
		{"large user id", 999999, RoleStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			const secret = "verify-secret"
			tokenStr := signToken(t, secret, testClaims(tt.userID, tt.role, time.Hour))

			v := NewVerifier(secret)
			identity, err := v.Verify(tokenStr)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if identity.UserID != tt.userID {
				t.Errorf("expected user ID %d, got %d", tt.userID, identity.UserID)
			}
			if identity.Email != "test@example.com" {
				t.Errorf("expected email test@example.com, got %q", identity.Email)
			}
			if identity.Role != tt.role {
				t.Errorf("expected role %q, got %q", tt.role, identity.Role)
			}
		})
	}
}

// TestVerifier_Verify_RoundTrip はGeneratorが発行したトークンがVerifierで検証できることを検証します。
func TestVerifier_Verify_RoundTrip(t *testing.T) {
	t.Parallel()

	const secret = "roundtrip-secret"
	gen := NewGenerator(secret, time.Hour)
	v := NewVerifier(secret)

	tokenStr, err := gen.GenerateToken(7, "roundtrip@example.com", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	identity, err := v.Verify(tokenStr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.UserID != 7 {
		t.Errorf("expected user ID 7, got %d", identity.UserID)
	}
	if !identity.IsAdmin() {
		t.Error("expected admin identity")
	}
}

// TestVerifier_Verify_InvalidToken は不正なトークン（改ざん・別シークレット等）が拒否されることを検証します。
func TestVerifier_Verify_InvalidToken(t *testing.T) {
	t.Parallel()

	const secret = "verify-secret"

	tests := []struct {
		name  string
		token string
	}{
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"empty string", ""},
		{"wrong secret", signToken(t, "wrong-secret", testClaims(1, RoleStandard, time.Hour))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVerifier(secret)
			identity, err := v.Verify(tt.token)

			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got: %v", err)
			}
			if identity != nil {
				t.Error("expected nil identity")
			}
		})
	}
}

// TestVerifier_Verify_ExpiredToken は期限切れトークンでErrExpiredTokenが返ることを検証します。
func TestVerifier_Verify_ExpiredToken(t *testing.T) {
	t.Parallel()

	const secret = "verify-secret"
	tokenStr := signToken(t, secret, testClaims(1, RoleStandard, -time.Hour))

	v := NewVerifier(secret)
	_, err := v.Verify(tokenStr)

	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got: %v", err)
	}
}

// TestVerifier_Verify_NoneAlgorithm はnoneアルゴリズム（未署名）のトークンが拒否されることを検証します。
func TestVerifier_Verify_NoneAlgorithm(t *testing.T) {
	t.Parallel()

	token := jwt.NewWithClaims(jwt.SigningMethodNone, testClaims(1, RoleStandard, time.Hour))
	tokenStr, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)

	v := NewVerifier("verify-secret")
	_, err := v.Verify(tokenStr)

	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got: %v", err)
	}
}

// TestVerifier_Verify_InvalidClaims はsubやroleが不正なトークンが拒否されることを検証します。
func TestVerifier_Verify_InvalidClaims(t *testing.T) {
	t.Parallel()

	const secret = "verify-secret"

	t.Run("non-numeric subject", func(t *testing.T) {
		claims := testClaims(1, RoleStandard, time.Hour)
		claims.Subject = "not-a-number"
		tokenStr := signToken(t, secret, claims)

		v := NewVerifier(secret)
		if _, err := v.Verify(tokenStr); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got: %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := testClaims(1, Role("superuser"), time.Hour)
		tokenStr := signToken(t, secret, claims)

		v := NewVerifier(secret)
		if _, err := v.Verify(tokenStr); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got: %v", err)
		}
	})

	t.Run("empty role", func(t *testing.T) {
		claims := testClaims(1, Role(""), time.Hour)
		tokenStr := signToken(t, secret, claims)

		v := NewVerifier(secret)
		if _, err := v.Verify(tokenStr); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got: %v", err)
		}
	})
}
