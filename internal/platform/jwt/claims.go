package jwtmw

import "github.com/golang-jwt/jwt/v5"

// Role is the authorization role carried inside a token.
// It is modeled as an enum instead of a loose boolean so role checks
// can be exhaustive.
type Role string

const (
	// RoleStandard is a regular registered user.
	RoleStandard Role = "standard"
	// RoleAdmin may manage courses, promote users and update enrollments.
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is one of the predefined valid roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStandard, RoleAdmin:
		return true
	default:
		return false
	}
}

// Claims is the JWT claim set issued at login.
// It embeds the registered claims (sub/iat/exp) and adds the user's
// email and role so protected handlers do not need a DB round trip.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Identity is the verified identity attached to the request context
// by the auth middleware.
type Identity struct {
	UserID uint
	Email  string
	Role   Role
}

// IsAdmin returns true when the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
