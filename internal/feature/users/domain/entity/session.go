package entity

import "time"

// Session represents a server-side login session created by the Google
// OAuth callback. Bearer tokens themselves are stateless; sessions exist
// only so the OAuth flow's logout can revoke something server-side.
type Session struct {
	ID        string     // Session identifier (UUID), also stored in a cookie
	UserID    uint       // Associated user ID
	Email     string     // User's email at login time
	CreatedAt time.Time  // Session creation time
	ExpiresAt time.Time  // Session expiration time
	RevokedAt *time.Time // Revocation time (nil if active)
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsRevoked returns true if the session has been revoked.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsValid returns true if the session is neither expired nor revoked.
func (s *Session) IsValid() bool {
	return !s.IsExpired() && !s.IsRevoked()
}
