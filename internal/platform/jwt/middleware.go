package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextIdentity is the gin context key the middleware stores the verified identity under.
const ContextIdentity = "identity"

// AccessTokenCookie is the cookie the Google login callback stores the issued token in.
const AccessTokenCookie = "access_token"

// IdentityFromContext returns the identity attached by AuthRequired or OptionalAuth.
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	val, ok := c.Get(ContextIdentity)
	if !ok {
		return Identity{}, false
	}
	id, ok := val.(Identity)
	return id, ok
}

// AuthRequired returns a Gin middleware function that validates bearer tokens
// and restricts access to authenticated users only.
func AuthRequired(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header and strip the scheme prefix
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature, expiry and claims
		identity, err := v.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. Attach the identity for downstream handlers
		c.Set(ContextIdentity, *identity)
		c.Next()
	}
}

// AdminRequired returns a Gin middleware that allows only admin identities through.
// It must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		if !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches an identity when a valid credential is present, from
// either the Authorization header or the access token cookie, and never aborts
// the request. Used by the OAuth success/failure pages.
func OptionalAuth(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			tokenStr = strings.TrimPrefix(auth, "Bearer ")
		} else if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
			tokenStr = cookie
		}

		if tokenStr != "" {
			if identity, err := v.Verify(tokenStr); err == nil {
				c.Set(ContextIdentity, *identity)
			}
		}
		c.Next()
	}
}
