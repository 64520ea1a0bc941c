package models

import "github.com/golang-jwt/jwt/v5"

// AuthClaims represents the JWT claims structure issued by Supabase Auth.
// See: https://supabase.com/docs/guides/auth/jwts
type AuthClaims struct {
	jwt.RegisteredClaims                        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string                 `json:"email"`
	AppMetadata          map[string]interface{} `json:"app_metadata"`
	UserMetadata         map[string]interface{} `json:"user_metadata"`
	Role                 string                 `json:"role"` // "authenticated" or "anon"
	SessionID            string                 `json:"session_id"`
	IsAnonymous          bool                   `json:"is_anonymous"`
}

// GetUserID returns the user ID from the JWT subject claim.
// This is the sole identifier used for ownership checks; endpoints never
// trust a client-supplied user id.
func (c *AuthClaims) GetUserID() string {
	return c.Subject
}
