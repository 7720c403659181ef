package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims bind a browser session to an authenticated identity.
// They travel inside the signed session cookie and are decoded into the
// request context by the session middleware; handlers never consult any
// other session state.
type SessionClaims struct {
	UserID   int64    `json:"uid"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
	Name     string   `json:"name"`
	jwt.RegisteredClaims
}
