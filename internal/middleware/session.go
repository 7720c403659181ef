package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal-api/internal/models"
	"github.com/noah-isme/college-portal-api/internal/service"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
	"github.com/noah-isme/college-portal-api/pkg/response"
)

// ContextUserKey is the gin context key storing session claims.
const ContextUserKey = "currentUser"

// SessionAPI gates JSON endpoints: a missing or invalid session cookie
// answers {success:false, message:"Unauthorized"} at HTTP 200, matching
// the API contract where clients key off the success flag.
func SessionAPI(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sessionClaims(c, authService, cookieName)
		if err != nil {
			response.Fail(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// SessionPage gates server-rendered pages: without a valid session the
// browser is sent back to the landing page.
func SessionPage(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sessionClaims(c, authService, cookieName)
		if err != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// RequireRole enforces an exact role match for JSON endpoints. There is
// no hierarchy: an admin session does not pass a faculty gate.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil || claims.Role != role {
			response.Fail(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRolePage is the page-gate variant of RequireRole: a mismatch
// redirects home instead of answering JSON.
func RequireRolePage(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil || claims.Role != role {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Claims returns the session claims stored by the session middleware,
// or nil when the request is unauthenticated.
func Claims(c *gin.Context) *models.SessionClaims {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}

func sessionClaims(c *gin.Context, authService *service.AuthService, cookieName string) (*models.SessionClaims, error) {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie == "" {
		return nil, appErrors.ErrUnauthorized
	}
	return authService.ValidateToken(cookie)
}
