package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-portal-api/internal/models"
	"github.com/noah-isme/college-portal-api/internal/service"
)

const testCookie = "portal_session"

func testAuthService() *service.AuthService {
	return service.NewAuthService(nil, nil, nil, service.AuthConfig{Secret: "test-secret", TTL: time.Hour})
}

func signedToken(t *testing.T, secret string, role models.UserRole) string {
	t.Helper()

	claims := &models.SessionClaims{
		UserID:   2,
		Username: "faculty1",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestSessionAPIAllowsValidCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/ping", SessionAPI(testAuthService(), testCookie), func(c *gin.Context) {
		claims := Claims(c)
		require.NotNil(t, claims)
		c.String(http.StatusOK, claims.Username)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: signedToken(t, "test-secret", models.RoleFaculty)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "faculty1", w.Body.String())
}

func TestSessionAPIRejectsMissingAndForgedCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/ping", SessionAPI(testAuthService(), testCookie), func(c *gin.Context) {
		c.String(http.StatusOK, "reached")
	})

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "no cookie"},
		{name: "garbage token", cookie: &http.Cookie{Name: testCookie, Value: "not-a-jwt"}},
		{name: "wrong secret", cookie: &http.Cookie{Name: testCookie, Value: signedToken(t, "other-secret", models.RoleFaculty)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
			assert.NotContains(t, w.Body.String(), "reached")
		})
	}
}

func TestSessionPageRedirectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/admin/dashboard", SessionPage(testAuthService(), testCookie), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRequireRoleHasNoHierarchy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := testAuthService()
	router := gin.New()
	router.GET("/api/faculty_only", SessionAPI(auth, testCookie), RequireRole(models.RoleFaculty), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// An admin session does not pass a faculty gate.
	req := httptest.NewRequest(http.MethodGet, "/api/faculty_only", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: signedToken(t, "test-secret", models.RoleAdmin)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	req = httptest.NewRequest(http.MethodGet, "/api/faculty_only", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: signedToken(t, "test-secret", models.RoleFaculty)})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "ok", w.Body.String())
}

func TestRequireRolePageRedirectsMismatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := testAuthService()
	router := gin.New()
	router.GET("/student/dashboard", SessionPage(auth, testCookie), RequireRolePage(models.RoleStudent), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})

	req := httptest.NewRequest(http.MethodGet, "/student/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: signedToken(t, "test-secret", models.RoleFaculty)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}
