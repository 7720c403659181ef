package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/internal/middleware"
	"github.com/noah-isme/college-portal-api/internal/models"
	"github.com/noah-isme/college-portal-api/internal/service"
	"github.com/noah-isme/college-portal-api/pkg/config"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
	"github.com/noah-isme/college-portal-api/pkg/response"
)

type authService interface {
	Login(ctx context.Context, form dto.LoginForm) (string, *models.SessionClaims, error)
	ChangePassword(ctx context.Context, userID int64, req dto.ChangePasswordRequest) error
}

// AuthHandler wires the login form, logout and password change to the
// auth service.
type AuthHandler struct {
	service authService
	session config.SessionConfig
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{service: svc, session: session}
}

// Login godoc
// @Summary Authenticate via the landing-page form
// @Description Exact match on username, password and role; establishes the session cookie
// @Tags Authentication
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param role formData string true "Role (admin/faculty/student)"
// @Success 302
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.redirectWithError(c, appErrors.ErrInvalidCredentials.Message)
		return
	}

	token, claims, err := h.service.Login(c.Request.Context(), form)
	if err != nil {
		h.redirectWithError(c, appErrors.FromError(err).Message)
		return
	}

	c.SetCookie(h.session.CookieName, token, int(h.session.TTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, service.DashboardPath(claims.Role))
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags Authentication
// @Success 302
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Idempotent: clearing an absent cookie is fine.
	c.SetCookie(h.session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// ChangePassword godoc
// @Summary Change the caller's password
// @Description Requires the current password; new and confirm must match
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.ChangePasswordRequest true "Change password payload"
// @Success 200 {object} response.Result
// @Router /api/change_password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Fail(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c, "invalid payload")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), claims.UserID, req); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Password changed successfully")
}

func (h *AuthHandler) redirectWithError(c *gin.Context, message string) {
	c.Redirect(http.StatusFound, "/?error="+url.QueryEscape(message))
}
