package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/internal/middleware"
)

type dashboardService interface {
	Admin(ctx context.Context) (*dto.AdminDashboard, error)
	Faculty(ctx context.Context, facultyID int64) (*dto.FacultyDashboard, error)
	Student(ctx context.Context, studentID int64) (*dto.StudentDashboard, error)
}

// PageHandler renders the HTML pages: the landing page and the three
// role dashboards.
type PageHandler struct {
	dashboards dashboardService
	logger     *zap.Logger
}

// NewPageHandler creates a new handler.
func NewPageHandler(dashboards dashboardService, logger *zap.Logger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{dashboards: dashboards, logger: logger}
}

// Index renders the landing page with the login form.
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"error": c.Query("error"),
	})
}

// AdminDashboard renders the admin dashboard page.
func (h *PageHandler) AdminDashboard(c *gin.Context) {
	claims := middleware.Claims(c)
	dash, err := h.dashboards.Admin(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"user": claims,
		"dash": dash,
	})
}

// FacultyDashboard renders the faculty dashboard page.
func (h *PageHandler) FacultyDashboard(c *gin.Context) {
	claims := middleware.Claims(c)
	dash, err := h.dashboards.Faculty(c.Request.Context(), claims.UserID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "faculty_dashboard.html", gin.H{
		"user": claims,
		"dash": dash,
	})
}

// StudentDashboard renders the student dashboard page.
func (h *PageHandler) StudentDashboard(c *gin.Context) {
	claims := middleware.Claims(c)
	dash, err := h.dashboards.Student(c.Request.Context(), claims.UserID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "student_dashboard.html", gin.H{
		"user": claims,
		"dash": dash,
	})
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	h.logger.Error("dashboard render failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"message": "Something went wrong. Please try again later.",
	})
}
