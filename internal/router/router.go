package router

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/handler"
	"github.com/noah-isme/college-portal-api/internal/middleware"
	"github.com/noah-isme/college-portal-api/internal/models"
	"github.com/noah-isme/college-portal-api/internal/service"
	"github.com/noah-isme/college-portal-api/pkg/config"
	"github.com/noah-isme/college-portal-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/college-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/college-portal-api/pkg/middleware/requestid"
)

// Handlers bundles everything New needs to assemble the engine.
type Handlers struct {
	Auth       *handler.AuthHandler
	Pages      *handler.PageHandler
	Users      *handler.UserHandler
	Permission *handler.PermissionHandler
	Catalog    *handler.CatalogHandler
	Upload     *handler.UploadHandler
	Export     *handler.ExportHandler
}

// New assembles the gin engine: global middleware, the server-rendered
// pages with their redirect-style session gates, and the JSON API with
// its envelope-style gates.
func New(cfg *config.Config, logr *zap.Logger, auth *service.AuthService, metrics *service.MetricsService, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.LoadHTMLGlob(filepath.Join(cfg.TemplatesDir, "*.html"))

	cookie := cfg.Session.CookieName

	// Public surface.
	r.GET("/", h.Pages.Index)
	r.POST("/login", h.Auth.Login)
	r.GET("/logout", h.Auth.Logout)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/api/get_clubs_events", h.Catalog.List)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Server-rendered dashboards. Anonymous or wrong-role visitors are
	// bounced back to the landing page.
	admin := r.Group("/admin", middleware.SessionPage(auth, cookie), middleware.RequireRolePage(models.RoleAdmin))
	admin.GET("/dashboard", h.Pages.AdminDashboard)

	faculty := r.Group("/faculty", middleware.SessionPage(auth, cookie), middleware.RequireRolePage(models.RoleFaculty))
	faculty.GET("/dashboard", h.Pages.FacultyDashboard)

	student := r.Group("/student", middleware.SessionPage(auth, cookie), middleware.RequireRolePage(models.RoleStudent))
	student.GET("/dashboard", h.Pages.StudentDashboard)

	// JSON API. Session failures answer the envelope at HTTP 200.
	api := r.Group("/api", middleware.SessionAPI(auth, cookie))

	api.POST("/change_password", h.Auth.ChangePassword)

	adminAPI := api.Group("", middleware.RequireRole(models.RoleAdmin))
	adminAPI.POST("/add_user", h.Users.AddStudent)
	adminAPI.POST("/add_faculty", h.Users.AddFaculty)
	adminAPI.DELETE("/delete_user/:id", h.Users.DeleteUser)
	adminAPI.POST("/add_club_event", h.Catalog.Add)
	adminAPI.POST("/upload_students", h.Upload.UploadStudents)
	adminAPI.POST("/upload_faculty", h.Upload.UploadFaculty)

	facultyAPI := api.Group("", middleware.RequireRole(models.RoleFaculty))
	facultyAPI.POST("/update_permission_status", h.Permission.UpdateStatus)
	facultyAPI.GET("/attendance_report/:id", h.Export.AttendanceReport)

	studentAPI := api.Group("", middleware.RequireRole(models.RoleStudent))
	studentAPI.POST("/add_permission", h.Permission.Add)

	return r
}
