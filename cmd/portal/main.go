package main

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	_ "github.com/noah-isme/college-portal-api/api/swagger"
	"github.com/noah-isme/college-portal-api/internal/handler"
	"github.com/noah-isme/college-portal-api/internal/repository"
	"github.com/noah-isme/college-portal-api/internal/router"
	"github.com/noah-isme/college-portal-api/internal/service"
	"github.com/noah-isme/college-portal-api/pkg/cache"
	"github.com/noah-isme/college-portal-api/pkg/config"
	"github.com/noah-isme/college-portal-api/pkg/database"
	"github.com/noah-isme/college-portal-api/pkg/logger"
	"github.com/noah-isme/college-portal-api/pkg/storage"
)

// @title College Portal API
// @version 1.0.0
// @description Role-based college portal: accounts, attendance, leave permissions, events and the clubs/events catalog
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewSQLite(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to open database", "error", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logr.Sugar().Fatalw("failed to migrate database", "error", err)
	}
	if err := database.Seed(db); err != nil {
		logr.Sugar().Fatalw("failed to seed database", "error", err)
	}

	uploads, err := storage.NewUploadStore(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare uploads directory", "error", err)
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	classRepo := repository.NewClassRepository(db)
	eventRepo := repository.NewEventRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	// The dashboard cache is opt-in; without Redis the dashboards read
	// straight from SQLite on every request.
	var cacheSvc *service.CacheService
	if cfg.Dashboard.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		defer redisClient.Close()
		cacheSvc = service.NewCacheService(repository.NewRedisCacheRepository(redisClient), cfg.Dashboard.CacheTTL, logr, true)
	} else {
		cacheSvc = service.NewCacheService(nil, 0, logr, false)
	}

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret: cfg.Session.Secret,
		TTL:    cfg.Session.TTL,
	})
	userSvc := service.NewUserService(userRepo, validate, logr)
	permissionSvc := service.NewPermissionService(permissionRepo, userRepo, validate, logr)
	catalogSvc := service.NewCatalogService(catalogRepo, validate, logr)
	importSvc := service.NewImportService(userRepo, logr)
	exportSvc := service.NewExportService(attendanceRepo, userRepo, logr)
	metricsSvc := service.NewMetricsService()
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Users:       userRepo,
		Permissions: permissionRepo,
		Attendance:  attendanceRepo,
		Classes:     classRepo,
		Events:      eventRepo,
		Catalog:     catalogRepo,
		Cache:       cacheSvc,
		Metrics:     metricsSvc,
		Logger:      logr,
	})

	engine := router.New(cfg, logr, authSvc, metricsSvc, router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc, cfg.Session),
		Pages:      handler.NewPageHandler(dashboardSvc, logr),
		Users:      handler.NewUserHandler(userSvc),
		Permission: handler.NewPermissionHandler(permissionSvc),
		Catalog:    handler.NewCatalogHandler(catalogSvc),
		Upload:     handler.NewUploadHandler(importSvc, uploads, cfg.Uploads.MaxFileSizeBytes),
		Export:     handler.NewExportHandler(exportSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := engine.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
