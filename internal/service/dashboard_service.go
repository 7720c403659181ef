package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/internal/models"
)

type dashboardUserRepository interface {
	CountByRole(ctx context.Context, role models.UserRole) (int, error)
	ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error)
}

type dashboardPermissionRepository interface {
	CountPending(ctx context.Context) (int, error)
	CountPendingByFaculty(ctx context.Context, facultyID int64) (int, error)
	CountPendingByStudent(ctx context.Context, studentID int64) (int, error)
	ListByFaculty(ctx context.Context, facultyID int64) ([]models.PermissionWithStudent, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.Permission, error)
}

type dashboardAttendanceRepository interface {
	OverallPercentage(ctx context.Context, studentID int64) (float64, error)
	PerClassBreakdown(ctx context.Context, studentID int64) ([]models.ClassAttendance, error)
	CountDistinctStudentsByFaculty(ctx context.Context, facultyID int64) (int, error)
}

type dashboardClassRepository interface {
	ListByFaculty(ctx context.Context, facultyID int64) ([]models.Class, error)
	CountByFaculty(ctx context.Context, facultyID int64) (int, error)
}

type dashboardEventRepository interface {
	Count(ctx context.Context) (int, error)
	ListEnrolled(ctx context.Context, studentID int64) ([]models.Event, error)
	CountEnrolled(ctx context.Context, studentID int64) (int, error)
}

type dashboardCatalogRepository interface {
	ListActive(ctx context.Context) ([]models.CatalogEntry, error)
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Users       dashboardUserRepository
	Permissions dashboardPermissionRepository
	Attendance  dashboardAttendanceRepository
	Classes     dashboardClassRepository
	Events      dashboardEventRepository
	Catalog     dashboardCatalogRepository
	Cache       *CacheService
	Metrics     *MetricsService
	Logger      *zap.Logger
}

// DashboardService composes the per-role dashboard page models. Every
// aggregate is a single query scoped to the caller; the optional cache
// short-circuits the whole composition when enabled.
type DashboardService struct {
	users       dashboardUserRepository
	permissions dashboardPermissionRepository
	attendance  dashboardAttendanceRepository
	classes     dashboardClassRepository
	events      dashboardEventRepository
	catalog     dashboardCatalogRepository
	cache       *CacheService
	metrics     *MetricsService
	logger      *zap.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		users:       params.Users,
		permissions: params.Permissions,
		attendance:  params.Attendance,
		classes:     params.Classes,
		events:      params.Events,
		catalog:     params.Catalog,
		cache:       params.Cache,
		metrics:     params.Metrics,
		logger:      logger,
	}
}

// Admin builds the admin dashboard: portal-wide counts plus full
// student and faculty listings.
func (s *DashboardService) Admin(ctx context.Context) (*dto.AdminDashboard, error) {
	const cacheKey = "dashboard:admin"
	cached := &dto.AdminDashboard{}
	if s.cache.Get(ctx, cacheKey, cached) {
		return cached, nil
	}

	out := &dto.AdminDashboard{}
	start := time.Now()
	var err error

	if out.StudentsCount, err = s.users.CountByRole(ctx, models.RoleStudent); err != nil {
		return nil, err
	}
	if out.FacultyCount, err = s.users.CountByRole(ctx, models.RoleFaculty); err != nil {
		return nil, err
	}
	if out.PendingPermissions, err = s.permissions.CountPending(ctx); err != nil {
		return nil, err
	}
	if out.EventsCount, err = s.events.Count(ctx); err != nil {
		return nil, err
	}
	if out.Students, err = s.users.ListByRole(ctx, models.RoleStudent); err != nil {
		return nil, err
	}
	if out.Faculty, err = s.users.ListByRole(ctx, models.RoleFaculty); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("dashboard_admin", time.Since(start))
	}

	s.cache.Set(ctx, cacheKey, out)
	return out, nil
}

// Faculty builds the faculty dashboard scoped to one faculty member.
// The student count is the distinct students seen in attendance rows of
// the faculty's classes, not a roster size.
func (s *DashboardService) Faculty(ctx context.Context, facultyID int64) (*dto.FacultyDashboard, error) {
	cacheKey := fmt.Sprintf("dashboard:faculty:%d", facultyID)
	cached := &dto.FacultyDashboard{}
	if s.cache.Get(ctx, cacheKey, cached) {
		return cached, nil
	}

	out := &dto.FacultyDashboard{}
	start := time.Now()
	var err error

	if out.ClassesCount, err = s.classes.CountByFaculty(ctx, facultyID); err != nil {
		return nil, err
	}
	if out.StudentsCount, err = s.attendance.CountDistinctStudentsByFaculty(ctx, facultyID); err != nil {
		return nil, err
	}
	if out.PendingPermissions, err = s.permissions.CountPendingByFaculty(ctx, facultyID); err != nil {
		return nil, err
	}
	if out.Permissions, err = s.permissions.ListByFaculty(ctx, facultyID); err != nil {
		return nil, err
	}
	if out.Classes, err = s.classes.ListByFaculty(ctx, facultyID); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("dashboard_faculty", time.Since(start))
	}

	s.cache.Set(ctx, cacheKey, out)
	return out, nil
}

// Student builds the student dashboard: the overall attendance
// percentage, per-class breakdown, own permissions and events, and the
// active catalog split into clubs and events.
func (s *DashboardService) Student(ctx context.Context, studentID int64) (*dto.StudentDashboard, error) {
	cacheKey := fmt.Sprintf("dashboard:student:%d", studentID)
	cached := &dto.StudentDashboard{}
	if s.cache.Get(ctx, cacheKey, cached) {
		return cached, nil
	}

	out := &dto.StudentDashboard{}
	start := time.Now()
	var err error

	if out.AttendancePercentage, err = s.attendance.OverallPercentage(ctx, studentID); err != nil {
		return nil, err
	}
	if out.Attendance, err = s.attendance.PerClassBreakdown(ctx, studentID); err != nil {
		return nil, err
	}
	if out.PendingPermissions, err = s.permissions.CountPendingByStudent(ctx, studentID); err != nil {
		return nil, err
	}
	if out.EventsCount, err = s.events.CountEnrolled(ctx, studentID); err != nil {
		return nil, err
	}
	if out.Permissions, err = s.permissions.ListByStudent(ctx, studentID); err != nil {
		return nil, err
	}
	if out.Events, err = s.events.ListEnrolled(ctx, studentID); err != nil {
		return nil, err
	}

	catalog, err := s.catalog.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out.Clubs, out.ClubEvents = splitCatalog(catalog)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("dashboard_student", time.Since(start))
	}

	s.cache.Set(ctx, cacheKey, out)
	return out, nil
}

func splitCatalog(entries []models.CatalogEntry) (clubs, events []models.CatalogEntry) {
	for _, entry := range entries {
		switch entry.Type {
		case models.CatalogClub:
			clubs = append(clubs, entry)
		case models.CatalogEvent:
			events = append(events, entry)
		}
	}
	return clubs, events
}
