package dto

import "github.com/noah-isme/college-portal-api/internal/models"

// AdminDashboard is the page model for /admin/dashboard.
type AdminDashboard struct {
	StudentsCount      int `json:"students_count"`
	FacultyCount       int `json:"faculty_count"`
	PendingPermissions int `json:"pending_permissions"`
	EventsCount        int `json:"events_count"`

	Students []models.User `json:"students"`
	Faculty  []models.User `json:"faculty"`
}

// FacultyDashboard is the page model for /faculty/dashboard, scoped to
// the signed-in faculty member.
type FacultyDashboard struct {
	ClassesCount       int `json:"classes_count"`
	StudentsCount      int `json:"students_count"`
	PendingPermissions int `json:"pending_permissions"`

	Permissions []models.PermissionWithStudent `json:"permissions"`
	Classes     []models.Class                 `json:"classes"`
}

// StudentDashboard is the page model for /student/dashboard, scoped to
// the signed-in student.
type StudentDashboard struct {
	AttendancePercentage float64 `json:"attendance_percentage"`
	PendingPermissions   int     `json:"pending_permissions"`
	EventsCount          int     `json:"events_count"`

	Attendance  []models.ClassAttendance `json:"attendance"`
	Permissions []models.Permission      `json:"permissions"`
	Events      []models.Event           `json:"events"`
	Clubs       []models.CatalogEntry    `json:"clubs"`
	ClubEvents  []models.CatalogEntry    `json:"club_events"`
}
