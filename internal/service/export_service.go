package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
	"github.com/noah-isme/college-portal-api/pkg/export"
)

type exportAttendanceRepository interface {
	PerClassBreakdown(ctx context.Context, studentID int64) ([]models.ClassAttendance, error)
}

type exportUserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// ExportService renders a student's attendance breakdown as a
// downloadable report.
type ExportService struct {
	attendance exportAttendanceRepository
	users      exportUserRepository
	logger     *zap.Logger
}

// NewExportService constructs an ExportService instance.
func NewExportService(attendance exportAttendanceRepository, users exportUserRepository, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{attendance: attendance, users: users, logger: logger}
}

// AttendanceReport builds the per-class attendance report for one
// student in the requested format ("csv" or "pdf") and returns the file
// bytes plus a suggested filename.
func (s *ExportService) AttendanceReport(ctx context.Context, studentID int64, format string) ([]byte, string, error) {
	student, err := s.users.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, "", appErrors.Wrap(err, appErrors.ErrStore.Code, "failed to fetch student")
	}
	if student.Role != models.RoleStudent {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	breakdown, err := s.attendance.PerClassBreakdown(ctx, studentID)
	if err != nil {
		return nil, "", err
	}

	report := export.Report{
		Title:   fmt.Sprintf("Attendance Report - %s", student.Name),
		Headers: []string{"Class", "Present", "Absent", "Percentage"},
	}
	for _, row := range breakdown {
		report.Rows = append(report.Rows, []string{
			row.Class,
			strconv.Itoa(row.Present),
			strconv.Itoa(row.Absent),
			fmt.Sprintf("%.1f", row.Percentage),
		})
	}

	switch format {
	case "pdf":
		data, err := export.PDF(report)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrStore.Code, "failed to render report")
		}
		return data, fmt.Sprintf("attendance_%d.pdf", studentID), nil
	default:
		data, err := export.CSV(report)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrStore.Code, "failed to render report")
		}
		return data, fmt.Sprintf("attendance_%d.csv", studentID), nil
	}
}
