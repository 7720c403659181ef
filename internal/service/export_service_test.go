package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

type fakeExportAttendance struct {
	breakdown []models.ClassAttendance
}

func (f *fakeExportAttendance) PerClassBreakdown(context.Context, int64) ([]models.ClassAttendance, error) {
	return f.breakdown, nil
}

func TestAttendanceReportCSV(t *testing.T) {
	users := newMockUserRepo(&models.User{ID: 4, Username: "student1", Role: models.RoleStudent, Name: "John Doe"})
	attendance := &fakeExportAttendance{breakdown: []models.ClassAttendance{
		{Class: "Mathematics", Present: 3, Absent: 1, Percentage: 75.0},
	}}
	svc := NewExportService(attendance, users, nil)

	data, filename, err := svc.AttendanceReport(context.Background(), 4, "csv")
	require.NoError(t, err)
	assert.Equal(t, "attendance_4.csv", filename)

	body := string(data)
	assert.True(t, strings.HasPrefix(body, "Class,Present,Absent,Percentage"))
	assert.Contains(t, body, "Mathematics,3,1,75.0")
}

func TestAttendanceReportPDF(t *testing.T) {
	users := newMockUserRepo(&models.User{ID: 4, Username: "student1", Role: models.RoleStudent, Name: "John Doe"})
	svc := NewExportService(&fakeExportAttendance{}, users, nil)

	data, filename, err := svc.AttendanceReport(context.Background(), 4, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "attendance_4.pdf", filename)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestAttendanceReportRejectsNonStudent(t *testing.T) {
	users := newMockUserRepo(&models.User{ID: 2, Username: "faculty1", Role: models.RoleFaculty, Name: "Dr. Robert Brown"})
	svc := NewExportService(&fakeExportAttendance{}, users, nil)

	_, _, err := svc.AttendanceReport(context.Background(), 2, "csv")
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound.Code))
}

func TestAttendanceReportUnknownStudent(t *testing.T) {
	svc := NewExportService(&fakeExportAttendance{}, newMockUserRepo(), nil)

	_, _, err := svc.AttendanceReport(context.Background(), 99, "csv")
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound.Code))
}
