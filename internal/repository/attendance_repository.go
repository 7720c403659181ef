package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/college-portal-api/internal/models"
)

// AttendanceRepository provides the attendance rollup queries backing
// the dashboards. All reads; attendance rows are written by seed data
// in this scope.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository creates a new instance of AttendanceRepository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// OverallPercentage computes the student's attendance percentage across
// every class: present rows times 100 over total rows. A student with
// no attendance rows scores 0 rather than dividing by zero. Statuses
// other than "present" count toward the denominator only.
func (r *AttendanceRepository) OverallPercentage(ctx context.Context, studentID int64) (float64, error) {
	const query = `SELECT COUNT(CASE WHEN status = 'present' THEN 1 END) * 100.0 / COUNT(*) FROM attendance WHERE student_id = ?`
	var pct sql.NullFloat64
	if err := r.db.GetContext(ctx, &pct, query, studentID); err != nil {
		return 0, fmt.Errorf("overall attendance percentage: %w", err)
	}
	if !pct.Valid {
		return 0, nil
	}
	return pct.Float64, nil
}

// PerClassBreakdown returns present/absent counts and the percentage
// per class the student has attendance rows for.
func (r *AttendanceRepository) PerClassBreakdown(ctx context.Context, studentID int64) ([]models.ClassAttendance, error) {
	const query = `SELECT c.name,
	       COUNT(CASE WHEN a.status = 'present' THEN 1 END) AS present,
	       COUNT(CASE WHEN a.status = 'absent' THEN 1 END) AS absent,
	       COUNT(CASE WHEN a.status = 'present' THEN 1 END) * 100.0 / COUNT(*) AS percentage
	FROM attendance a
	JOIN classes c ON a.class_id = c.id
	WHERE a.student_id = ?
	GROUP BY c.name`
	var rows []models.ClassAttendance
	if err := r.db.SelectContext(ctx, &rows, query, studentID); err != nil {
		return nil, fmt.Errorf("per-class attendance breakdown: %w", err)
	}
	return rows, nil
}

// CountDistinctStudentsByFaculty counts the distinct students appearing
// in attendance rows for classes the faculty member owns.
func (r *AttendanceRepository) CountDistinctStudentsByFaculty(ctx context.Context, facultyID int64) (int, error) {
	const query = `SELECT COUNT(DISTINCT u.id)
	FROM users u
	JOIN attendance a ON u.id = a.student_id
	JOIN classes c ON a.class_id = c.id
	WHERE c.faculty_id = ?`
	var count int
	if err := r.db.GetContext(ctx, &count, query, facultyID); err != nil {
		return 0, fmt.Errorf("count students by faculty: %w", err)
	}
	return count, nil
}

// ListByStudent returns the raw attendance rows for a student, oldest
// first. Used by the attendance report export.
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.AttendanceRecord, error) {
	const query = `SELECT id, student_id, class_id, date, status FROM attendance WHERE student_id = ? ORDER BY date`
	var rows []models.AttendanceRecord
	if err := r.db.SelectContext(ctx, &rows, query, studentID); err != nil {
		return nil, fmt.Errorf("list attendance by student: %w", err)
	}
	return rows, nil
}
