package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/college-portal-api/internal/models"
)

// PermissionRepository provides database access for leave requests.
type PermissionRepository struct {
	db *sqlx.DB
}

// NewPermissionRepository creates a new instance of PermissionRepository.
func NewPermissionRepository(db *sqlx.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// Create inserts a new pending permission request.
func (r *PermissionRepository) Create(ctx context.Context, p *models.Permission) error {
	const query = `INSERT INTO permissions (student_id, faculty_id, date, reason, proof) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, p.StudentID, p.FacultyID, p.Date, p.Reason, p.Proof)
	if err != nil {
		return fmt.Errorf("create permission: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		p.ID = id
	}
	return nil
}

// UpdateStatus overwrites the status field with the caller-supplied
// string. There is no ownership check and no enum validation; updating
// a missing id affects zero rows and still succeeds.
func (r *PermissionRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	const query = `UPDATE permissions SET status = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("update permission status: %w", err)
	}
	return nil
}

// ListByStudent returns every permission the student has filed.
func (r *PermissionRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Permission, error) {
	const query = `SELECT id, student_id, faculty_id, date, reason, proof, status, created_at FROM permissions WHERE student_id = ?`
	var rows []models.Permission
	if err := r.db.SelectContext(ctx, &rows, query, studentID); err != nil {
		return nil, fmt.Errorf("list permissions by student: %w", err)
	}
	return rows, nil
}

// ListByFaculty returns permissions addressed to the faculty member,
// joined with the requesting student's name.
func (r *PermissionRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]models.PermissionWithStudent, error) {
	const query = `SELECT p.id, p.student_id, p.faculty_id, p.date, p.reason, p.proof, p.status, p.created_at, u.name AS student_name
	FROM permissions p
	JOIN users u ON p.student_id = u.id
	WHERE p.faculty_id = ?`
	var rows []models.PermissionWithStudent
	if err := r.db.SelectContext(ctx, &rows, query, facultyID); err != nil {
		return nil, fmt.Errorf("list permissions by faculty: %w", err)
	}
	return rows, nil
}

// CountPending counts pending requests portal-wide.
func (r *PermissionRepository) CountPending(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM permissions WHERE status = 'pending'`
	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count pending permissions: %w", err)
	}
	return count, nil
}

// CountPendingByFaculty counts pending requests addressed to a faculty.
func (r *PermissionRepository) CountPendingByFaculty(ctx context.Context, facultyID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM permissions WHERE faculty_id = ? AND status = 'pending'`
	var count int
	if err := r.db.GetContext(ctx, &count, query, facultyID); err != nil {
		return 0, fmt.Errorf("count pending permissions by faculty: %w", err)
	}
	return count, nil
}

// CountPendingByStudent counts a student's own pending requests.
func (r *PermissionRepository) CountPendingByStudent(ctx context.Context, studentID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM permissions WHERE student_id = ? AND status = 'pending'`
	var count int
	if err := r.db.GetContext(ctx, &count, query, studentID); err != nil {
		return 0, fmt.Errorf("count pending permissions by student: %w", err)
	}
	return count, nil
}
