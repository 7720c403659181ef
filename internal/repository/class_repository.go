package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/college-portal-api/internal/models"
)

// ClassRepository provides read access to the class roster.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository creates a new instance of ClassRepository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// ListByFaculty returns the classes owned by a faculty member.
func (r *ClassRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]models.Class, error) {
	const query = `SELECT id, name, faculty_id, schedule, room FROM classes WHERE faculty_id = ?`
	var classes []models.Class
	if err := r.db.SelectContext(ctx, &classes, query, facultyID); err != nil {
		return nil, fmt.Errorf("list classes by faculty: %w", err)
	}
	return classes, nil
}

// CountByFaculty counts the classes owned by a faculty member.
func (r *ClassRepository) CountByFaculty(ctx context.Context, facultyID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM classes WHERE faculty_id = ?`
	var count int
	if err := r.db.GetContext(ctx, &count, query, facultyID); err != nil {
		return 0, fmt.Errorf("count classes by faculty: %w", err)
	}
	return count, nil
}
