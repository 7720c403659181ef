package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/college-portal-api/internal/models"
)

// EventRepository provides read access to scheduled events and student
// enrolments.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Count returns the total number of scheduled events.
func (r *EventRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM events`
	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

// ListEnrolled returns the events a student has joined.
func (r *EventRepository) ListEnrolled(ctx context.Context, studentID int64) ([]models.Event, error) {
	const query = `SELECT e.id, e.name, e.date, e.time, e.venue, e.description
	FROM events e
	JOIN student_events se ON e.id = se.event_id
	WHERE se.student_id = ?`
	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, query, studentID); err != nil {
		return nil, fmt.Errorf("list enrolled events: %w", err)
	}
	return events, nil
}

// CountEnrolled counts the events a student has joined.
func (r *EventRepository) CountEnrolled(ctx context.Context, studentID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM student_events WHERE student_id = ?`
	var count int
	if err := r.db.GetContext(ctx, &count, query, studentID); err != nil {
		return 0, fmt.Errorf("count enrolled events: %w", err)
	}
	return count, nil
}
