package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Seed inserts the default accounts, classes, events and catalog rows
// on first run. Seeding is keyed off the admin account: when it already
// exists the whole block is skipped, so restarting the server never
// duplicates data.
func Seed(db *sqlx.DB) error {
	var id int64
	err := db.Get(&id, `SELECT id FROM users WHERE username = 'admin'`)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("seed check: %w", err)
	}

	users := []struct {
		username, password, role, name, email string
		department, class                     *string
	}{
		{"admin", "admin123", "admin", "System Administrator", "admin@college.edu", nil, nil},
		{"faculty1", "faculty123", "faculty", "Dr. Robert Brown", "robert@college.edu", ptr("Computer Science"), nil},
		{"faculty2", "faculty123", "faculty", "Dr. Sarah Wilson", "sarah@college.edu", ptr("Electronics"), nil},
		{"student1", "student123", "student", "John Doe", "john@college.edu", nil, ptr("B.Tech CSE")},
		{"student2", "student123", "student", "Jane Smith", "jane@college.edu", nil, ptr("B.Tech ECE")},
	}
	for _, u := range users {
		if _, err := db.Exec(
			`INSERT INTO users (username, password, role, name, email, department, class) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			u.username, u.password, u.role, u.name, u.email, u.department, u.class,
		); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	classes := []struct {
		name     string
		faculty  int64
		schedule string
		room     string
	}{
		{"Mathematics", 2, "Mon, Wed 9:00-10:00", "Room 101"},
		{"Physics", 3, "Tue, Thu 11:00-12:00", "Room 205"},
	}
	for _, cl := range classes {
		if _, err := db.Exec(
			`INSERT INTO classes (name, faculty_id, schedule, room) VALUES (?, ?, ?, ?)`,
			cl.name, cl.faculty, cl.schedule, cl.room,
		); err != nil {
			return fmt.Errorf("seed classes: %w", err)
		}
	}

	events := []struct {
		name, date, time, venue, description string
	}{
		{"Tech Fest 2023", "2023-11-15", "10:00 AM", "Main Auditorium", "Annual technical festival"},
		{"Career Guidance Workshop", "2023-11-20", "2:00 PM", "Seminar Hall", "Workshop on career opportunities"},
	}
	for _, ev := range events {
		if _, err := db.Exec(
			`INSERT INTO events (name, date, time, venue, description) VALUES (?, ?, ?, ?, ?)`,
			ev.name, ev.date, ev.time, ev.venue, ev.description,
		); err != nil {
			return fmt.Errorf("seed events: %w", err)
		}
	}

	catalog := []struct {
		name, kind string
	}{
		{"Tech Club", "club"},
		{"Sports Club", "club"},
		{"Cultural Club", "club"},
		{"Science Club", "club"},
		{"Annual Sports Day", "event"},
		{"Tech Fest", "event"},
		{"Cultural Fest", "event"},
		{"Workshop", "event"},
	}
	for _, entry := range catalog {
		if _, err := db.Exec(
			`INSERT INTO clubs_events (name, type) VALUES (?, ?)`,
			entry.name, entry.kind,
		); err != nil {
			return fmt.Errorf("seed clubs_events: %w", err)
		}
	}

	today := time.Now().Format("2006-01-02")
	attendance := []struct {
		student, class int64
		status         string
	}{
		{4, 1, "present"},
		{5, 1, "present"},
	}
	for _, a := range attendance {
		if _, err := db.Exec(
			`INSERT INTO attendance (student_id, class_id, date, status) VALUES (?, ?, ?, ?)`,
			a.student, a.class, today, a.status,
		); err != nil {
			return fmt.Errorf("seed attendance: %w", err)
		}
	}

	if _, err := db.Exec(
		`INSERT INTO permissions (student_id, faculty_id, date, reason, status) VALUES (?, ?, ?, ?, ?)`,
		4, 2, "2023-10-25", "Medical appointment", "pending",
	); err != nil {
		return fmt.Errorf("seed permissions: %w", err)
	}

	return nil
}

func ptr(s string) *string { return &s }
