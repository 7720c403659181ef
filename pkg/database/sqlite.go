package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/noah-isme/college-portal-api/pkg/config"
)

// NewSQLite returns a pooled client for the file-backed portal database.
func NewSQLite(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", cfg.Path)

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT,
		department TEXT,
		class TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS permissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER,
		faculty_id INTEGER,
		date DATE NOT NULL,
		reason TEXT NOT NULL,
		proof TEXT,
		status TEXT DEFAULT 'pending',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (student_id) REFERENCES users (id),
		FOREIGN KEY (faculty_id) REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER,
		class_id INTEGER,
		date DATE NOT NULL,
		status TEXT NOT NULL,
		FOREIGN KEY (student_id) REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS classes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		faculty_id INTEGER,
		schedule TEXT,
		room TEXT,
		FOREIGN KEY (faculty_id) REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		date DATE NOT NULL,
		time TEXT,
		venue TEXT,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS student_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER,
		event_id INTEGER,
		FOREIGN KEY (student_id) REFERENCES users (id),
		FOREIGN KEY (event_id) REFERENCES events (id)
	)`,
	`CREATE TABLE IF NOT EXISTS clubs_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		is_active BOOLEAN DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Migrate creates the seven portal tables when they do not exist.
// Foreign keys are declared but not enforced: deleting a user leaves
// dangling references behind, and downstream joins simply shrink.
func Migrate(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
