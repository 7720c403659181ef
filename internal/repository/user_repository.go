package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

// UserRepository provides database access for portal accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByCredentials returns the user matching username, password and
// role exactly. Credentials are compared in clear text; a mismatch on
// any of the three fields yields sql.ErrNoRows.
func (r *UserRepository) FindByCredentials(ctx context.Context, username, password string, role models.UserRole) (*models.User, error) {
	const query = `SELECT id, username, password, role, name, email, department, class FROM users WHERE username = ? AND password = ? AND role = ? LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, username, password, role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find user by credentials: %w", err)
	}
	return &user, nil
}

// FindByID returns a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `SELECT id, username, password, role, name, email, department, class FROM users WHERE id = ? LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// Create inserts a new user row. A unique-constraint violation on
// username surfaces as ErrDuplicateUsername so callers can report it
// without inspecting driver errors.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const query = `INSERT INTO users (username, password, role, name, email, department, class) VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, user.Username, user.Password, user.Role, user.Name, user.Email, user.Department, user.Class)
	if err != nil {
		if isUniqueViolation(err) {
			return appErrors.ErrDuplicateUsername
		}
		return fmt.Errorf("create user: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		user.ID = id
	}
	return nil
}

// Delete removes a user by primary key. Rows in permissions, attendance
// and classes that reference the user are left in place; joins through
// the deleted id simply return fewer rows afterwards.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// UpdatePassword overwrites the stored password for a user.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, password string) error {
	const query = `UPDATE users SET password = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, password, id); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ListByRole returns every user holding the given role.
func (r *UserRepository) ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	const query = `SELECT id, username, password, role, name, email, department, class FROM users WHERE role = ?`
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, role); err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	return users, nil
}

// CountByRole counts users holding the given role.
func (r *UserRepository) CountByRole(ctx context.Context, role models.UserRole) (int, error) {
	const query = `SELECT COUNT(*) FROM users WHERE role = ?`
	var count int
	if err := r.db.GetContext(ctx, &count, query, role); err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return count, nil
}

// FirstFacultyID returns the id of the first faculty user by insertion
// order. New permission requests are routed there; no class-to-faculty
// mapping is applied.
func (r *UserRepository) FirstFacultyID(ctx context.Context) (int64, error) {
	const query = `SELECT id FROM users WHERE role = 'faculty' ORDER BY id LIMIT 1`
	var id int64
	if err := r.db.GetContext(ctx, &id, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, err
		}
		return 0, fmt.Errorf("first faculty id: %w", err)
	}
	return id, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
