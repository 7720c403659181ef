package models

// UserRole represents the three portal roles. There is no hierarchy:
// an admin session does not satisfy a faculty-only or student-only gate.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleFaculty UserRole = "faculty"
	RoleStudent UserRole = "student"
)

// Valid reports whether the role is one of the three known values.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleFaculty || r == RoleStudent
}

// User represents an account stored in the users table. Passwords are
// stored and compared in clear text; login is an exact string match.
// Department is set for faculty, Class for students.
type User struct {
	ID         int64    `db:"id" json:"id"`
	Username   string   `db:"username" json:"username"`
	Password   string   `db:"password" json:"-"`
	Role       UserRole `db:"role" json:"role"`
	Name       string   `db:"name" json:"name"`
	Email      *string  `db:"email" json:"email,omitempty"`
	Department *string  `db:"department" json:"department,omitempty"`
	Class      *string  `db:"class" json:"class,omitempty"`
}
