package models

// Class is a taught class owned by one faculty member. Classes are
// seeded or created by an admin and read-only through the API.
type Class struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	FacultyID int64  `db:"faculty_id" json:"faculty_id"`
	Schedule  string `db:"schedule" json:"schedule"`
	Room      string `db:"room" json:"room"`
}
