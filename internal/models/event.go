package models

// Event is a scheduled college event managed by admins. Students join
// through student_events rows.
type Event struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Date        string `db:"date" json:"date"`
	Time        string `db:"time" json:"time"`
	Venue       string `db:"venue" json:"venue"`
	Description string `db:"description" json:"description"`
}

// StudentEvent links a student to an event they enrolled in.
type StudentEvent struct {
	ID        int64 `db:"id" json:"id"`
	StudentID int64 `db:"student_id" json:"student_id"`
	EventID   int64 `db:"event_id" json:"event_id"`
}
