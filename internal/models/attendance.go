package models

// Attendance status values. Any other string still counts toward the
// denominator of percentage queries, just never the numerator.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// AttendanceRecord is one student/class/date row. No uniqueness
// constraint exists, so duplicate rows for the same key are possible
// and silently aggregated.
type AttendanceRecord struct {
	ID        int64  `db:"id" json:"id"`
	StudentID int64  `db:"student_id" json:"student_id"`
	ClassID   int64  `db:"class_id" json:"class_id"`
	Date      string `db:"date" json:"date"`
	Status    string `db:"status" json:"status"`
}

// ClassAttendance is the per-class rollup shown on the student
// dashboard: present and absent counts plus the present percentage.
type ClassAttendance struct {
	Class      string  `db:"name" json:"class"`
	Present    int     `db:"present" json:"present"`
	Absent     int     `db:"absent" json:"absent"`
	Percentage float64 `db:"percentage" json:"percentage"`
}
