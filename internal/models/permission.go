package models

import "time"

// Permission status values. The update path does not validate against
// these: faculty may write any string and it sticks.
const (
	PermissionPending  = "pending"
	PermissionApproved = "approved"
	PermissionRejected = "rejected"
)

// Permission is a student leave request routed to a faculty member.
// Created by students, status-mutated by faculty, never deleted.
type Permission struct {
	ID        int64     `db:"id" json:"id"`
	StudentID int64     `db:"student_id" json:"student_id"`
	FacultyID int64     `db:"faculty_id" json:"faculty_id"`
	Date      string    `db:"date" json:"date"`
	Reason    string    `db:"reason" json:"reason"`
	Proof     *string   `db:"proof" json:"proof,omitempty"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PermissionWithStudent joins the requesting student's display name
// onto the permission row for faculty views. Requests whose student was
// deleted drop out of the join.
type PermissionWithStudent struct {
	Permission
	StudentName string `db:"student_name" json:"student_name"`
}
