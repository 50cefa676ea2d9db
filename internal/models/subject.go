package models

import "time"

// Subject represents a class or course the user attends.
type Subject struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SubjectWithStatus carries today's attendance status, if any.
type SubjectWithStatus struct {
	Subject
	TodayStatus *AttendanceStatus `db:"today_status" json:"today_status"`
}
