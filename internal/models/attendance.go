package models

import "time"

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "Present"
	AttendanceStatusAbsent  AttendanceStatus = "Absent"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent:
		return true
	default:
		return false
	}
}

// AttendanceRecord is a subject's attendance mark for one day.
type AttendanceRecord struct {
	ID        string           `db:"id" json:"id"`
	SubjectID string           `db:"subject_id" json:"subject_id"`
	Date      Date             `db:"date" json:"date"`
	Status    AttendanceStatus `db:"status" json:"status"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt time.Time        `db:"updated_at" json:"updated_at"`
}

// AttendanceCounts aggregates present/absent marks, optionally per subject.
type AttendanceCounts struct {
	SubjectID string `db:"subject_id" json:"subject_id,omitempty"`
	Name      string `db:"name" json:"name,omitempty"`
	Present   int    `db:"present" json:"present"`
	Absent    int    `db:"absent" json:"absent"`
}

// Total returns the number of marks.
func (c AttendanceCounts) Total() int {
	return c.Present + c.Absent
}
