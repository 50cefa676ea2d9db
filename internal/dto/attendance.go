package dto

import "github.com/noah-isme/trackme-api/internal/models"

// AttendancePageResponse lists subjects with today's status.
type AttendancePageResponse struct {
	Today    models.Date       `json:"today"`
	Subjects []SubjectTodayRow `json:"subjects"`
}

// SubjectTodayRow is a subject and its status for today, if marked.
type SubjectTodayRow struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	TodayStatus *models.AttendanceStatus `json:"today_status"`
}

// MarkAttendanceResponse echoes the stored mark.
type MarkAttendanceResponse struct {
	SubjectID string                  `json:"subject_id"`
	Status    models.AttendanceStatus `json:"status"`
	Date      models.Date             `json:"date"`
}

// AttendanceStatsResponse holds overall and per-subject attendance.
type AttendanceStatsResponse struct {
	Overall   AttendanceTotals         `json:"overall"`
	BySubject []SubjectAttendanceStats `json:"bySubject"`
}

// AttendanceTotals are present/absent counts with a one-decimal percentage.
type AttendanceTotals struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Percentage float64 `json:"percentage"`
}

// SubjectAttendanceStats is a per-subject attendance line.
type SubjectAttendanceStats struct {
	SubjectID  string  `json:"subject_id"`
	Name       string  `json:"name"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Percentage float64 `json:"percentage"`
}

// SubjectStatsResponse is the all-time summary of a single subject.
type SubjectStatsResponse struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}
