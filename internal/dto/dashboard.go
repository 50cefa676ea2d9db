package dto

import "github.com/noah-isme/trackme-api/internal/models"

// DashboardResponse is the home page summary for the current day.
type DashboardResponse struct {
	Today                models.Date    `json:"today"`
	TodayLabel           string         `json:"today_label"`
	Username             string         `json:"username"`
	CompletionRate       int            `json:"completion_rate"`
	CompletedCount       int            `json:"completed_count"`
	TotalCount           int            `json:"total_count"`
	PendingHabits        []PendingHabit `json:"pending_habits"`
	AttendancePercentage float64        `json:"attendance_percentage"`
}

// PendingHabit is an active habit not yet completed today.
type PendingHabit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
