package dto

import "github.com/noah-isme/trackme-api/internal/models"

// HabitsPageResponse lists today's habits with streaks and the 7-day consistency series.
type HabitsPageResponse struct {
	Today          models.Date `json:"today"`
	TodayLabel     string      `json:"today_label"`
	Habits         []HabitItem `json:"habits_data"`
	CompletionRate int         `json:"completion_rate"`
	ChartLabels    []string    `json:"chart_labels"`
	ChartData      []int       `json:"chart_data"`
}

// HabitItem is one row of the habits page.
type HabitItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Completed bool   `json:"completed"`
	Streak    int    `json:"streak"`
}

// ToggleHabitResponse reports the stored state after a toggle.
type ToggleHabitResponse struct {
	HabitID   string `json:"habit_id"`
	Completed bool   `json:"completed"`
	Streak    int    `json:"streak"`
}

// DeleteResponse echoes the removed resource id.
type DeleteResponse struct {
	ID string `json:"id"`
}
