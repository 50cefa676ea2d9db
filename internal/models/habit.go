package models

import "time"

// HabitType is the user facing kind of habit.
type HabitType string

const (
	// HabitTypeRecurring habits are active every day.
	HabitTypeRecurring HabitType = "recurring"
	// HabitTypeToday habits are one-off habits targeted at the creation day.
	HabitTypeToday HabitType = "today"
)

// Habit is a recurring or one-off habit owned by a user.
type Habit struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Name        string    `db:"name" json:"name"`
	IsRecurring bool      `db:"is_recurring" json:"is_recurring"`
	TargetDate  *Date     `db:"target_date" json:"target_date,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ActiveOn reports whether the habit is due on day.
func (h Habit) ActiveOn(day Date) bool {
	if h.IsRecurring {
		return true
	}
	return h.TargetDate != nil && *h.TargetDate == day
}

// Label returns the display name of the habit kind.
func (h Habit) Label() string {
	if h.IsRecurring {
		return "Daily"
	}
	return "One-time"
}

// DailyLog records whether a habit was completed on a day.
type DailyLog struct {
	ID        string    `db:"id" json:"id"`
	HabitID   string    `db:"habit_id" json:"habit_id"`
	Date      Date      `db:"date" json:"date"`
	Completed bool      `db:"completed" json:"completed"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// HabitStatus is a habit joined with its completion state for one day.
type HabitStatus struct {
	Habit
	Completed bool `db:"completed" json:"completed"`
}
