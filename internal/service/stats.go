package service

import (
	"math"
	"time"

	"github.com/noah-isme/trackme-api/internal/models"
)

// CompletionRate returns completed/total as a whole percentage, 0 when total is 0.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// AttendancePercentage returns present/total rounded to one decimal, 0 when total is 0.
func AttendancePercentage(present, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*1000) / 10
}

// CountStreak counts consecutive completed days ending at anchor. completed
// must be sorted newest first; dates after anchor are ignored.
func CountStreak(completed []models.Date, anchor models.Date) int {
	streak := 0
	expected := anchor
	for _, day := range completed {
		if day.After(expected) {
			continue
		}
		if day != expected {
			break
		}
		streak++
		expected = expected.AddDays(-1)
	}
	return streak
}

// lastDays returns the n days ending at end, oldest first.
func lastDays(end models.Date, n int) []models.Date {
	days := make([]models.Date, n)
	for i := 0; i < n; i++ {
		days[i] = end.AddDays(i - n + 1)
	}
	return days
}

// potentialHabits counts the habits that could have been completed on day:
// recurring habits that existed by then plus one-off habits targeted at it.
func potentialHabits(habits []models.Habit, day models.Date, loc *time.Location) int {
	count := 0
	for _, h := range habits {
		if h.IsRecurring {
			if !models.DateOf(h.CreatedAt.In(loc)).After(day) {
				count++
			}
			continue
		}
		if h.TargetDate != nil && *h.TargetDate == day {
			count++
		}
	}
	return count
}

// consistencySeries returns the per-day completion percentage for days.
func consistencySeries(habits []models.Habit, completed map[models.Date]int, days []models.Date, loc *time.Location) []int {
	series := make([]int, len(days))
	for i, day := range days {
		potential := potentialHabits(habits, day, loc)
		if potential == 0 {
			continue
		}
		done := completed[day]
		if done > potential {
			done = potential
		}
		series[i] = CompletionRate(done, potential)
	}
	return series
}

func countsByDay(rows []models.DayCount) map[models.Date]int {
	counts := make(map[models.Date]int, len(rows))
	for _, row := range rows {
		counts[row.Day] += row.Total
	}
	return counts
}

func shortWeekday(day models.Date) string {
	return day.Weekday().String()[:3]
}

func longDateLabel(day models.Date) string {
	return day.Time().Format("Monday, 02 January 2006")
}
