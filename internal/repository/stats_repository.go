package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/trackme-api/internal/models"
)

// StatsRepository runs the grouped queries behind the chart endpoints.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository constructs a StatsRepository.
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// CompletedByDay counts completed logs of the user's habits per day in [from, to].
func (r *StatsRepository) CompletedByDay(ctx context.Context, userID string, from, to models.Date) ([]models.DayCount, error) {
	const query = `SELECT l.date AS day, COUNT(*) AS total
FROM daily_logs l
JOIN habits h ON h.id = l.habit_id
WHERE h.user_id = $1 AND l.completed = TRUE AND l.date BETWEEN $2 AND $3
GROUP BY l.date
ORDER BY l.date`
	var rows []models.DayCount
	if err := r.db.SelectContext(ctx, &rows, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("count completed logs by day: %w", err)
	}
	return rows, nil
}

// CompletedByHabit counts completed logs per habit name in [from, to], ordered by name.
func (r *StatsRepository) CompletedByHabit(ctx context.Context, userID string, from, to models.Date) ([]models.LabelValue, error) {
	const query = `SELECT h.name AS label, COUNT(*) AS value
FROM daily_logs l
JOIN habits h ON h.id = l.habit_id
WHERE h.user_id = $1 AND l.completed = TRUE AND l.date BETWEEN $2 AND $3
GROUP BY h.name
ORDER BY h.name`
	var rows []models.LabelValue
	if err := r.db.SelectContext(ctx, &rows, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("count completed logs by habit: %w", err)
	}
	return rows, nil
}
