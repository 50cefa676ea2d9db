package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/trackme-api/internal/models"
)

const habitColumns = `h.id, h.user_id, h.name, h.is_recurring, h.target_date, h.created_at, h.updated_at`

// HabitRepository persists habits and their daily logs.
type HabitRepository struct {
	db *sqlx.DB
}

// NewHabitRepository constructs a HabitRepository.
func NewHabitRepository(db *sqlx.DB) *HabitRepository {
	return &HabitRepository{db: db}
}

// Create inserts a habit.
func (r *HabitRepository) Create(ctx context.Context, habit *models.Habit) error {
	if habit.ID == "" {
		habit.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = now
	}
	habit.UpdatedAt = now

	const query = `INSERT INTO habits (id, user_id, name, is_recurring, target_date, created_at, updated_at) VALUES (:id, :user_id, :name, :is_recurring, :target_date, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, habit); err != nil {
		return fmt.Errorf("create habit: %w", err)
	}
	return nil
}

// FindByID returns the user's habit by id.
func (r *HabitRepository) FindByID(ctx context.Context, userID, id string) (*models.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits h WHERE h.id = $1 AND h.user_id = $2`
	var habit models.Habit
	if err := r.db.GetContext(ctx, &habit, query, id, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find habit: %w", err)
	}
	return &habit, nil
}

// ListByUser returns every habit of the user, oldest first.
func (r *HabitRepository) ListByUser(ctx context.Context, userID string) ([]models.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits h WHERE h.user_id = $1 ORDER BY h.created_at, h.name`
	var habits []models.Habit
	if err := r.db.SelectContext(ctx, &habits, query, userID); err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

// ListActiveWithStatus returns the habits active on day joined with that day's log.
// A habit without a log for the day is reported as not completed.
func (r *HabitRepository) ListActiveWithStatus(ctx context.Context, userID string, day models.Date) ([]models.HabitStatus, error) {
	query := `SELECT ` + habitColumns + `, COALESCE(l.completed, FALSE) AS completed
FROM habits h
LEFT JOIN daily_logs l ON l.habit_id = h.id AND l.date = $2
WHERE h.user_id = $1 AND (h.is_recurring = TRUE OR h.target_date = $2)
ORDER BY h.created_at, h.name`
	var items []models.HabitStatus
	if err := r.db.SelectContext(ctx, &items, query, userID, day); err != nil {
		return nil, fmt.Errorf("list active habits: %w", err)
	}
	return items, nil
}

// Toggle flips the habit's log for day, creating it as completed when absent.
// It returns the stored log.
func (r *HabitRepository) Toggle(ctx context.Context, habitID string, day models.Date) (*models.DailyLog, error) {
	const query = `INSERT INTO daily_logs (id, habit_id, date, completed, created_at, updated_at)
VALUES ($1, $2, $3, TRUE, $4, $4)
ON CONFLICT (habit_id, date)
DO UPDATE SET completed = NOT daily_logs.completed, updated_at = EXCLUDED.updated_at
RETURNING id, habit_id, date, completed`
	now := time.Now().UTC()
	var log models.DailyLog
	if err := r.db.GetContext(ctx, &log, query, uuid.NewString(), habitID, day, now); err != nil {
		return nil, fmt.Errorf("toggle habit log: %w", err)
	}
	log.UpdatedAt = now
	return &log, nil
}

// Delete removes the habit and its logs. It returns sql.ErrNoRows when the
// user has no such habit.
func (r *HabitRepository) Delete(ctx context.Context, userID, id string) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete habit: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const deleteLogs = `DELETE FROM daily_logs WHERE habit_id IN (SELECT id FROM habits WHERE id = $1 AND user_id = $2)`
	if _, err = tx.ExecContext(ctx, deleteLogs, id, userID); err != nil {
		return fmt.Errorf("delete habit logs: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM habits WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete habit rows affected: %w", err)
	}
	if affected == 0 {
		err = sql.ErrNoRows
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete habit: %w", err)
	}
	return nil
}

// CompletedDates returns the completed log dates of a habit on or before upTo, newest first.
func (r *HabitRepository) CompletedDates(ctx context.Context, habitID string, upTo models.Date) ([]models.Date, error) {
	const query = `SELECT date FROM daily_logs WHERE habit_id = $1 AND completed = TRUE AND date <= $2 ORDER BY date DESC`
	var dates []models.Date
	if err := r.db.SelectContext(ctx, &dates, query, habitID, upTo); err != nil {
		return nil, fmt.Errorf("list completed dates: %w", err)
	}
	return dates, nil
}

// CompletedDatesByHabit returns, for every recurring habit of the user, the
// completed log dates on or before upTo, newest first.
func (r *HabitRepository) CompletedDatesByHabit(ctx context.Context, userID string, upTo models.Date) (map[string][]models.Date, error) {
	const query = `SELECT l.habit_id, l.date
FROM daily_logs l
JOIN habits h ON h.id = l.habit_id
WHERE h.user_id = $1 AND h.is_recurring = TRUE AND l.completed = TRUE AND l.date <= $2
ORDER BY l.habit_id, l.date DESC`
	var rows []struct {
		HabitID string      `db:"habit_id"`
		Date    models.Date `db:"date"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, userID, upTo); err != nil {
		return nil, fmt.Errorf("list completed dates by habit: %w", err)
	}

	result := make(map[string][]models.Date)
	for _, row := range rows {
		result[row.HabitID] = append(result[row.HabitID], row.Date)
	}
	return result, nil
}
