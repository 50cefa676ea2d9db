package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/trackme-api/internal/models"
)

const (
	presentSum = `COALESCE(SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END), 0) AS present`
	absentSum  = `COALESCE(SUM(CASE WHEN a.status = 'Absent' THEN 1 ELSE 0 END), 0) AS absent`
)

// AttendanceRepository persists attendance records and aggregates them.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs an AttendanceRepository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert stores the status for the subject and date, overwriting an existing mark.
func (r *AttendanceRepository) Upsert(ctx context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	const query = `INSERT INTO attendance_records (id, subject_id, date, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (subject_id, date)
DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
RETURNING id, subject_id, date, status, created_at, updated_at`
	var stored models.AttendanceRecord
	if err := r.db.GetContext(ctx, &stored, query, record.ID, record.SubjectID, record.Date, record.Status, record.CreatedAt, record.UpdatedAt); err != nil {
		return nil, fmt.Errorf("upsert attendance record: %w", err)
	}
	return &stored, nil
}

// Counts returns present and absent totals across all of the user's subjects.
func (r *AttendanceRepository) Counts(ctx context.Context, userID string) (models.AttendanceCounts, error) {
	query := `SELECT ` + presentSum + `, ` + absentSum + `
FROM attendance_records a
JOIN subjects s ON s.id = a.subject_id
WHERE s.user_id = $1`
	var counts models.AttendanceCounts
	if err := r.db.GetContext(ctx, &counts, query, userID); err != nil {
		return models.AttendanceCounts{}, fmt.Errorf("count attendance: %w", err)
	}
	return counts, nil
}

// CountsBySubject returns totals for every subject of the user, including
// subjects without records.
func (r *AttendanceRepository) CountsBySubject(ctx context.Context, userID string) ([]models.AttendanceCounts, error) {
	query := `SELECT s.id AS subject_id, s.name, ` + presentSum + `, ` + absentSum + `
FROM subjects s
LEFT JOIN attendance_records a ON a.subject_id = s.id
WHERE s.user_id = $1
GROUP BY s.id, s.name
ORDER BY s.name`
	var rows []models.AttendanceCounts
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("count attendance by subject: %w", err)
	}
	return rows, nil
}

// CountsForSubject returns totals for a single subject.
func (r *AttendanceRepository) CountsForSubject(ctx context.Context, subjectID string) (models.AttendanceCounts, error) {
	query := `SELECT ` + presentSum + `, ` + absentSum + `
FROM attendance_records a
WHERE a.subject_id = $1`
	var counts models.AttendanceCounts
	if err := r.db.GetContext(ctx, &counts, query, subjectID); err != nil {
		return models.AttendanceCounts{}, fmt.Errorf("count subject attendance: %w", err)
	}
	counts.SubjectID = subjectID
	return counts, nil
}
