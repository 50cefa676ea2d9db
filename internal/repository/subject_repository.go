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

// SubjectRepository handles persistence for subjects.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository creates a new repository instance.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// List returns the user's subjects ordered by name.
func (r *SubjectRepository) List(ctx context.Context, userID string) ([]models.Subject, error) {
	const query = `SELECT id, user_id, name, created_at, updated_at FROM subjects WHERE user_id = $1 ORDER BY name`
	var subjects []models.Subject
	if err := r.db.SelectContext(ctx, &subjects, query, userID); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// ListWithStatus returns the user's subjects with the attendance status recorded on day.
func (r *SubjectRepository) ListWithStatus(ctx context.Context, userID string, day models.Date) ([]models.SubjectWithStatus, error) {
	const query = `SELECT s.id, s.user_id, s.name, s.created_at, s.updated_at, a.status AS today_status
FROM subjects s
LEFT JOIN attendance_records a ON a.subject_id = s.id AND a.date = $2
WHERE s.user_id = $1
ORDER BY s.name`
	var subjects []models.SubjectWithStatus
	if err := r.db.SelectContext(ctx, &subjects, query, userID, day); err != nil {
		return nil, fmt.Errorf("list subjects with status: %w", err)
	}
	return subjects, nil
}

// FindByID returns the user's subject by id.
func (r *SubjectRepository) FindByID(ctx context.Context, userID, id string) (*models.Subject, error) {
	const query = `SELECT id, user_id, name, created_at, updated_at FROM subjects WHERE id = $1 AND user_id = $2`
	var subject models.Subject
	if err := r.db.GetContext(ctx, &subject, query, id, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find subject: %w", err)
	}
	return &subject, nil
}

// ExistsByName checks uniqueness of a subject name for the user.
func (r *SubjectRepository) ExistsByName(ctx context.Context, userID, name string) (bool, error) {
	const query = `SELECT 1 FROM subjects WHERE user_id = $1 AND LOWER(name) = LOWER($2) LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, userID, name); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check subject name: %w", err)
	}
	return true, nil
}

// Create persists a new subject.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	if subject.ID == "" {
		subject.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if subject.CreatedAt.IsZero() {
		subject.CreatedAt = now
	}
	subject.UpdatedAt = now

	const query = `INSERT INTO subjects (id, user_id, name, created_at, updated_at) VALUES (:id, :user_id, :name, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, subject); err != nil {
		return fmt.Errorf("create subject: %w", err)
	}
	return nil
}

// Delete removes the subject and its attendance records. It returns
// sql.ErrNoRows when the user has no such subject.
func (r *SubjectRepository) Delete(ctx context.Context, userID, id string) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete subject: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const deleteRecords = `DELETE FROM attendance_records WHERE subject_id IN (SELECT id FROM subjects WHERE id = $1 AND user_id = $2)`
	if _, err = tx.ExecContext(ctx, deleteRecords, id, userID); err != nil {
		return fmt.Errorf("delete subject records: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM subjects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete subject rows affected: %w", err)
	}
	if affected == 0 {
		err = sql.ErrNoRows
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete subject: %w", err)
	}
	return nil
}
