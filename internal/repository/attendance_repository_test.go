package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/trackme-api/internal/models"
)

func TestAttendanceRepositoryCountsQuery(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN subjects s ON s.id = a.subject_id")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"present", "absent"}).AddRow(3, 1))

	counts, err := repo.Counts(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Present)
	assert.Equal(t, 4, counts.Total())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryUpsertOverwrites(t *testing.T) {
	db := newSQLiteDB(t)
	user := seedUser(t, NewUserRepository(db), "demo_user")
	subjects := NewSubjectRepository(db)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()
	day := models.NewDate(2024, time.May, 1)

	subject := &models.Subject{UserID: user.ID, Name: "DCMP"}
	require.NoError(t, subjects.Create(ctx, subject))

	first, err := repo.Upsert(ctx, &models.AttendanceRecord{SubjectID: subject.ID, Date: day, Status: models.AttendanceStatusPresent})
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, &models.AttendanceRecord{SubjectID: subject.ID, Date: day, Status: models.AttendanceStatusAbsent})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.AttendanceStatusAbsent, second.Status)
	assert.Equal(t, day, second.Date)

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM attendance_records`))
	assert.Equal(t, 1, count)
}

func TestAttendanceRepositoryCounts(t *testing.T) {
	db := newSQLiteDB(t)
	user := seedUser(t, NewUserRepository(db), "demo_user")
	subjects := NewSubjectRepository(db)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()
	day := models.NewDate(2024, time.May, 1)

	bee := &models.Subject{UserID: user.ID, Name: "BEE"}
	hisp := &models.Subject{UserID: user.ID, Name: "HISP-II"}
	require.NoError(t, subjects.Create(ctx, bee))
	require.NoError(t, subjects.Create(ctx, hisp))

	statuses := []models.AttendanceStatus{
		models.AttendanceStatusPresent,
		models.AttendanceStatusPresent,
		models.AttendanceStatusPresent,
		models.AttendanceStatusAbsent,
	}
	for i, status := range statuses {
		_, err := repo.Upsert(ctx, &models.AttendanceRecord{SubjectID: bee.ID, Date: day.AddDays(-i), Status: status})
		require.NoError(t, err)
	}

	overall, err := repo.Counts(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, overall.Present)
	assert.Equal(t, 1, overall.Absent)

	bySubject, err := repo.CountsBySubject(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, bySubject, 2)
	assert.Equal(t, models.AttendanceCounts{SubjectID: bee.ID, Name: "BEE", Present: 3, Absent: 1}, bySubject[0])
	assert.Equal(t, models.AttendanceCounts{SubjectID: hisp.ID, Name: "HISP-II"}, bySubject[1])

	single, err := repo.CountsForSubject(ctx, hisp.ID)
	require.NoError(t, err)
	assert.Zero(t, single.Total())
}
