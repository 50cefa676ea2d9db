package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/trackme-api/internal/models"
)

func TestSubjectRepositoryExistsByName(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM subjects WHERE user_id = $1 AND LOWER(name) = LOWER($2) LIMIT 1")).
		WithArgs("u-1", "BEE").
		WillReturnError(sql.ErrNoRows)

	exists, err := repo.ExistsByName(context.Background(), "u-1", "BEE")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubjectRepositoryListWithStatus(t *testing.T) {
	db := newSQLiteDB(t)
	user := seedUser(t, NewUserRepository(db), "demo_user")
	subjects := NewSubjectRepository(db)
	records := NewAttendanceRepository(db)
	ctx := context.Background()
	today := models.NewDate(2024, time.May, 1)

	bee := &models.Subject{UserID: user.ID, Name: "BEE"}
	dmgt := &models.Subject{UserID: user.ID, Name: "DMGT"}
	require.NoError(t, subjects.Create(ctx, bee))
	require.NoError(t, subjects.Create(ctx, dmgt))

	_, err := records.Upsert(ctx, &models.AttendanceRecord{SubjectID: bee.ID, Date: today, Status: models.AttendanceStatusAbsent})
	require.NoError(t, err)
	_, err = records.Upsert(ctx, &models.AttendanceRecord{SubjectID: dmgt.ID, Date: today.AddDays(-1), Status: models.AttendanceStatusPresent})
	require.NoError(t, err)

	items, err := subjects.ListWithStatus(ctx, user.ID, today)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "BEE", items[0].Name)
	require.NotNil(t, items[0].TodayStatus)
	assert.Equal(t, models.AttendanceStatusAbsent, *items[0].TodayStatus)
	assert.Nil(t, items[1].TodayStatus)

	exists, err := subjects.ExistsByName(ctx, user.ID, "bee")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSubjectRepositoryDeleteRemovesRecords(t *testing.T) {
	db := newSQLiteDB(t)
	user := seedUser(t, NewUserRepository(db), "demo_user")
	subjects := NewSubjectRepository(db)
	records := NewAttendanceRepository(db)
	ctx := context.Background()

	subject := &models.Subject{UserID: user.ID, Name: "M-II"}
	require.NoError(t, subjects.Create(ctx, subject))
	_, err := records.Upsert(ctx, &models.AttendanceRecord{SubjectID: subject.ID, Date: models.NewDate(2024, time.May, 1), Status: models.AttendanceStatusPresent})
	require.NoError(t, err)

	require.NoError(t, subjects.Delete(ctx, user.ID, subject.ID))

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM attendance_records`))
	assert.Zero(t, count)

	_, err = subjects.FindByID(ctx, user.ID, subject.ID)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.True(t, errors.Is(subjects.Delete(ctx, user.ID, subject.ID), sql.ErrNoRows))
}
