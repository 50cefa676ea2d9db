package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/trackme-api/internal/dto"
	"github.com/noah-isme/trackme-api/internal/models"
	"github.com/noah-isme/trackme-api/internal/service"
	appErrors "github.com/noah-isme/trackme-api/pkg/errors"
)

type fakeAttendanceSrv struct {
	marks      []service.MarkAttendanceRequest
	created    []service.CreateSubjectRequest
	deleted    []string
	createErr  error
	subjectErr error
	statsHit   bool
}

func (f *fakeAttendanceSrv) Page(context.Context, string) (*dto.AttendancePageResponse, error) {
	present := models.AttendanceStatusPresent
	return &dto.AttendancePageResponse{
		Today: models.NewDate(2024, 3, 1),
		Subjects: []dto.SubjectTodayRow{
			{ID: "s-1", Name: "BEE", TodayStatus: &present},
			{ID: "s-2", Name: "DMGT"},
		},
	}, nil
}

func (f *fakeAttendanceSrv) Mark(_ context.Context, _ string, req service.MarkAttendanceRequest) (*dto.MarkAttendanceResponse, error) {
	f.marks = append(f.marks, req)
	return &dto.MarkAttendanceResponse{SubjectID: req.SubjectID, Status: models.AttendanceStatus(req.Status), Date: models.NewDate(2024, 3, 1)}, nil
}

func (f *fakeAttendanceSrv) CreateSubject(_ context.Context, userID string, req service.CreateSubjectRequest) (*models.Subject, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &models.Subject{ID: "s-new", UserID: userID, Name: req.Name}, nil
}

func (f *fakeAttendanceSrv) DeleteSubject(_ context.Context, _ string, subjectID string) error {
	f.deleted = append(f.deleted, subjectID)
	return nil
}

func (f *fakeAttendanceSrv) Stats(context.Context, string) (*dto.AttendanceStatsResponse, bool, error) {
	return &dto.AttendanceStatsResponse{
		Overall:   dto.AttendanceTotals{Present: 3, Absent: 1, Percentage: 75},
		BySubject: []dto.SubjectAttendanceStats{{SubjectID: "s-1", Name: "BEE", Present: 3, Absent: 1, Percentage: 75}},
	}, f.statsHit, nil
}

func (f *fakeAttendanceSrv) SubjectStats(_ context.Context, _ string, subjectID string) (*dto.SubjectStatsResponse, error) {
	if f.subjectErr != nil {
		return nil, f.subjectErr
	}
	return &dto.SubjectStatsResponse{Present: 2, Absent: 1, Total: 3, Percentage: 66.7}, nil
}

func newAttendanceRouter(srv *fakeAttendanceSrv) http.Handler {
	h := NewAttendanceHandler(srv)
	r := newTestRouter()
	r.GET("/attendance", h.Page)
	r.POST("/mark-attendance", h.Mark)
	r.POST("/api/subjects", h.CreateSubject)
	r.DELETE("/api/subjects/:subject_id", h.DeleteSubject)
	r.GET("/api/attendance-stats", h.Stats)
	r.GET("/api/subject_stats/:subject_id", h.SubjectStats)
	return r
}

func TestAttendanceHandlerPage(t *testing.T) {
	rec, envelope := doRequest(t, newAttendanceRouter(&fakeAttendanceSrv{}), http.MethodGet, "/attendance", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	subjects := envelope.Data["subjects"].([]interface{})
	require.Len(t, subjects, 2)
	assert.Equal(t, "Present", subjects[0].(map[string]interface{})["today_status"])
	assert.Nil(t, subjects[1].(map[string]interface{})["today_status"])
}

func TestAttendanceHandlerMark(t *testing.T) {
	srv := &fakeAttendanceSrv{}

	rec, envelope := doRequest(t, newAttendanceRouter(srv), http.MethodPost, "/mark-attendance", map[string]string{"subject_id": "s-1", "status": "Absent"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, srv.marks, 1)
	assert.Equal(t, "Absent", srv.marks[0].Status)
	assert.Equal(t, "s-1", envelope.Data["subject_id"])
	assert.Equal(t, "2024-03-01", envelope.Data["date"])
}

func TestAttendanceHandlerMarkRejectsMalformedBody(t *testing.T) {
	srv := &fakeAttendanceSrv{}
	r := newAttendanceRouter(srv)

	rec, envelope := doRequest(t, r, http.MethodPost, "/mark-attendance", []string{"not", "an", "object"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Empty(t, srv.marks)
}

func TestAttendanceHandlerCreateSubjectConflict(t *testing.T) {
	srv := &fakeAttendanceSrv{createErr: appErrors.Clone(appErrors.ErrConflict, "subject already exists")}

	rec, envelope := doRequest(t, newAttendanceRouter(srv), http.MethodPost, "/api/subjects", map[string]string{"name": "BEE"})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "subject already exists", envelope.Error.Message)
}

func TestAttendanceHandlerCreateSubject(t *testing.T) {
	srv := &fakeAttendanceSrv{}

	rec, envelope := doRequest(t, newAttendanceRouter(srv), http.MethodPost, "/api/subjects", map[string]string{"name": "Physics"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Physics", envelope.Data["name"])
}

func TestAttendanceHandlerDeleteSubject(t *testing.T) {
	srv := &fakeAttendanceSrv{}

	rec, envelope := doRequest(t, newAttendanceRouter(srv), http.MethodDelete, "/api/subjects/s-2", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"s-2"}, srv.deleted)
	assert.Equal(t, "s-2", envelope.Data["id"])
}

func TestAttendanceHandlerStats(t *testing.T) {
	rec, envelope := doRequest(t, newAttendanceRouter(&fakeAttendanceSrv{statsHit: true}), http.MethodGet, "/api/attendance-stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	overall := envelope.Data["overall"].(map[string]interface{})
	assert.Equal(t, float64(75), overall["percentage"])
	assert.Len(t, envelope.Data["bySubject"], 1)
	assert.Equal(t, true, envelope.Meta["cache_hit"])
}

func TestAttendanceHandlerSubjectStats(t *testing.T) {
	rec, envelope := doRequest(t, newAttendanceRouter(&fakeAttendanceSrv{}), http.MethodGet, "/api/subject_stats/s-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), envelope.Data["total"])
	assert.Equal(t, 66.7, envelope.Data["percentage"])
}

func TestAttendanceHandlerSubjectStatsNotFound(t *testing.T) {
	srv := &fakeAttendanceSrv{subjectErr: appErrors.NotFound("subject")}

	rec, _ := doRequest(t, newAttendanceRouter(srv), http.MethodGet, "/api/subject_stats/unknown", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
