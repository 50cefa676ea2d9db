package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/trackme-api/internal/dto"
	"github.com/noah-isme/trackme-api/internal/models"
	"github.com/noah-isme/trackme-api/internal/service"
	appErrors "github.com/noah-isme/trackme-api/pkg/errors"
)

type fakeHabitSrv struct {
	page      *dto.HabitsPageResponse
	created   []service.CreateHabitRequest
	toggled   []string
	deleted   []string
	toggleErr error
	deleteErr error
}

func (f *fakeHabitSrv) Page(context.Context, string) (*dto.HabitsPageResponse, error) {
	return f.page, nil
}

func (f *fakeHabitSrv) Create(_ context.Context, userID string, req service.CreateHabitRequest) (*models.Habit, error) {
	f.created = append(f.created, req)
	return &models.Habit{ID: "h-new", UserID: userID, Name: req.Name, IsRecurring: req.Type != string(models.HabitTypeToday)}, nil
}

func (f *fakeHabitSrv) Toggle(_ context.Context, _ string, habitID string) (*dto.ToggleHabitResponse, error) {
	if f.toggleErr != nil {
		return nil, f.toggleErr
	}
	f.toggled = append(f.toggled, habitID)
	return &dto.ToggleHabitResponse{HabitID: habitID, Completed: true, Streak: 3}, nil
}

func (f *fakeHabitSrv) Delete(_ context.Context, _ string, habitID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, habitID)
	return nil
}

func newHabitRouter(srv *fakeHabitSrv) http.Handler {
	h := NewHabitHandler(srv)
	r := newTestRouter()
	r.GET("/habits", h.Page)
	r.POST("/habits", h.Create)
	r.POST("/toggle/:habit_id", h.Toggle)
	r.DELETE("/api/delete_habit/:habit_id", h.Delete)
	return r
}

func TestHabitHandlerPage(t *testing.T) {
	srv := &fakeHabitSrv{page: &dto.HabitsPageResponse{
		Today:          models.NewDate(2024, 3, 1),
		Habits:         []dto.HabitItem{{ID: "h-1", Name: "Morning Jog", Type: "Daily", Completed: true, Streak: 2}},
		CompletionRate: 100,
		ChartLabels:    []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"},
		ChartData:      []int{0, 0, 0, 0, 0, 100, 100},
	}}

	rec, envelope := doRequest(t, newHabitRouter(srv), http.MethodGet, "/habits", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, envelope.Data["habits_data"], 1)
	assert.Len(t, envelope.Data["chart_labels"], 7)
}

func TestHabitHandlerCreateJSON(t *testing.T) {
	srv := &fakeHabitSrv{}

	rec, envelope := doRequest(t, newHabitRouter(srv), http.MethodPost, "/habits", map[string]string{"name": "Stretch", "type": "today"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, srv.created, 1)
	assert.Equal(t, "Stretch", srv.created[0].Name)
	assert.Equal(t, "today", srv.created[0].Type)
	assert.Equal(t, "h-new", envelope.Data["id"])
}

func TestHabitHandlerCreateForm(t *testing.T) {
	srv := &fakeHabitSrv{}
	form := url.Values{"name": {"Read 30 mins"}}
	req := httptest.NewRequest(http.MethodPost, "/habits", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	newHabitRouter(srv).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, srv.created, 1)
	assert.Equal(t, "Read 30 mins", srv.created[0].Name)
	assert.Empty(t, srv.created[0].Type)
}

func TestHabitHandlerToggle(t *testing.T) {
	srv := &fakeHabitSrv{}

	rec, envelope := doRequest(t, newHabitRouter(srv), http.MethodPost, "/toggle/h-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"h-1"}, srv.toggled)
	assert.Equal(t, true, envelope.Data["completed"])
	assert.Equal(t, float64(3), envelope.Data["streak"])
}

func TestHabitHandlerToggleNotFound(t *testing.T) {
	srv := &fakeHabitSrv{toggleErr: appErrors.NotFound("habit")}

	rec, envelope := doRequest(t, newHabitRouter(srv), http.MethodPost, "/toggle/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "habit not found", envelope.Error.Message)
}

func TestHabitHandlerDelete(t *testing.T) {
	srv := &fakeHabitSrv{}

	rec, envelope := doRequest(t, newHabitRouter(srv), http.MethodDelete, "/api/delete_habit/h-9", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"h-9"}, srv.deleted)
	assert.Equal(t, "h-9", envelope.Data["id"])
}

func TestHabitHandlerDeleteNotFound(t *testing.T) {
	srv := &fakeHabitSrv{deleteErr: appErrors.NotFound("habit")}

	rec, _ := doRequest(t, newHabitRouter(srv), http.MethodDelete, "/api/delete_habit/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, srv.deleted)
}
