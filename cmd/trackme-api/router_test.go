package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/trackme-api/pkg/config"
	"github.com/noah-isme/trackme-api/pkg/database"
)

type envelope struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
	Meta    map[string]interface{} `json:"meta"`
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = database.NewMigrator(db, nil).Up(context.Background())
	require.NoError(t, err)

	cfg := &config.Config{
		Env:             config.EnvDevelopment,
		Timezone:        "UTC",
		DefaultUsername: "demo_user",
		Cache:           config.CacheConfig{TTL: time.Minute},
		Metrics:         config.MetricsConfig{Enabled: true},
	}
	router, err := buildRouter(context.Background(), cfg, zap.NewNop(), db, nil)
	require.NoError(t, err)
	return router
}

func call(t *testing.T, r http.Handler, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec.Code, env
}

func TestHabitLifecycleThroughRouter(t *testing.T) {
	r := newTestServer(t)

	code, created := call(t, r, http.MethodPost, "/habits", map[string]string{"name": "Morning Jog"})
	require.Equal(t, http.StatusCreated, code)
	habitID, _ := created.Data["id"].(string)
	require.NotEmpty(t, habitID)

	code, toggled := call(t, r, http.MethodPost, "/toggle/"+habitID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, toggled.Data["completed"])
	assert.Equal(t, float64(1), toggled.Data["streak"])

	code, dashboard := call(t, r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(100), dashboard.Data["completion_rate"])
	assert.Equal(t, "demo_user", dashboard.Data["username"])

	code, _ = call(t, r, http.MethodDelete, "/api/delete_habit/"+habitID, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = call(t, r, http.MethodPost, "/toggle/"+habitID, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAttendanceFlowThroughRouter(t *testing.T) {
	r := newTestServer(t)

	code, subject := call(t, r, http.MethodPost, "/api/subjects", map[string]string{"name": "DMGT"})
	require.Equal(t, http.StatusCreated, code)
	subjectID, _ := subject.Data["id"].(string)
	require.NotEmpty(t, subjectID)

	code, _ = call(t, r, http.MethodPost, "/api/subjects", map[string]string{"name": "dmgt"})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = call(t, r, http.MethodPost, "/mark-attendance", map[string]string{"subject_id": subjectID, "status": "Present", "date": "2024-03-01"})
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, r, http.MethodPost, "/mark-attendance", map[string]string{"subject_id": subjectID, "status": "Absent", "date": "2024-03-02"})
	require.Equal(t, http.StatusOK, code)

	code, stats := call(t, r, http.MethodGet, "/api/subject_stats/"+subjectID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), stats.Data["total"])
	assert.Equal(t, float64(50), stats.Data["percentage"])

	code, _ = call(t, r, http.MethodPost, "/mark-attendance", map[string]string{"subject_id": subjectID, "status": "Late"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestChartAndSystemRoutes(t *testing.T) {
	r := newTestServer(t)

	code, chart := call(t, r, http.MethodGet, "/api/chart-data/week", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, chart.Data["labels"], 7)

	code, _ = call(t, r, http.MethodGet, "/api/chart-data/decade", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, r, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
