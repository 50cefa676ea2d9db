package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/trackme-api/internal/dto"
	"github.com/noah-isme/trackme-api/internal/models"
	appErrors "github.com/noah-isme/trackme-api/pkg/errors"
)

type activeHabitLister interface {
	ListActiveWithStatus(ctx context.Context, userID string, day models.Date) ([]models.HabitStatus, error)
}

type attendanceTotaler interface {
	Counts(ctx context.Context, userID string) (models.AttendanceCounts, error)
}

type userFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Habits     activeHabitLister
	Attendance attendanceTotaler
	Users      userFinder
	Cache      *CacheService
	Logger     *zap.Logger
	Location   *time.Location
}

// DashboardService composes the home page summary.
type DashboardService struct {
	habits     activeHabitLister
	attendance attendanceTotaler
	users      userFinder
	cache      *CacheService
	logger     *zap.Logger
	loc        *time.Location
	now        func() time.Time
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	loc := params.Location
	if loc == nil {
		loc = time.Local
	}
	return &DashboardService{
		habits:     params.Habits,
		attendance: params.Attendance,
		users:      params.Users,
		cache:      params.Cache,
		logger:     logger,
		loc:        loc,
		now:        time.Now,
	}
}

// Summary returns today's completion, pending habits and overall attendance.
// The boolean reports whether the payload came from cache.
func (s *DashboardService) Summary(ctx context.Context, userID string) (*dto.DashboardResponse, bool, error) {
	today := models.Today(s.now(), s.loc)
	key := StatsKey(userID, "dashboard", today.String())

	var cached dto.DashboardResponse
	if s.cache.lookup(ctx, key, &cached) {
		return &cached, true, nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, false, appErrors.Internal(err, "failed to load user")
	}
	habits, err := s.habits.ListActiveWithStatus(ctx, userID, today)
	if err != nil {
		return nil, false, appErrors.Internal(err, "failed to load habits")
	}
	counts, err := s.attendance.Counts(ctx, userID)
	if err != nil {
		return nil, false, appErrors.Internal(err, "failed to load attendance")
	}

	pending := make([]dto.PendingHabit, 0)
	completed := 0
	for _, h := range habits {
		if h.Completed {
			completed++
			continue
		}
		pending = append(pending, dto.PendingHabit{ID: h.ID, Name: h.Name, Type: h.Label()})
	}

	summary := &dto.DashboardResponse{
		Today:                today,
		TodayLabel:           longDateLabel(today),
		Username:             user.Username,
		CompletionRate:       CompletionRate(completed, len(habits)),
		CompletedCount:       completed,
		TotalCount:           len(habits),
		PendingHabits:        pending,
		AttendancePercentage: AttendancePercentage(counts.Present, counts.Total()),
	}
	s.cache.store(ctx, key, summary)
	return summary, false, nil
}
