package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/trackme-api/internal/dto"
	"github.com/noah-isme/trackme-api/internal/models"
	appErrors "github.com/noah-isme/trackme-api/pkg/errors"
)

const consistencyWindow = 7

type habitRepository interface {
	Create(ctx context.Context, habit *models.Habit) error
	FindByID(ctx context.Context, userID, id string) (*models.Habit, error)
	ListByUser(ctx context.Context, userID string) ([]models.Habit, error)
	ListActiveWithStatus(ctx context.Context, userID string, day models.Date) ([]models.HabitStatus, error)
	Toggle(ctx context.Context, habitID string, day models.Date) (*models.DailyLog, error)
	Delete(ctx context.Context, userID, id string) error
	CompletedDates(ctx context.Context, habitID string, upTo models.Date) ([]models.Date, error)
	CompletedDatesByHabit(ctx context.Context, userID string, upTo models.Date) (map[string][]models.Date, error)
}

type dailyCounter interface {
	CompletedByDay(ctx context.Context, userID string, from, to models.Date) ([]models.DayCount, error)
}

// CreateHabitRequest is the payload for creating a habit. Type defaults to recurring.
type CreateHabitRequest struct {
	Name string `json:"name" form:"name" validate:"required,max=200"`
	Type string `json:"type" form:"type" validate:"omitempty,habit_type"`
}

// HabitServiceParams groups constructor dependencies.
type HabitServiceParams struct {
	Habits    habitRepository
	Stats     dailyCounter
	Cache     *CacheService
	Metrics   *MetricsService
	Validator *validator.Validate
	Logger    *zap.Logger
	Location  *time.Location
}

// HabitService manages habits and their daily logs.
type HabitService struct {
	habits    habitRepository
	stats     dailyCounter
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	loc       *time.Location
	now       func() time.Time
}

// NewHabitService constructs a HabitService.
func NewHabitService(params HabitServiceParams) *HabitService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	loc := params.Location
	if loc == nil {
		loc = time.Local
	}
	return &HabitService{
		habits:    params.Habits,
		stats:     params.Stats,
		cache:     params.Cache,
		metrics:   params.Metrics,
		validator: registerValidators(params.Validator),
		logger:    logger,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *HabitService) today() models.Date {
	return models.Today(s.now(), s.loc)
}

// Create validates and stores a new habit. A "today" habit targets the current day.
func (s *HabitService) Create(ctx context.Context, userID string, req CreateHabitRequest) (*models.Habit, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid habit payload")
	}

	habit := &models.Habit{UserID: userID, Name: req.Name, IsRecurring: true}
	if models.HabitType(req.Type) == models.HabitTypeToday {
		today := s.today()
		habit.IsRecurring = false
		habit.TargetDate = &today
	}

	if err := s.habits.Create(ctx, habit); err != nil {
		return nil, appErrors.Internal(err, "failed to create habit")
	}
	s.cache.InvalidateUser(ctx, userID)
	s.logger.Info("habit created", zap.String("habit_id", habit.ID), zap.Bool("recurring", habit.IsRecurring))
	return habit, nil
}

// Page returns today's active habits with streaks, the completion rate and
// the 7-day consistency series.
func (s *HabitService) Page(ctx context.Context, userID string) (*dto.HabitsPageResponse, error) {
	today := s.today()

	active, err := s.habits.ListActiveWithStatus(ctx, userID, today)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load habits")
	}
	completedDates, err := s.habits.CompletedDatesByHabit(ctx, userID, today)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load habit logs")
	}

	items := make([]dto.HabitItem, 0, len(active))
	completed := 0
	for _, h := range active {
		if h.Completed {
			completed++
		}
		streak := 0
		if h.IsRecurring {
			streak = CountStreak(completedDates[h.ID], today)
		}
		items = append(items, dto.HabitItem{
			ID:        h.ID,
			Name:      h.Name,
			Type:      h.Label(),
			Completed: h.Completed,
			Streak:    streak,
		})
	}

	labels, series, err := s.consistency(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	return &dto.HabitsPageResponse{
		Today:          today,
		TodayLabel:     longDateLabel(today),
		Habits:         items,
		CompletionRate: CompletionRate(completed, len(active)),
		ChartLabels:    labels,
		ChartData:      series,
	}, nil
}

func (s *HabitService) consistency(ctx context.Context, userID string, today models.Date) ([]string, []int, error) {
	days := lastDays(today, consistencyWindow)

	habits, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, appErrors.Internal(err, "failed to load habits")
	}
	rows, err := s.stats.CompletedByDay(ctx, userID, days[0], today)
	if err != nil {
		return nil, nil, appErrors.Internal(err, "failed to load completion history")
	}

	labels := make([]string, len(days))
	for i, day := range days {
		labels[i] = shortWeekday(day)
	}
	return labels, consistencySeries(habits, countsByDay(rows), days, s.loc), nil
}

// Toggle flips today's log for the habit, creating it as completed on first use.
func (s *HabitService) Toggle(ctx context.Context, userID, habitID string) (*dto.ToggleHabitResponse, error) {
	habit, err := s.habits.FindByID(ctx, userID, habitID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFound("habit")
		}
		return nil, appErrors.Internal(err, "failed to load habit")
	}

	today := s.today()
	log, err := s.habits.Toggle(ctx, habit.ID, today)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to toggle habit")
	}
	s.metrics.RecordHabitToggle(log.Completed)
	s.cache.InvalidateUser(ctx, userID)

	resp := &dto.ToggleHabitResponse{HabitID: habit.ID, Completed: log.Completed}
	if habit.IsRecurring {
		dates, err := s.habits.CompletedDates(ctx, habit.ID, today)
		if err != nil {
			s.logger.Warn("streak lookup failed", zap.String("habit_id", habit.ID), zap.Error(err))
		} else {
			resp.Streak = CountStreak(dates, today)
		}
	}
	return resp, nil
}

// Delete removes the habit and its logs.
func (s *HabitService) Delete(ctx context.Context, userID, habitID string) error {
	if err := s.habits.Delete(ctx, userID, habitID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFound("habit")
		}
		return appErrors.Internal(err, "failed to delete habit")
	}
	s.cache.InvalidateUser(ctx, userID)
	s.logger.Info("habit deleted", zap.String("habit_id", habitID))
	return nil
}
