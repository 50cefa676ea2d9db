package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/trackme-api/internal/dto"
	"github.com/noah-isme/trackme-api/internal/models"
	appErrors "github.com/noah-isme/trackme-api/pkg/errors"
)

// Chart periods.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Chart types.
const (
	ChartTypeBar  = "bar"
	ChartTypeLine = "line"
	ChartTypePie  = "pie"
)

type chartRepository interface {
	CompletedByDay(ctx context.Context, userID string, from, to models.Date) ([]models.DayCount, error)
	CompletedByHabit(ctx context.Context, userID string, from, to models.Date) ([]models.LabelValue, error)
}

// ChartQuery is the raw chart request. Month and Year fall back to the
// current month and year when empty or invalid.
type ChartQuery struct {
	Period    string
	ChartType string `form:"chartType"`
	Month     string `form:"month"`
	Year      string `form:"year"`
}

// chartWindow is the resolved date range and labelling of a chart request.
type chartWindow struct {
	period    string
	chartType string
	from      models.Date
	to        models.Date
}

// ChartService builds time-bucketed completion series.
type ChartService struct {
	repo   chartRepository
	cache  *CacheService
	logger *zap.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewChartService constructs a ChartService.
func NewChartService(repo chartRepository, cache *CacheService, loc *time.Location, logger *zap.Logger) *ChartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &ChartService{repo: repo, cache: cache, logger: logger, loc: loc, now: time.Now}
}

// Build returns labels, values and, for pie charts, a per-habit breakdown.
// The boolean reports a cache hit.
func (s *ChartService) Build(ctx context.Context, userID string, query ChartQuery) (*dto.ChartResponse, bool, error) {
	window, err := s.resolve(query)
	if err != nil {
		return nil, false, err
	}

	key := StatsKey(userID, "chart", window.period, window.chartType, window.from.String(), window.to.String())
	var cached dto.ChartResponse
	if s.cache.lookup(ctx, key, &cached) {
		return &cached, true, nil
	}

	rows, err := s.repo.CompletedByDay(ctx, userID, window.from, window.to)
	if err != nil {
		return nil, false, appErrors.Internal(err, "failed to load chart data")
	}
	labels, data := bucket(window, countsByDay(rows))

	pie := make([]models.LabelValue, 0)
	if window.chartType == ChartTypePie {
		slices, err := s.repo.CompletedByHabit(ctx, userID, window.from, window.to)
		if err != nil {
			return nil, false, appErrors.Internal(err, "failed to load habit breakdown")
		}
		pie = append(pie, slices...)
	}

	resp := &dto.ChartResponse{Labels: labels, Data: data, PieData: pie}
	s.cache.store(ctx, key, resp)
	return resp, false, nil
}

func (s *ChartService) resolve(query ChartQuery) (chartWindow, error) {
	today := models.Today(s.now(), s.loc)
	window := chartWindow{
		period:    strings.ToLower(strings.TrimSpace(query.Period)),
		chartType: normaliseChartType(query.ChartType),
	}

	switch window.period {
	case PeriodWeek:
		window.from, window.to = today.AddDays(-6), today
	case PeriodMonth:
		year := parseYear(query.Year, today.Year())
		month := parseMonth(query.Month, today.Month())
		window.from = models.NewDate(year, month, 1)
		window.to = models.NewDate(year, month, models.DaysIn(year, month))
	case PeriodYear:
		year := parseYear(query.Year, today.Year())
		window.from = models.NewDate(year, time.January, 1)
		window.to = models.NewDate(year, time.December, 31)
	default:
		return chartWindow{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown period %q", query.Period))
	}
	return window, nil
}

// bucket turns per-day counts into the labels and values for window.
func bucket(window chartWindow, counts map[models.Date]int) ([]string, []int) {
	switch window.period {
	case PeriodYear:
		labels := make([]string, 12)
		data := make([]int, 12)
		for day, total := range counts {
			if day.Year() == window.from.Year() {
				data[day.Month()-1] += total
			}
		}
		for m := time.January; m <= time.December; m++ {
			labels[m-1] = m.String()[:3]
		}
		return labels, data
	default:
		var labels []string
		var data []int
		for day := window.from; !day.After(window.to); day = day.AddDays(1) {
			if window.period == PeriodWeek {
				labels = append(labels, fmt.Sprintf("%s %d", shortWeekday(day), day.Day()))
			} else {
				labels = append(labels, strconv.Itoa(day.Day()))
			}
			data = append(data, counts[day])
		}
		return labels, data
	}
}

func normaliseChartType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ChartTypeLine:
		return ChartTypeLine
	case ChartTypePie:
		return ChartTypePie
	default:
		return ChartTypeBar
	}
}

func parseMonth(raw string, fallback time.Month) time.Month {
	m, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || m < 1 || m > 12 {
		return fallback
	}
	return time.Month(m)
}

func parseYear(raw string, fallback int) int {
	y, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || y < 1 || y > 9999 {
		return fallback
	}
	return y
}
