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

type subjectRepository interface {
	ListWithStatus(ctx context.Context, userID string, day models.Date) ([]models.SubjectWithStatus, error)
	FindByID(ctx context.Context, userID, id string) (*models.Subject, error)
	ExistsByName(ctx context.Context, userID, name string) (bool, error)
	Create(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, userID, id string) error
}

type attendanceRepository interface {
	Upsert(ctx context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error)
	Counts(ctx context.Context, userID string) (models.AttendanceCounts, error)
	CountsBySubject(ctx context.Context, userID string) ([]models.AttendanceCounts, error)
	CountsForSubject(ctx context.Context, subjectID string) (models.AttendanceCounts, error)
}

// MarkAttendanceRequest records a status for a subject. Date is YYYY-MM-DD and defaults to today.
type MarkAttendanceRequest struct {
	SubjectID string `json:"subject_id" form:"subject_id" validate:"required"`
	Status    string `json:"status" form:"status" validate:"required,attendance_status"`
	Date      string `json:"date" form:"date"`
}

// CreateSubjectRequest captures fields for creating subjects.
type CreateSubjectRequest struct {
	Name string `json:"name" form:"name" validate:"required,max=100"`
}

// AttendanceServiceParams groups constructor dependencies.
type AttendanceServiceParams struct {
	Subjects   subjectRepository
	Attendance attendanceRepository
	Cache      *CacheService
	Metrics    *MetricsService
	Validator  *validator.Validate
	Logger     *zap.Logger
	Location   *time.Location
}

// AttendanceService handles subjects, attendance marks and attendance statistics.
type AttendanceService struct {
	subjects   subjectRepository
	attendance attendanceRepository
	cache      *CacheService
	metrics    *MetricsService
	validator  *validator.Validate
	logger     *zap.Logger
	loc        *time.Location
	now        func() time.Time
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(params AttendanceServiceParams) *AttendanceService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	loc := params.Location
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceService{
		subjects:   params.Subjects,
		attendance: params.Attendance,
		cache:      params.Cache,
		metrics:    params.Metrics,
		validator:  registerValidators(params.Validator),
		logger:     logger,
		loc:        loc,
		now:        time.Now,
	}
}

func (s *AttendanceService) today() models.Date {
	return models.Today(s.now(), s.loc)
}

// Page lists the user's subjects with the status marked today.
func (s *AttendanceService) Page(ctx context.Context, userID string) (*dto.AttendancePageResponse, error) {
	today := s.today()
	subjects, err := s.subjects.ListWithStatus(ctx, userID, today)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list subjects")
	}

	rows := make([]dto.SubjectTodayRow, 0, len(subjects))
	for _, subject := range subjects {
		rows = append(rows, dto.SubjectTodayRow{ID: subject.ID, Name: subject.Name, TodayStatus: subject.TodayStatus})
	}
	return &dto.AttendancePageResponse{Today: today, Subjects: rows}, nil
}

// Mark upserts the status for the subject on the requested day.
func (s *AttendanceService) Mark(ctx context.Context, userID string, req MarkAttendanceRequest) (*dto.MarkAttendanceResponse, error) {
	req.SubjectID = strings.TrimSpace(req.SubjectID)
	req.Status = strings.TrimSpace(req.Status)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid attendance payload")
	}

	day := s.today()
	if strings.TrimSpace(req.Date) != "" {
		parsed, err := models.ParseDate(req.Date)
		if err != nil {
			return nil, appErrors.Validation(err, "date must be YYYY-MM-DD")
		}
		day = parsed
	}

	if _, err := s.subjects.FindByID(ctx, userID, req.SubjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFound("subject")
		}
		return nil, appErrors.Internal(err, "failed to load subject")
	}

	record, err := s.attendance.Upsert(ctx, &models.AttendanceRecord{
		SubjectID: req.SubjectID,
		Date:      day,
		Status:    models.AttendanceStatus(req.Status),
	})
	if err != nil {
		return nil, appErrors.Internal(err, "failed to mark attendance")
	}
	s.metrics.RecordAttendanceMark(record.Status)
	s.cache.InvalidateUser(ctx, userID)

	return &dto.MarkAttendanceResponse{SubjectID: record.SubjectID, Status: record.Status, Date: record.Date}, nil
}

// CreateSubject stores a new subject with a name unique for the user.
func (s *AttendanceService) CreateSubject(ctx context.Context, userID string, req CreateSubjectRequest) (*models.Subject, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid subject payload")
	}

	exists, err := s.subjects.ExistsByName(ctx, userID, req.Name)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to validate subject name")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "subject already exists")
	}

	subject := &models.Subject{UserID: userID, Name: req.Name}
	if err := s.subjects.Create(ctx, subject); err != nil {
		return nil, appErrors.Internal(err, "failed to create subject")
	}
	s.cache.InvalidateUser(ctx, userID)
	return subject, nil
}

// DeleteSubject removes the subject and its attendance records.
func (s *AttendanceService) DeleteSubject(ctx context.Context, userID, subjectID string) error {
	if err := s.subjects.Delete(ctx, userID, subjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFound("subject")
		}
		return appErrors.Internal(err, "failed to delete subject")
	}
	s.cache.InvalidateUser(ctx, userID)
	s.logger.Info("subject deleted", zap.String("subject_id", subjectID))
	return nil
}

// Stats returns overall and per-subject attendance. The boolean reports a cache hit.
func (s *AttendanceService) Stats(ctx context.Context, userID string) (*dto.AttendanceStatsResponse, bool, error) {
	key := StatsKey(userID, "attendance")
	var cached dto.AttendanceStatsResponse
	if s.cache.lookup(ctx, key, &cached) {
		return &cached, true, nil
	}

	overall, err := s.attendance.Counts(ctx, userID)
	if err != nil {
		return nil, false, appErrors.Internal(err, "failed to count attendance")
	}
	bySubject, err := s.attendance.CountsBySubject(ctx, userID)
	if err != nil {
		return nil, false, appErrors.Internal(err, "failed to count attendance by subject")
	}

	resp := &dto.AttendanceStatsResponse{
		Overall: dto.AttendanceTotals{
			Present:    overall.Present,
			Absent:     overall.Absent,
			Percentage: AttendancePercentage(overall.Present, overall.Total()),
		},
		BySubject: make([]dto.SubjectAttendanceStats, 0, len(bySubject)),
	}
	for _, row := range bySubject {
		resp.BySubject = append(resp.BySubject, dto.SubjectAttendanceStats{
			SubjectID:  row.SubjectID,
			Name:       row.Name,
			Present:    row.Present,
			Absent:     row.Absent,
			Percentage: AttendancePercentage(row.Present, row.Total()),
		})
	}
	s.cache.store(ctx, key, resp)
	return resp, false, nil
}

// SubjectStats returns the all-time attendance of one of the user's subjects.
func (s *AttendanceService) SubjectStats(ctx context.Context, userID, subjectID string) (*dto.SubjectStatsResponse, error) {
	if _, err := s.subjects.FindByID(ctx, userID, subjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFound("subject")
		}
		return nil, appErrors.Internal(err, "failed to load subject")
	}

	counts, err := s.attendance.CountsForSubject(ctx, subjectID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to count subject attendance")
	}
	return &dto.SubjectStatsResponse{
		Present:    counts.Present,
		Absent:     counts.Absent,
		Total:      counts.Total(),
		Percentage: AttendancePercentage(counts.Present, counts.Total()),
	}, nil
}
