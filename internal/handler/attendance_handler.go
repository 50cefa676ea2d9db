package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/trackme-api/internal/dto"
	"github.com/noah-isme/trackme-api/internal/middleware"
	"github.com/noah-isme/trackme-api/internal/models"
	"github.com/noah-isme/trackme-api/internal/service"
	appErrors "github.com/noah-isme/trackme-api/pkg/errors"
	"github.com/noah-isme/trackme-api/pkg/response"
)

type attendanceService interface {
	Page(ctx context.Context, userID string) (*dto.AttendancePageResponse, error)
	Mark(ctx context.Context, userID string, req service.MarkAttendanceRequest) (*dto.MarkAttendanceResponse, error)
	CreateSubject(ctx context.Context, userID string, req service.CreateSubjectRequest) (*models.Subject, error)
	DeleteSubject(ctx context.Context, userID, subjectID string) error
	Stats(ctx context.Context, userID string) (*dto.AttendanceStatsResponse, bool, error)
	SubjectStats(ctx context.Context, userID, subjectID string) (*dto.SubjectStatsResponse, error)
}

// AttendanceHandler serves subject and attendance endpoints.
type AttendanceHandler struct {
	service attendanceService
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(svc attendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: svc}
}

// Page godoc
// @Summary Subjects with today's status
// @Tags Attendance
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.AttendancePageResponse}
// @Router /attendance [get]
func (h *AttendanceHandler) Page(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	page, err := h.service.Page(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, page)
}

// Mark godoc
// @Summary Mark attendance
// @Description Records Present or Absent for a subject. Marking the same day again overwrites it.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body service.MarkAttendanceRequest true "Attendance payload"
// @Success 200 {object} response.Envelope{data=dto.MarkAttendanceResponse}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /mark-attendance [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var req service.MarkAttendanceRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Validation(err, "invalid payload"))
		return
	}
	result, err := h.service.Mark(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// CreateSubject godoc
// @Summary Create subject
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body service.CreateSubjectRequest true "Subject payload"
// @Success 201 {object} response.Envelope{data=models.Subject}
// @Failure 409 {object} response.Envelope
// @Router /api/subjects [post]
func (h *AttendanceHandler) CreateSubject(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var req service.CreateSubjectRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Validation(err, "invalid payload"))
		return
	}
	subject, err := h.service.CreateSubject(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, subject)
}

// DeleteSubject godoc
// @Summary Delete subject
// @Description Removes the subject and all of its attendance records.
// @Tags Attendance
// @Produce json
// @Param subject_id path string true "Subject ID"
// @Success 200 {object} response.Envelope{data=dto.DeleteResponse}
// @Failure 404 {object} response.Envelope
// @Router /api/subjects/{subject_id} [delete]
func (h *AttendanceHandler) DeleteSubject(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	subjectID := c.Param("subject_id")
	if err := h.service.DeleteSubject(c.Request.Context(), userID, subjectID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.DeleteResponse{ID: subjectID})
}

// Stats godoc
// @Summary Attendance statistics
// @Tags Attendance
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.AttendanceStatsResponse}
// @Router /api/attendance-stats [get]
func (h *AttendanceHandler) Stats(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	start := time.Now()
	stats, cacheHit, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.OK(c, stats, middleware.ResponseMeta(c, start))
}

// SubjectStats godoc
// @Summary All-time statistics for one subject
// @Tags Attendance
// @Produce json
// @Param subject_id path string true "Subject ID"
// @Success 200 {object} response.Envelope{data=dto.SubjectStatsResponse}
// @Failure 404 {object} response.Envelope
// @Router /api/subject_stats/{subject_id} [get]
func (h *AttendanceHandler) SubjectStats(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	stats, err := h.service.SubjectStats(c.Request.Context(), userID, c.Param("subject_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}
