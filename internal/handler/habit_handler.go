package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/trackme-api/internal/dto"
	"github.com/noah-isme/trackme-api/internal/models"
	"github.com/noah-isme/trackme-api/internal/service"
	appErrors "github.com/noah-isme/trackme-api/pkg/errors"
	"github.com/noah-isme/trackme-api/pkg/response"
)

type habitService interface {
	Page(ctx context.Context, userID string) (*dto.HabitsPageResponse, error)
	Create(ctx context.Context, userID string, req service.CreateHabitRequest) (*models.Habit, error)
	Toggle(ctx context.Context, userID, habitID string) (*dto.ToggleHabitResponse, error)
	Delete(ctx context.Context, userID, habitID string) error
}

// HabitHandler serves habit endpoints.
type HabitHandler struct {
	service habitService
}

// NewHabitHandler constructs a habit handler.
func NewHabitHandler(svc habitService) *HabitHandler {
	return &HabitHandler{service: svc}
}

// Page godoc
// @Summary Habits page
// @Description Today's habits with streaks and the 7-day consistency series.
// @Tags Habits
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.HabitsPageResponse}
// @Router /habits [get]
func (h *HabitHandler) Page(c *gin.Context) {
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

// Create godoc
// @Summary Create habit
// @Tags Habits
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param payload body service.CreateHabitRequest true "Habit payload"
// @Success 201 {object} response.Envelope{data=models.Habit}
// @Failure 400 {object} response.Envelope
// @Router /habits [post]
func (h *HabitHandler) Create(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var req service.CreateHabitRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Validation(err, "invalid payload"))
		return
	}
	habit, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, habit)
}

// Toggle godoc
// @Summary Toggle today's completion
// @Description Creates today's log as completed, or flips an existing one.
// @Tags Habits
// @Produce json
// @Param habit_id path string true "Habit ID"
// @Success 200 {object} response.Envelope{data=dto.ToggleHabitResponse}
// @Failure 404 {object} response.Envelope
// @Router /toggle/{habit_id} [post]
func (h *HabitHandler) Toggle(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	result, err := h.service.Toggle(c.Request.Context(), userID, c.Param("habit_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Delete godoc
// @Summary Delete habit
// @Description Removes the habit and all of its logs.
// @Tags Habits
// @Produce json
// @Param habit_id path string true "Habit ID"
// @Success 200 {object} response.Envelope{data=dto.DeleteResponse}
// @Failure 404 {object} response.Envelope
// @Router /api/delete_habit/{habit_id} [delete]
func (h *HabitHandler) Delete(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	habitID := c.Param("habit_id")
	if err := h.service.Delete(c.Request.Context(), userID, habitID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.DeleteResponse{ID: habitID})
}
