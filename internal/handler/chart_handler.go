package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/trackme-api/internal/dto"
	"github.com/noah-isme/trackme-api/internal/middleware"
	"github.com/noah-isme/trackme-api/internal/service"
	appErrors "github.com/noah-isme/trackme-api/pkg/errors"
	"github.com/noah-isme/trackme-api/pkg/response"
)

type chartService interface {
	Build(ctx context.Context, userID string, query service.ChartQuery) (*dto.ChartResponse, bool, error)
}

// ChartHandler serves chart series.
type ChartHandler struct {
	service chartService
}

// NewChartHandler constructs a chart handler.
func NewChartHandler(svc chartService) *ChartHandler {
	return &ChartHandler{service: svc}
}

// Data godoc
// @Summary Completion chart series
// @Description Labels and values for the week, month or year; pieData is filled only for chartType=pie.
// @Tags Charts
// @Produce json
// @Param period path string true "week, month or year"
// @Param chartType query string false "bar (default), line or pie"
// @Param month query int false "Month 1-12, defaults to current"
// @Param year query int false "Year, defaults to current"
// @Success 200 {object} response.Envelope{data=dto.ChartResponse}
// @Failure 400 {object} response.Envelope
// @Router /api/chart-data/{period} [get]
func (h *ChartHandler) Data(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var query service.ChartQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Validation(err, "invalid query"))
		return
	}
	query.Period = c.Param("period")

	start := time.Now()
	chart, cacheHit, err := h.service.Build(c.Request.Context(), userID, query)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.OK(c, chart, middleware.ResponseMeta(c, start))
}
