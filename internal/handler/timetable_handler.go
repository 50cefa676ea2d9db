package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TimetableHandler serves the static timetable page.
type TimetableHandler struct {
	page []byte
}

// NewTimetableHandler constructs the handler over the rendered page.
func NewTimetableHandler(page []byte) *TimetableHandler {
	return &TimetableHandler{page: page}
}

// Page godoc
// @Summary Weekly timetable
// @Tags Pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /timetable [get]
func (h *TimetableHandler) Page(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.page)
}
