package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/services"
	"github.com/lucasaveiro/gestor_espacos_app/internal/middleware"
)

// calendarHandler handles HTTP requests for the merged agenda views
type calendarHandler struct {
	calendarService portssvc.CalendarService
}

func newCalendarHandler(cs portssvc.CalendarService) *calendarHandler {
	return &calendarHandler{calendarService: cs}
}

// registerCalendarRoutes registers routes related to the agenda
func registerCalendarRoutes(rg *gin.RouterGroup, calendarService portssvc.CalendarService) {
	h := newCalendarHandler(calendarService)

	calendar := rg.Group("/calendar")
	{
		calendar.GET("/agenda", h.getAgenda)
		calendar.GET("/feed.ics", h.getICSFeed)
	}
}

// getAgenda godoc
// @Summary Merged agenda of events and service tasks
// @Tags calendar
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} domain.AgendaEntry
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /calendar/agenda [get]
func (h *calendarHandler) getAgenda(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	entries, err := h.calendarService.Agenda(c.Request.Context(), start, end)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to build agenda", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build agenda"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// getICSFeed godoc
// @Summary iCalendar feed of confirmed and pending events
// @Produce plain
// @Tags calendar
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {string} string "text/calendar document"
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /calendar/feed.ics [get]
func (h *calendarHandler) getICSFeed(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	feed, err := h.calendarService.ICSFeed(c.Request.Context(), start, end)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to render calendar feed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render calendar feed"})
		return
	}
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", feed)
}
