package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasaveiro/gestor_espacos_app/internal/apperrors"
	portssvc "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/services"
	"github.com/lucasaveiro/gestor_espacos_app/internal/dto"
	"github.com/lucasaveiro/gestor_espacos_app/internal/middleware"
)

// eventHandler handles HTTP requests related to events (bookings)
type eventHandler struct {
	eventService portssvc.EventService
}

func newEventHandler(es portssvc.EventService) *eventHandler {
	return &eventHandler{eventService: es}
}

// registerEventRoutes registers routes related to events
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventService) {
	h := newEventHandler(eventService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:event_id", h.getEvent)
		events.PUT("/:event_id", h.updateEvent)
		events.DELETE("/:event_id", h.deleteEvent)
		events.POST("/:event_id/reconcile", h.reconcileEvent)
	}
}

// createEvent godoc
// @Summary Create an event
// @Description Creates a booking, visit or proposal. The payment status of a
// @Description booking is derived from its deposit and linked payments.
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event data"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	event, err := h.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to create event", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// listEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ListEventsResponse
// @Security BearerAuth
// @Router /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	events, err := h.eventService.ListEvents(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list events"})
		return
	}
	resp := dto.ListEventsResponse{Events: make([]dto.EventResponse, 0, len(events))}
	for i := range events {
		resp.Events = append(resp.Events, dto.ToEventResponse(&events[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// getEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{event_id} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	eventID, err := parseIDParam(c, "event_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	event, err := h.eventService.GetEventByID(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get event"})
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// updateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param event body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{event_id} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	eventID, err := parseIDParam(c, "event_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	event, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update event"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// deleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Param event_id path int true "Event ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{event_id} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	eventID, err := parseIDParam(c, "event_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.eventService.DeleteEvent(c.Request.Context(), eventID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete event"})
		return
	}
	c.Status(http.StatusNoContent)
}

// reconcileEvent godoc
// @Summary Recompute a booking's payment status
// @Description Forces reconciliation of the derived payment status from the
// @Description deposit and linked paid income transactions.
// @Tags events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{event_id}/reconcile [post]
func (h *eventHandler) reconcileEvent(c *gin.Context) {
	eventID, err := parseIDParam(c, "event_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.eventService.ReconcilePayment(c.Request.Context(), eventID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reconcile payment status"})
		return
	}
	event, err := h.eventService.GetEventByID(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get event"})
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}
