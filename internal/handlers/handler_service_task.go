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

// serviceTaskHandler handles HTTP requests for the service catalogue and tasks
type serviceTaskHandler struct {
	serviceTaskService portssvc.ServiceTaskService
}

func newServiceTaskHandler(sts portssvc.ServiceTaskService) *serviceTaskHandler {
	return &serviceTaskHandler{serviceTaskService: sts}
}

// registerServiceTaskRoutes registers routes related to service types and tasks
func registerServiceTaskRoutes(rg *gin.RouterGroup, serviceTaskService portssvc.ServiceTaskService) {
	h := newServiceTaskHandler(serviceTaskService)

	services := rg.Group("/services")
	{
		services.GET("/types", h.listServiceTypes)
		services.POST("/tasks", h.createServiceTask)
		services.GET("/tasks", h.listServiceTasks)
		services.PATCH("/tasks/:task_id/status", h.updateServiceTaskStatus)
		services.DELETE("/tasks/:task_id", h.deleteServiceTask)
	}
}

// listServiceTypes godoc
// @Summary List service types
// @Tags services
// @Produce json
// @Success 200 {array} dto.ServiceTypeResponse
// @Security BearerAuth
// @Router /services/types [get]
func (h *serviceTaskHandler) listServiceTypes(c *gin.Context) {
	types, err := h.serviceTaskService.ListServiceTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list service types"})
		return
	}
	resp := make([]dto.ServiceTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, dto.ToServiceTypeResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

// createServiceTask godoc
// @Summary Schedule a service task
// @Tags services
// @Accept json
// @Produce json
// @Param task body dto.CreateServiceTaskRequest true "Task data"
// @Success 201 {object} dto.ServiceTaskResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/tasks [post]
func (h *serviceTaskHandler) createServiceTask(c *gin.Context) {
	var req dto.CreateServiceTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	task, err := h.serviceTaskService.CreateServiceTask(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to create service task", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create service task"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceTaskResponse(task))
}

// listServiceTasks godoc
// @Summary List service tasks
// @Tags services
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ListServiceTasksResponse
// @Security BearerAuth
// @Router /services/tasks [get]
func (h *serviceTaskHandler) listServiceTasks(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	tasks, err := h.serviceTaskService.ListServiceTasks(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list service tasks"})
		return
	}
	resp := dto.ListServiceTasksResponse{Tasks: make([]dto.ServiceTaskResponse, 0, len(tasks))}
	for i := range tasks {
		resp.Tasks = append(resp.Tasks, dto.ToServiceTaskResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// updateServiceTaskStatus godoc
// @Summary Update a service task status
// @Tags services
// @Accept json
// @Produce json
// @Param task_id path int true "Task ID"
// @Param status body dto.UpdateServiceTaskStatusRequest true "New status"
// @Success 200 {object} dto.ServiceTaskResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/tasks/{task_id}/status [patch]
func (h *serviceTaskHandler) updateServiceTaskStatus(c *gin.Context) {
	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	var req dto.UpdateServiceTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	task, err := h.serviceTaskService.UpdateServiceTaskStatus(c.Request.Context(), taskID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Service task not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update service task status"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceTaskResponse(task))
}

// deleteServiceTask godoc
// @Summary Delete a service task
// @Tags services
// @Param task_id path int true "Task ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/tasks/{task_id} [delete]
func (h *serviceTaskHandler) deleteServiceTask(c *gin.Context) {
	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.serviceTaskService.DeleteServiceTask(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Service task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete service task"})
		return
	}
	c.Status(http.StatusNoContent)
}
