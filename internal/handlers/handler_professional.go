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

// professionalHandler handles HTTP requests related to professionals
type professionalHandler struct {
	professionalService portssvc.ProfessionalService
}

func newProfessionalHandler(ps portssvc.ProfessionalService) *professionalHandler {
	return &professionalHandler{professionalService: ps}
}

// registerProfessionalRoutes registers routes related to professionals
func registerProfessionalRoutes(rg *gin.RouterGroup, professionalService portssvc.ProfessionalService) {
	h := newProfessionalHandler(professionalService)

	professionals := rg.Group("/professionals")
	{
		professionals.POST("", h.createProfessional)
		professionals.GET("", h.listProfessionals)
		professionals.GET("/:professional_id", h.getProfessional)
		professionals.PUT("/:professional_id", h.updateProfessional)
		professionals.DELETE("/:professional_id", h.deleteProfessional)
	}
}

// createProfessional godoc
// @Summary Create a professional
// @Tags professionals
// @Accept json
// @Produce json
// @Param professional body dto.CreateProfessionalRequest true "Professional data"
// @Success 201 {object} dto.ProfessionalResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /professionals [post]
func (h *professionalHandler) createProfessional(c *gin.Context) {
	var req dto.CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	professional, err := h.professionalService.CreateProfessional(c.Request.Context(), req)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to create professional", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create professional"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToProfessionalResponse(professional))
}

// listProfessionals godoc
// @Summary List professionals
// @Tags professionals
// @Produce json
// @Success 200 {object} dto.ListProfessionalsResponse
// @Security BearerAuth
// @Router /professionals [get]
func (h *professionalHandler) listProfessionals(c *gin.Context) {
	professionals, err := h.professionalService.ListProfessionals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list professionals"})
		return
	}
	resp := dto.ListProfessionalsResponse{Professionals: make([]dto.ProfessionalResponse, 0, len(professionals))}
	for i := range professionals {
		resp.Professionals = append(resp.Professionals, dto.ToProfessionalResponse(&professionals[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// getProfessional godoc
// @Summary Get a professional by ID
// @Tags professionals
// @Produce json
// @Param professional_id path int true "Professional ID"
// @Success 200 {object} dto.ProfessionalResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /professionals/{professional_id} [get]
func (h *professionalHandler) getProfessional(c *gin.Context) {
	professionalID, err := parseIDParam(c, "professional_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	professional, err := h.professionalService.GetProfessionalByID(c.Request.Context(), professionalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Professional not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get professional"})
		return
	}
	c.JSON(http.StatusOK, dto.ToProfessionalResponse(professional))
}

// updateProfessional godoc
// @Summary Update a professional
// @Tags professionals
// @Accept json
// @Produce json
// @Param professional_id path int true "Professional ID"
// @Param professional body dto.UpdateProfessionalRequest true "Fields to update"
// @Success 200 {object} dto.ProfessionalResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /professionals/{professional_id} [put]
func (h *professionalHandler) updateProfessional(c *gin.Context) {
	professionalID, err := parseIDParam(c, "professional_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	var req dto.UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	professional, err := h.professionalService.UpdateProfessional(c.Request.Context(), professionalID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Professional not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update professional"})
		return
	}
	c.JSON(http.StatusOK, dto.ToProfessionalResponse(professional))
}

// deleteProfessional godoc
// @Summary Delete a professional
// @Tags professionals
// @Param professional_id path int true "Professional ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /professionals/{professional_id} [delete]
func (h *professionalHandler) deleteProfessional(c *gin.Context) {
	professionalID, err := parseIDParam(c, "professional_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.professionalService.DeleteProfessional(c.Request.Context(), professionalID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Professional not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete professional"})
		return
	}
	c.Status(http.StatusNoContent)
}
