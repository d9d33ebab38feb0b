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

// spaceHandler handles HTTP requests related to spaces
type spaceHandler struct {
	spaceService portssvc.SpaceService
}

func newSpaceHandler(ss portssvc.SpaceService) *spaceHandler {
	return &spaceHandler{spaceService: ss}
}

// registerSpaceRoutes registers routes related to spaces
func registerSpaceRoutes(rg *gin.RouterGroup, spaceService portssvc.SpaceService) {
	h := newSpaceHandler(spaceService)

	spaces := rg.Group("/spaces")
	{
		spaces.POST("", h.createSpace)
		spaces.GET("", h.listSpaces)
		spaces.GET("/:space_id", h.getSpace)
		spaces.PUT("/:space_id", h.updateSpace)
		spaces.DELETE("/:space_id", h.deleteSpace)
	}
}

// createSpace godoc
// @Summary Create a space
// @Description Registers a new rentable space
// @Tags spaces
// @Accept json
// @Produce json
// @Param space body dto.CreateSpaceRequest true "Space data"
// @Success 201 {object} dto.SpaceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /spaces [post]
func (h *spaceHandler) createSpace(c *gin.Context) {
	var req dto.CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	space, err := h.spaceService.CreateSpace(c.Request.Context(), req)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to create space", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create space"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToSpaceResponse(space))
}

// listSpaces godoc
// @Summary List spaces
// @Tags spaces
// @Produce json
// @Success 200 {object} dto.ListSpacesResponse
// @Security BearerAuth
// @Router /spaces [get]
func (h *spaceHandler) listSpaces(c *gin.Context) {
	spaces, err := h.spaceService.ListSpaces(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list spaces"})
		return
	}
	resp := dto.ListSpacesResponse{Spaces: make([]dto.SpaceResponse, 0, len(spaces))}
	for i := range spaces {
		resp.Spaces = append(resp.Spaces, dto.ToSpaceResponse(&spaces[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// getSpace godoc
// @Summary Get a space by ID
// @Tags spaces
// @Produce json
// @Param space_id path int true "Space ID"
// @Success 200 {object} dto.SpaceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /spaces/{space_id} [get]
func (h *spaceHandler) getSpace(c *gin.Context) {
	spaceID, err := parseIDParam(c, "space_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	space, err := h.spaceService.GetSpaceByID(c.Request.Context(), spaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Space not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get space"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSpaceResponse(space))
}

// updateSpace godoc
// @Summary Update a space
// @Tags spaces
// @Accept json
// @Produce json
// @Param space_id path int true "Space ID"
// @Param space body dto.UpdateSpaceRequest true "Fields to update"
// @Success 200 {object} dto.SpaceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /spaces/{space_id} [put]
func (h *spaceHandler) updateSpace(c *gin.Context) {
	spaceID, err := parseIDParam(c, "space_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	var req dto.UpdateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	space, err := h.spaceService.UpdateSpace(c.Request.Context(), spaceID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Space not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update space"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSpaceResponse(space))
}

// deleteSpace godoc
// @Summary Delete a space
// @Tags spaces
// @Param space_id path int true "Space ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /spaces/{space_id} [delete]
func (h *spaceHandler) deleteSpace(c *gin.Context) {
	spaceID, err := parseIDParam(c, "space_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.spaceService.DeleteSpace(c.Request.Context(), spaceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Space not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete space"})
		return
	}
	c.Status(http.StatusNoContent)
}
