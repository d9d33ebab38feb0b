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

// contractHandler handles HTTP requests for rental contract generation
type contractHandler struct {
	contractService portssvc.ContractService
}

func newContractHandler(cs portssvc.ContractService) *contractHandler {
	return &contractHandler{contractService: cs}
}

// registerContractRoutes registers routes related to contract generation
func registerContractRoutes(rg *gin.RouterGroup, contractService portssvc.ContractService) {
	h := newContractHandler(contractService)

	contracts := rg.Group("/contracts")
	{
		contracts.GET("/spaces", h.listSpaceProfiles)
		contracts.POST("/:space/generate", h.generateContract)
	}
}

// listSpaceProfiles godoc
// @Summary List contract space profiles
// @Tags contracts
// @Produce json
// @Success 200 {array} dto.SpaceProfileResponse
// @Security BearerAuth
// @Router /contracts/spaces [get]
func (h *contractHandler) listSpaceProfiles(c *gin.Context) {
	profiles := h.contractService.ListSpaceProfiles(c.Request.Context())
	resp := make([]dto.SpaceProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		resp = append(resp, dto.ToSpaceProfileResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// generateContract godoc
// @Summary Generate a rental contract
// @Description Fills the clause templates of the given space with the event
// @Description and client data. Missing fields keep their bracketed
// @Description placeholders so the draft stays editable.
// @Tags contracts
// @Accept json
// @Produce json
// @Param space path string true "Space slug"
// @Param data body dto.GenerateContractRequest true "Contract data"
// @Success 200 {object} dto.GeneratedContractResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /contracts/{space}/generate [post]
func (h *contractHandler) generateContract(c *gin.Context) {
	var req dto.GenerateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	contract, err := h.contractService.GenerateContract(c.Request.Context(), c.Param("space"), req.ToContractData())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Space not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to generate contract", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate contract"})
		return
	}
	c.JSON(http.StatusOK, dto.ToGeneratedContractResponse(contract))
}
