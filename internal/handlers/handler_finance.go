package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucasaveiro/gestor_espacos_app/internal/apperrors"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	portssvc "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/services"
	"github.com/lucasaveiro/gestor_espacos_app/internal/dto"
	"github.com/lucasaveiro/gestor_espacos_app/internal/middleware"
)

// financeHandler handles HTTP requests for the on-demand financial views
type financeHandler struct {
	financeService portssvc.FinanceService
}

func newFinanceHandler(fs portssvc.FinanceService) *financeHandler {
	return &financeHandler{financeService: fs}
}

// RegisterFinanceRoutes registers routes related to financial summaries
func RegisterFinanceRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceService) {
	h := newFinanceHandler(financeService)

	finance := rg.Group("/finance")
	{
		finance.GET("/summary", h.getSummary)
		finance.GET("/ledger", h.getLedger)
		finance.GET("/entries", h.listEntries)
		finance.GET("/forecast", h.getForecast)
	}
}

// getSummary godoc
// @Summary Financial summary for a period
// @Description Aggregates booking income and manual transactions over the
// @Description given period. Computed on demand, never persisted.
// @Tags finance
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} domain.FinancialSummary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/summary [get]
func (h *financeHandler) getSummary(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	summary, err := h.financeService.Summarize(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to build financial summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build financial summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getLedger godoc
// @Summary Filtered transaction ledger
// @Description Lists transactions with their booking or service references and
// @Description a summary fold over the filtered set.
// @Tags finance
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Param type query string false "income or expense"
// @Param status query string false "paid or pending"
// @Param category query string false "Category filter"
// @Param search query string false "Substring over description, notes and category"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/ledger [get]
func (h *financeHandler) getLedger(c *gin.Context) {
	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	start, err := parseOptionalDate(params.Start, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	end, err := parseOptionalDate(params.End, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	filters := domain.LedgerFilters{
		Start:    start,
		End:      end,
		Type:     params.Type,
		Status:   params.Status,
		Category: params.Category,
		Search:   params.Search,
	}
	entries, summary, err := h.financeService.Ledger(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load ledger"})
		return
	}
	resp := dto.LedgerResponse{
		Entries: make([]dto.LedgerEntryResponse, 0, len(entries)),
		Summary: summary,
	}
	for i := range entries {
		resp.Entries = append(resp.Entries, dto.ToLedgerEntryResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// listEntries godoc
// @Summary Merged financial entries
// @Description Merges booking income rows and manual transactions into one
// @Description list, newest first.
// @Tags finance
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ListFinancialEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/entries [get]
func (h *financeHandler) listEntries(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	entries, err := h.financeService.AllEntries(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load financial entries"})
		return
	}
	resp := dto.ListFinancialEntriesResponse{Entries: make([]dto.FinancialEntryResponse, 0, len(entries))}
	for i := range entries {
		resp.Entries = append(resp.Entries, dto.ToFinancialEntryResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// getForecast godoc
// @Summary Forecast of pending transactions
// @Description Sums pending income and expense over the period. Defaults to
// @Description the current calendar month when no range is given.
// @Tags finance
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} domain.ForecastSummary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/forecast [get]
func (h *financeHandler) getForecast(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if start == nil || end == nil {
		monthStart, monthEnd := currentMonthWindow(time.Now().UTC())
		if start == nil {
			start = &monthStart
		}
		if end == nil {
			end = &monthEnd
		}
	}
	forecast, err := h.financeService.Forecast(c.Request.Context(), *start, *end)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build forecast"})
		return
	}
	c.JSON(http.StatusOK, forecast)
}

// currentMonthWindow returns the inclusive bounds of the month containing now.
func currentMonthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
