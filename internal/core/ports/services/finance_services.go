package services

import (
	"context"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
)

// FinanceService defines the financial reporting operations: the on-demand
// summary, the filterable ledger, the merged entries view and the forecast.
type FinanceService interface {
	// Summarize aggregates events and transactions for the range. Nil dates
	// mean all time; end before start is a validation error.
	Summarize(ctx context.Context, start, end *time.Time) (*domain.FinancialSummary, error)

	// Ledger returns the filtered manual transactions with display
	// references and the status-split summary fold.
	Ledger(ctx context.Context, filters domain.LedgerFilters) ([]domain.LedgerEntry, domain.LedgerSummary, error)

	// AllEntries returns the merged event + manual entries view sorted by
	// date descending.
	AllEntries(ctx context.Context, start, end *time.Time) ([]domain.FinancialEntry, error)

	// Forecast sums pending transactions by type inside the window.
	Forecast(ctx context.Context, start, end time.Time) (domain.ForecastSummary, error)
}
