package repositories

import (
	"context"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FinanceRepository defines the read-only queries backing the financial
// summary, ledger and forecast views. All queries tolerate concurrent
// writers; read-committed snapshots are acceptable.
type FinanceRepository interface {
	// ListEventSummaryRows returns the financial slice of events of category
	// "event" whose start falls in [start, end] (nil range = all time),
	// joined with their space name.
	ListEventSummaryRows(ctx context.Context, start, end *time.Time) ([]domain.EventSummaryRow, error)

	// SumPaidIncomeByEvent returns, for each given event id, the sum of
	// amounts of its linked paid income transactions. Events with no such
	// transactions are absent from the map.
	SumPaidIncomeByEvent(ctx context.Context, eventIDs []int64) (map[int64]decimal.Decimal, error)

	// ListTransactionSummaryRows returns the aggregation slice of
	// transactions whose date falls in [start, end] (nil range = all time).
	ListTransactionSummaryRows(ctx context.Context, start, end *time.Time) ([]domain.TransactionSummaryRow, error)

	// ListLedgerEntries returns manual transactions matching the filters,
	// enriched with reference and space name, ordered by date descending and
	// transaction id descending.
	ListLedgerEntries(ctx context.Context, filters domain.LedgerFilters) ([]domain.LedgerEntry, error)

	// SumPendingByType returns the pending income and pending expense totals
	// for transactions dated inside [start, end].
	SumPendingByType(ctx context.Context, start, end time.Time) (income, expense decimal.Decimal, err error)
}
