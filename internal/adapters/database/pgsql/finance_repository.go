package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	portsrepo "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxFinanceRepository struct {
	pool *pgxpool.Pool
}

// newPgxFinanceRepository creates a new repository for the financial
// summary, ledger and forecast queries.
func newPgxFinanceRepository(pool *pgxpool.Pool) portsrepo.FinanceRepository {
	return &PgxFinanceRepository{pool: pool}
}

var _ portsrepo.FinanceRepository = (*PgxFinanceRepository)(nil)

// ListEventSummaryRows returns the financial slice of bookings in range,
// joined with their space name.
func (r *PgxFinanceRepository) ListEventSummaryRows(ctx context.Context, start, end *time.Time) ([]domain.EventSummaryRow, error) {
	query := `
		SELECT e.event_id, e.total_value, e.deposit, e.start_at, s.name
		FROM events e
		JOIN spaces s ON s.space_id = e.space_id
		WHERE e.category = 'event'
		  AND ($1::timestamptz IS NULL OR e.start_at >= $1)
		  AND ($2::timestamptz IS NULL OR e.start_at <= $2)
		ORDER BY e.start_at ASC, e.event_id ASC;
	`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query event summary rows: %w", err)
	}
	defer rows.Close()

	out := []domain.EventSummaryRow{}
	for rows.Next() {
		var row domain.EventSummaryRow
		if err := rows.Scan(&row.EventID, &row.TotalValue, &row.Deposit, &row.Start, &row.SpaceName); err != nil {
			return nil, fmt.Errorf("failed to scan event summary row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event summary rows: %w", err)
	}
	return out, nil
}

// SumPaidIncomeByEvent returns the paid income total of each given event.
// Events with no paid income transactions are absent from the map.
func (r *PgxFinanceRepository) SumPaidIncomeByEvent(ctx context.Context, eventIDs []int64) (map[int64]decimal.Decimal, error) {
	sums := map[int64]decimal.Decimal{}
	if len(eventIDs) == 0 {
		return sums, nil
	}
	query := `
		SELECT event_id, SUM(amount)
		FROM transactions
		WHERE event_id = ANY($1) AND type = 'income' AND status = 'paid'
		GROUP BY event_id;
	`
	rows, err := r.pool.Query(ctx, query, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to sum paid income by event: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var eventID int64
		var sum decimal.Decimal
		if err := rows.Scan(&eventID, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan paid income sum row: %w", err)
		}
		sums[eventID] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating paid income sum rows: %w", err)
	}
	return sums, nil
}

// ListTransactionSummaryRows returns the aggregation slice of transactions
// dated in range.
func (r *PgxFinanceRepository) ListTransactionSummaryRows(ctx context.Context, start, end *time.Time) ([]domain.TransactionSummaryRow, error) {
	query := `
		SELECT event_id, type, category, amount, date, status
		FROM transactions
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date <= $2)
		ORDER BY date ASC, transaction_id ASC;
	`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction summary rows: %w", err)
	}
	defer rows.Close()

	out := []domain.TransactionSummaryRow{}
	for rows.Next() {
		var row domain.TransactionSummaryRow
		if err := rows.Scan(&row.EventID, &row.Type, &row.Category, &row.Amount, &row.Date, &row.Status); err != nil {
			return nil, fmt.Errorf("failed to scan transaction summary row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction summary rows: %w", err)
	}
	return out, nil
}

// ListLedgerEntries returns transactions matching the AND-combined filters,
// enriched with a display reference and space name. Empty or "all" string
// filters are unconstrained.
func (r *PgxFinanceRepository) ListLedgerEntries(ctx context.Context, filters domain.LedgerFilters) ([]domain.LedgerEntry, error) {
	query := `
		SELECT t.transaction_id, t.type, t.category, t.description, t.amount, t.date, t.status,
		       t.paid_at, t.event_id, t.service_task_id, t.notes, t.created_at, t.last_updated_at,
		       COALESCE(e.title, COALESCE(st.name, '-')) AS reference,
		       COALESCE(es.name, ts.name, '') AS space_name
		FROM transactions t
		LEFT JOIN events e ON e.event_id = t.event_id
		LEFT JOIN spaces es ON es.space_id = e.space_id
		LEFT JOIN service_tasks tk ON tk.service_task_id = t.service_task_id
		LEFT JOIN service_types st ON st.service_type_id = tk.service_type_id
		LEFT JOIN spaces ts ON ts.space_id = tk.space_id
		WHERE ($1::timestamptz IS NULL OR t.date >= $1)
		  AND ($2::timestamptz IS NULL OR t.date <= $2)
		  AND ($3 = '' OR t.type = $3)
		  AND ($4 = '' OR t.status = $4)
		  AND ($5 = '' OR t.category = $5)
		  AND ($6 = '' OR t.description ILIKE '%' || $6 || '%'
			OR t.notes ILIKE '%' || $6 || '%'
			OR t.category ILIKE '%' || $6 || '%')
		ORDER BY t.date DESC, t.transaction_id DESC;
	`
	typ := normalizeFilter(filters.Type)
	status := normalizeFilter(filters.Status)
	category := normalizeFilter(filters.Category)
	search := normalizeFilter(filters.Search)

	rows, err := r.pool.Query(ctx, query, filters.Start, filters.End, typ, status, category, search)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var entry domain.LedgerEntry
		if err := rows.Scan(
			&entry.TransactionID,
			&entry.Type,
			&entry.Category,
			&entry.Description,
			&entry.Amount,
			&entry.Date,
			&entry.Status,
			&entry.PaidAt,
			&entry.EventID,
			&entry.ServiceTaskID,
			&entry.Notes,
			&entry.CreatedAt,
			&entry.LastUpdatedAt,
			&entry.Reference,
			&entry.SpaceName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return entries, nil
}

func normalizeFilter(v string) string {
	if v == "all" {
		return ""
	}
	return v
}

// SumPendingByType returns the pending income and expense totals for
// transactions dated inside the range.
func (r *PgxFinanceRepository) SumPendingByType(ctx context.Context, start, end time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM transactions
		WHERE status = 'pending' AND date >= $1 AND date <= $2;
	`
	var income, expense decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum pending transactions: %w", err)
	}
	return income, expense, nil
}
