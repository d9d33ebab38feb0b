package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasaveiro/gestor_espacos_app/internal/apperrors"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	portsrepo "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a new transaction and fills the generated id.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn *domain.Transaction) error {
	query := `
		INSERT INTO transactions (type, category, description, amount, date, status, paid_at,
			event_id, service_task_id, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING transaction_id;
	`
	err := r.pool.QueryRow(ctx, query,
		txn.Type,
		txn.Category,
		txn.Description,
		txn.Amount,
		txn.Date,
		txn.Status,
		txn.PaidAt,
		txn.EventID,
		txn.ServiceTaskID,
		txn.Notes,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	).Scan(&txn.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

const transactionSelect = `
	SELECT transaction_id, type, category, description, amount, date, status, paid_at,
	       event_id, service_task_id, notes, created_at, last_updated_at
	FROM transactions
`

func scanTransaction(row pgx.Row, txn *domain.Transaction) error {
	return row.Scan(
		&txn.TransactionID,
		&txn.Type,
		&txn.Category,
		&txn.Description,
		&txn.Amount,
		&txn.Date,
		&txn.Status,
		&txn.PaidAt,
		&txn.EventID,
		&txn.ServiceTaskID,
		&txn.Notes,
		&txn.CreatedAt,
		&txn.LastUpdatedAt,
	)
}

// FindTransactionByID retrieves a transaction by its id.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := transactionSelect + `WHERE transaction_id = $1;`
	var txn domain.Transaction
	err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID), &txn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %d: %w", transactionID, err)
	}
	return &txn, nil
}

// ListTransactions retrieves transactions newest first, optionally restricted
// to a date range.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, start, end *time.Time) ([]domain.Transaction, error) {
	query := transactionSelect + `
	WHERE ($1::timestamptz IS NULL OR date >= $1)
	  AND ($2::timestamptz IS NULL OR date <= $2)
	ORDER BY date DESC, transaction_id DESC;
	`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var txn domain.Transaction
		if err := scanTransaction(rows, &txn); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// UpdateTransaction replaces the mutable fields of a transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET type = $2, category = $3, description = $4, amount = $5, date = $6, status = $7,
		    paid_at = $8, event_id = $9, service_task_id = $10, notes = $11, last_updated_at = $12
		WHERE transaction_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		txn.Type,
		txn.Category,
		txn.Description,
		txn.Amount,
		txn.Date,
		txn.Status,
		txn.PaidAt,
		txn.EventID,
		txn.ServiceTaskID,
		txn.Notes,
		txn.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
