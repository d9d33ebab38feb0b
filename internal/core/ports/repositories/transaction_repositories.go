package repositories

import (
	"context"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
)

// TransactionRepository defines persistence operations for manual
// financial transactions.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn *domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)
	// ListTransactions returns transactions ordered by date descending,
	// transaction id descending. A nil range means all time; otherwise
	// transactions whose date falls in [start, end].
	ListTransactions(ctx context.Context, start, end *time.Time) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID int64) error
}
