package services

import (
	"context"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/lucasaveiro/gestor_espacos_app/internal/dto"
)

// TransactionService defines operations for manual financial transactions.
// Every write enforces the paidAt invariant and triggers reconciliation of
// the affected events.
type TransactionService interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, start, end *time.Time) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, transactionID int64, status string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID int64) error
}
