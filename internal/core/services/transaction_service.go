package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/apperrors"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	portsrepo "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/repositories"
	portssvc "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/services"
	"github.com/lucasaveiro/gestor_espacos_app/internal/dto"
)

type TransactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	reconciler      portssvc.EventReconciler
}

// NewTransactionService creates a new transaction service. The reconciler is
// invoked after every write that can move a booking's payment status.
func NewTransactionService(transactionRepo portsrepo.TransactionRepository, reconciler portssvc.EventReconciler) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo, reconciler: reconciler}
}

var _ portssvc.TransactionService = (*TransactionService)(nil)

func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txnType := domain.TransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, req.Type)
	}
	category := domain.TransactionCategory(req.Category)
	if !category.ValidFor(txnType) {
		return nil, fmt.Errorf("%w: category %q is not valid for type %q", apperrors.ErrValidation, req.Category, req.Type)
	}
	status := domain.TransactionStatus(req.Status)
	if req.Status == "" {
		status = domain.StatusPaid
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: invalid transaction status %q", apperrors.ErrValidation, req.Status)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: negative amount", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		Type:          txnType,
		Category:      category,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          req.Date,
		Status:        status,
		EventID:       req.EventID,
		ServiceTaskID: req.ServiceTaskID,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	applyPaidAt(&txn, now)

	if err := s.transactionRepo.SaveTransaction(ctx, &txn); err != nil {
		s.LogError(ctx, err, "failed to create transaction")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	if err := s.reconcileLinkedEvent(ctx, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *TransactionService) ListTransactions(ctx context.Context, start, end *time.Time) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	oldEventID := linkedIncomeEvent(txn)

	if req.Type != nil {
		txnType := domain.TransactionType(*req.Type)
		if !txnType.IsValid() {
			return nil, fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, *req.Type)
		}
		txn.Type = txnType
	}
	if req.Category != nil {
		txn.Category = domain.TransactionCategory(*req.Category)
	}
	if !txn.Category.ValidFor(txn.Type) {
		return nil, fmt.Errorf("%w: category %q remains invalid for type %q", apperrors.ErrValidation, txn.Category, txn.Type)
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: negative amount", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Status != nil {
		status := domain.TransactionStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: invalid transaction status %q", apperrors.ErrValidation, *req.Status)
		}
		txn.Status = status
	}
	if req.EventID != nil {
		txn.EventID = req.EventID
	}
	if req.ServiceTaskID != nil {
		txn.ServiceTaskID = req.ServiceTaskID
	}
	if req.Notes != nil {
		txn.Notes = *req.Notes
	}
	now := time.Now().UTC()
	txn.LastUpdatedAt = now
	applyPaidAt(txn, now)

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "failed to update transaction", "transaction_id", transactionID)
		return nil, err
	}

	// An update can move money between bookings; reconcile both sides.
	newEventID := linkedIncomeEvent(txn)
	if oldEventID != nil && (newEventID == nil || *newEventID != *oldEventID) {
		if err := s.reconciler.ReconcilePayment(ctx, *oldEventID); err != nil {
			return nil, err
		}
	}
	if newEventID != nil {
		if err := s.reconciler.ReconcilePayment(ctx, *newEventID); err != nil {
			return nil, err
		}
	}
	return txn, nil
}

func (s *TransactionService) UpdateTransactionStatus(ctx context.Context, transactionID int64, status string) (*domain.Transaction, error) {
	txnStatus := domain.TransactionStatus(status)
	if !txnStatus.IsValid() {
		return nil, fmt.Errorf("%w: invalid transaction status %q", apperrors.ErrValidation, status)
	}
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	txn.Status = txnStatus
	txn.LastUpdatedAt = now
	applyPaidAt(txn, now)

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "failed to update transaction status", "transaction_id", transactionID)
		return nil, err
	}
	if err := s.reconcileLinkedEvent(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID int64) error {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return err
	}
	s.LogInfo(ctx, "transaction deleted", "transaction_id", transactionID)
	if eventID := linkedIncomeEvent(txn); eventID != nil {
		return s.reconciler.ReconcilePayment(ctx, *eventID)
	}
	return nil
}

func (s *TransactionService) reconcileLinkedEvent(ctx context.Context, txn *domain.Transaction) error {
	if eventID := linkedIncomeEvent(txn); eventID != nil {
		return s.reconciler.ReconcilePayment(ctx, *eventID)
	}
	return nil
}

// linkedIncomeEvent returns the event a transaction contributes paid income
// to, or nil when its writes cannot move any payment status.
func linkedIncomeEvent(txn *domain.Transaction) *int64 {
	if txn.Type == domain.Income && txn.EventID != nil {
		return txn.EventID
	}
	return nil
}

// applyPaidAt keeps PaidAt consistent with Status: paid rows carry a
// timestamp, pending rows never do.
func applyPaidAt(txn *domain.Transaction, now time.Time) {
	switch txn.Status {
	case domain.StatusPaid:
		if txn.PaidAt == nil {
			txn.PaidAt = &now
		}
	case domain.StatusPending:
		txn.PaidAt = nil
	}
}
