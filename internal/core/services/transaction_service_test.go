package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/apperrors"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/services"
	"github.com/lucasaveiro/gestor_espacos_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockTransactionRepository
	mockReconciler *MockEventReconciler
	service        *services.TransactionService
	ctx            context.Context
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockTransactionRepository)
	s.mockReconciler = new(MockEventReconciler)
	s.service = services.NewTransactionService(s.mockRepo, s.mockReconciler)
	s.ctx = context.Background()
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_PaidGetsPaidAt() {
	req := dto.CreateTransactionRequest{
		Type:        "income",
		Category:    "rental",
		Description: "Aluguel mensal",
		Amount:      decimal.RequireFromString("1200"),
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}

	s.mockRepo.On("SaveTransaction", s.ctx, mock.MatchedBy(func(t *domain.Transaction) bool {
		return t.Status == domain.StatusPaid && t.PaidAt != nil
	})).Return(nil).Once()

	txn, err := s.service.CreateTransaction(s.ctx, req)
	s.NoError(err)
	s.NotNil(txn.PaidAt)
	s.mockRepo.AssertExpectations(s.T())
	s.mockReconciler.AssertNotCalled(s.T(), "ReconcilePayment")
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_PendingHasNoPaidAt() {
	req := dto.CreateTransactionRequest{
		Type:        "expense",
		Category:    "cleaning",
		Description: "Limpeza pós-evento",
		Amount:      decimal.RequireFromString("150"),
		Date:        time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Status:      "pending",
	}

	s.mockRepo.On("SaveTransaction", s.ctx, mock.MatchedBy(func(t *domain.Transaction) bool {
		return t.Status == domain.StatusPending && t.PaidAt == nil
	})).Return(nil).Once()

	txn, err := s.service.CreateTransaction(s.ctx, req)
	s.NoError(err)
	s.Nil(txn.PaidAt)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_IncomeLinkedToEventReconciles() {
	eventID := int64(42)
	req := dto.CreateTransactionRequest{
		Type:        "income",
		Category:    "event_payment",
		Description: "Parcela final",
		Amount:      decimal.RequireFromString("400"),
		Date:        time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EventID:     &eventID,
	}

	s.mockRepo.On("SaveTransaction", s.ctx, mock.Anything).Return(nil).Once()
	s.mockReconciler.On("ReconcilePayment", s.ctx, eventID).Return(nil).Once()

	_, err := s.service.CreateTransaction(s.ctx, req)
	s.NoError(err)
	s.mockReconciler.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_CategoryTypeMismatch() {
	req := dto.CreateTransactionRequest{
		Type:        "income",
		Category:    "cleaning",
		Description: "X",
		Amount:      decimal.RequireFromString("10"),
		Date:        time.Now(),
	}
	_, err := s.service.CreateTransaction(s.ctx, req)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveTransaction")
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_MovesBetweenEvents() {
	oldEventID := int64(1)
	newEventID := int64(2)
	paidAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	existing := &domain.Transaction{
		TransactionID: 10,
		Type:          domain.Income,
		Category:      domain.CategoryEventPayment,
		Description:   "Parcela",
		Amount:        decimal.RequireFromString("200"),
		Date:          paidAt,
		Status:        domain.StatusPaid,
		PaidAt:        &paidAt,
		EventID:       &oldEventID,
	}

	s.mockRepo.On("FindTransactionByID", s.ctx, int64(10)).Return(existing, nil).Once()
	s.mockRepo.On("UpdateTransaction", s.ctx, mock.Anything).Return(nil).Once()
	s.mockReconciler.On("ReconcilePayment", s.ctx, oldEventID).Return(nil).Once()
	s.mockReconciler.On("ReconcilePayment", s.ctx, newEventID).Return(nil).Once()

	_, err := s.service.UpdateTransaction(s.ctx, 10, dto.UpdateTransactionRequest{EventID: &newEventID})
	s.NoError(err)
	s.mockReconciler.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestUpdateTransactionStatus_TogglesPaidAt() {
	eventID := int64(3)
	paidAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	existing := &domain.Transaction{
		TransactionID: 11,
		Type:          domain.Income,
		Category:      domain.CategoryDeposit,
		Amount:        decimal.RequireFromString("100"),
		Status:        domain.StatusPaid,
		PaidAt:        &paidAt,
		EventID:       &eventID,
	}

	s.mockRepo.On("FindTransactionByID", s.ctx, int64(11)).Return(existing, nil).Once()
	s.mockRepo.On("UpdateTransaction", s.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Status == domain.StatusPending && t.PaidAt == nil
	})).Return(nil).Once()
	s.mockReconciler.On("ReconcilePayment", s.ctx, eventID).Return(nil).Once()

	txn, err := s.service.UpdateTransactionStatus(s.ctx, 11, "pending")
	s.NoError(err)
	s.Nil(txn.PaidAt)
	s.mockRepo.AssertExpectations(s.T())
	s.mockReconciler.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_ReconcilesLinkedEvent() {
	eventID := int64(4)
	existing := &domain.Transaction{
		TransactionID: 12,
		Type:          domain.Income,
		Category:      domain.CategoryEventPayment,
		Amount:        decimal.RequireFromString("50"),
		Status:        domain.StatusPaid,
		EventID:       &eventID,
	}

	s.mockRepo.On("FindTransactionByID", s.ctx, int64(12)).Return(existing, nil).Once()
	s.mockRepo.On("DeleteTransaction", s.ctx, int64(12)).Return(nil).Once()
	s.mockReconciler.On("ReconcilePayment", s.ctx, eventID).Return(nil).Once()

	err := s.service.DeleteTransaction(s.ctx, 12)
	s.NoError(err)
	s.mockReconciler.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_ExpenseSkipsReconcile() {
	existing := &domain.Transaction{
		TransactionID: 13,
		Type:          domain.Expense,
		Category:      domain.CategoryMaintenance,
		Amount:        decimal.RequireFromString("75"),
		Status:        domain.StatusPaid,
	}

	s.mockRepo.On("FindTransactionByID", s.ctx, int64(13)).Return(existing, nil).Once()
	s.mockRepo.On("DeleteTransaction", s.ctx, int64(13)).Return(nil).Once()

	err := s.service.DeleteTransaction(s.ctx, 13)
	s.NoError(err)
	s.mockReconciler.AssertNotCalled(s.T(), "ReconcilePayment")
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
