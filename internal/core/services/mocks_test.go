package services_test

import (
	"context"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	portsrepo "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/repositories"
	portssvc "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock EventRepository ---
type MockEventRepository struct {
	mock.Mock
}

var _ portsrepo.EventRepository = (*MockEventRepository)(nil)

func (m *MockEventRepository) SaveEvent(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID int64) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListEvents(ctx context.Context, start, end *time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteEvent(ctx context.Context, eventID int64) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

func (m *MockEventRepository) ReconcilePaymentStatus(ctx context.Context, eventID int64) (domain.PaymentStatus, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(domain.PaymentStatus), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn *domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, start, end *time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock FinanceRepository ---
type MockFinanceRepository struct {
	mock.Mock
}

var _ portsrepo.FinanceRepository = (*MockFinanceRepository)(nil)

func (m *MockFinanceRepository) ListEventSummaryRows(ctx context.Context, start, end *time.Time) ([]domain.EventSummaryRow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventSummaryRow), args.Error(1)
}

func (m *MockFinanceRepository) SumPaidIncomeByEvent(ctx context.Context, eventIDs []int64) (map[int64]decimal.Decimal, error) {
	args := m.Called(ctx, eventIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]decimal.Decimal), args.Error(1)
}

func (m *MockFinanceRepository) ListTransactionSummaryRows(ctx context.Context, start, end *time.Time) ([]domain.TransactionSummaryRow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionSummaryRow), args.Error(1)
}

func (m *MockFinanceRepository) ListLedgerEntries(ctx context.Context, filters domain.LedgerFilters) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockFinanceRepository) SumPendingByType(ctx context.Context, start, end time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

// --- Mock ServiceRepository ---
type MockServiceRepository struct {
	mock.Mock
}

var _ portsrepo.ServiceRepository = (*MockServiceRepository)(nil)

func (m *MockServiceRepository) ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceType), args.Error(1)
}

func (m *MockServiceRepository) SaveServiceTask(ctx context.Context, task *domain.ServiceTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockServiceRepository) FindServiceTaskByID(ctx context.Context, serviceTaskID int64) (*domain.ServiceTask, error) {
	args := m.Called(ctx, serviceTaskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceTask), args.Error(1)
}

func (m *MockServiceRepository) ListServiceTasks(ctx context.Context, start, end *time.Time) ([]domain.ServiceTask, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceTask), args.Error(1)
}

func (m *MockServiceRepository) UpdateServiceTask(ctx context.Context, task domain.ServiceTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockServiceRepository) UpdateServiceTaskStatus(ctx context.Context, serviceTaskID int64, status domain.TaskStatus, updatedAt time.Time) error {
	args := m.Called(ctx, serviceTaskID, status, updatedAt)
	return args.Error(0)
}

func (m *MockServiceRepository) DeleteServiceTask(ctx context.Context, serviceTaskID int64) error {
	args := m.Called(ctx, serviceTaskID)
	return args.Error(0)
}

// --- Mock EventReconciler ---
type MockEventReconciler struct {
	mock.Mock
}

var _ portssvc.EventReconciler = (*MockEventReconciler)(nil)

func (m *MockEventReconciler) ReconcilePayment(ctx context.Context, eventID int64) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}
