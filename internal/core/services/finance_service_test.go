package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/apperrors"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type FinanceServiceTestSuite struct {
	suite.Suite
	mockFinanceRepo *MockFinanceRepository
	mockEventRepo   *MockEventRepository
	service         *services.FinanceService
	ctx             context.Context
}

func (s *FinanceServiceTestSuite) SetupTest() {
	s.mockFinanceRepo = new(MockFinanceRepository)
	s.mockEventRepo = new(MockEventRepository)
	s.service = services.NewFinanceService(s.mockFinanceRepo, s.mockEventRepo)
	s.ctx = context.Background()
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func (s *FinanceServiceTestSuite) TestSummarize_NoDoubleCounting() {
	// One booking worth 500 with deposit 100 plus a linked paid payment of
	// 400. The 400 belongs to the booking's received amount, never to the
	// manual income bucket.
	start := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	eventID := int64(1)
	events := []domain.EventSummaryRow{
		{EventID: 1, TotalValue: d("500"), Deposit: d("100"), Start: start, SpaceName: "Salão de Festas"},
	}
	txns := []domain.TransactionSummaryRow{
		{EventID: &eventID, Type: domain.Income, Category: domain.CategoryEventPayment, Amount: d("400"), Date: start, Status: domain.StatusPaid},
	}

	s.mockFinanceRepo.On("ListEventSummaryRows", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(events, nil).Once()
	s.mockFinanceRepo.On("SumPaidIncomeByEvent", s.ctx, []int64{1}).Return(map[int64]decimal.Decimal{1: d("400")}, nil).Once()
	s.mockFinanceRepo.On("ListTransactionSummaryRows", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(txns, nil).Once()

	summary, err := s.service.Summarize(s.ctx, nil, nil)
	s.NoError(err)
	s.True(summary.EventIncome.DepositsReceived.Equal(d("500")), "received = deposit 100 + paid 400")
	s.True(summary.EventIncome.PendingPayments.Equal(d("0")))
	s.Equal(1, summary.EventIncome.PaidEvents)
	s.True(summary.ManualIncome.IsZero(), "linked paid income must not be counted twice")
	s.True(summary.TotalIncome.Equal(d("500")))
	s.True(summary.Balance.Equal(d("500")))
}

func (s *FinanceServiceTestSuite) TestSummarize_DepositClampedToTotal() {
	start := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	events := []domain.EventSummaryRow{
		{EventID: 1, TotalValue: d("300"), Deposit: d("500"), Start: start, SpaceName: "Chácara"},
	}

	s.mockFinanceRepo.On("ListEventSummaryRows", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(events, nil).Once()
	s.mockFinanceRepo.On("SumPaidIncomeByEvent", s.ctx, []int64{1}).Return(map[int64]decimal.Decimal{}, nil).Once()
	s.mockFinanceRepo.On("ListTransactionSummaryRows", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.TransactionSummaryRow{}, nil).Once()

	summary, err := s.service.Summarize(s.ctx, nil, nil)
	s.NoError(err)
	s.True(summary.EventIncome.DepositsReceived.Equal(d("300")), "deposit overshoot clamps at total")
	s.Equal(1, summary.EventIncome.PaidEvents)
}

func (s *FinanceServiceTestSuite) TestSummarize_PendingServiceExpense() {
	// A pending cleaning expense feeds the service-pending bucket and the
	// forecast, but never the realized expense total.
	date := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	txns := []domain.TransactionSummaryRow{
		{Type: domain.Expense, Category: domain.CategoryCleaning, Amount: d("150"), Date: date, Status: domain.StatusPending},
	}

	s.mockFinanceRepo.On("ListEventSummaryRows", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.EventSummaryRow{}, nil).Once()
	s.mockFinanceRepo.On("SumPaidIncomeByEvent", s.ctx, []int64{}).Return(map[int64]decimal.Decimal{}, nil).Once()
	s.mockFinanceRepo.On("ListTransactionSummaryRows", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(txns, nil).Once()

	summary, err := s.service.Summarize(s.ctx, nil, nil)
	s.NoError(err)
	s.True(summary.ServicePendingTotal.Equal(d("150")))
	s.True(summary.Forecast.TotalForecastExpense.Equal(d("150")))
	s.True(summary.ManualExpense.IsZero())
	s.True(summary.TotalExpense.IsZero())
}

func (s *FinanceServiceTestSuite) TestSummarize_ManualBucketsAndMonths() {
	sept := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	oct := time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)
	txns := []domain.TransactionSummaryRow{
		{Type: domain.Income, Category: domain.CategoryRental, Amount: d("1200"), Date: sept, Status: domain.StatusPaid},
		{Type: domain.Expense, Category: domain.CategoryUtilities, Amount: d("200"), Date: oct, Status: domain.StatusPaid},
	}

	s.mockFinanceRepo.On("ListEventSummaryRows", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.EventSummaryRow{}, nil).Once()
	s.mockFinanceRepo.On("SumPaidIncomeByEvent", s.ctx, []int64{}).Return(map[int64]decimal.Decimal{}, nil).Once()
	s.mockFinanceRepo.On("ListTransactionSummaryRows", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(txns, nil).Once()

	summary, err := s.service.Summarize(s.ctx, nil, nil)
	s.NoError(err)
	s.True(summary.ManualIncome.Equal(d("1200")))
	s.True(summary.ManualExpense.Equal(d("200")))
	s.True(summary.Balance.Equal(d("1000")))
	s.True(summary.ByMonth["2026-09"].Income.Equal(d("1200")))
	s.True(summary.ByMonth["2026-10"].Expense.Equal(d("200")))
	s.True(summary.ByCategory["rental"].Income.Equal(d("1200")))
	s.True(summary.ByCategory["utilities"].Expense.Equal(d("200")))
}

func (s *FinanceServiceTestSuite) TestSummarize_EndBeforeStart() {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(-24 * time.Hour)
	_, err := s.service.Summarize(s.ctx, &start, &end)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *FinanceServiceTestSuite) TestLedger_Fold() {
	entries := []domain.LedgerEntry{
		{Transaction: domain.Transaction{Type: domain.Income, Status: domain.StatusPaid, Amount: d("300"), Category: domain.CategoryRental}},
		{Transaction: domain.Transaction{Type: domain.Income, Status: domain.StatusPending, Amount: d("100"), Category: domain.CategoryDeposit}},
		{Transaction: domain.Transaction{Type: domain.Expense, Status: domain.StatusPaid, Amount: d("80"), Category: domain.CategorySupplies}},
		{Transaction: domain.Transaction{Type: domain.Expense, Status: domain.StatusPending, Amount: d("150"), Category: domain.CategoryCleaning}},
	}
	filters := domain.LedgerFilters{}

	s.mockFinanceRepo.On("ListLedgerEntries", s.ctx, filters).Return(entries, nil).Once()

	got, fold, err := s.service.Ledger(s.ctx, filters)
	s.NoError(err)
	s.Len(got, 4)
	s.True(fold.PaidIncome.Equal(d("300")))
	s.True(fold.PendingIncome.Equal(d("100")))
	s.True(fold.PaidExpense.Equal(d("80")))
	s.True(fold.PendingExpense.Equal(d("150")))
	s.True(fold.ServicePendingTotal.Equal(d("150")), "pending cleaning is a service-pending expense")
}

func (s *FinanceServiceTestSuite) TestAllEntries_MergedAndSorted() {
	d1 := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	events := []domain.Event{
		{EventID: 1, Title: "Casamento", Category: domain.CategoryEvent, Start: d1, TotalValue: d("500"), Deposit: d("100"), PaymentStatus: domain.PaymentPartial, SpaceName: "Salão"},
		{EventID: 2, Title: "Visita", Category: domain.CategoryVisit, Start: d2},
	}
	ledger := []domain.LedgerEntry{
		{Transaction: domain.Transaction{TransactionID: 9, Type: domain.Expense, Category: domain.CategorySupplies, Amount: d("50"), Date: d2, Status: domain.StatusPaid}},
	}

	s.mockEventRepo.On("ListEvents", s.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(events, nil).Once()
	s.mockFinanceRepo.On("ListLedgerEntries", s.ctx, domain.LedgerFilters{}).Return(ledger, nil).Once()

	entries, err := s.service.AllEntries(s.ctx, nil, nil)
	s.NoError(err)
	s.Len(entries, 2, "visits are not financial entries")
	s.Equal("transaction-9", entries[0].ID, "newest first")
	s.Equal("event-1", entries[1].ID)
	s.Equal(domain.SourceEvent, entries[1].Source)
	s.NotNil(entries[1].PaymentStatus)
	s.Equal(domain.PaymentPartial, *entries[1].PaymentStatus)
}

func (s *FinanceServiceTestSuite) TestForecast() {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	s.mockFinanceRepo.On("SumPendingByType", s.ctx, start, end).Return(d("900"), d("250"), nil).Once()

	forecast, err := s.service.Forecast(s.ctx, start, end)
	s.NoError(err)
	s.True(forecast.TotalForecastIncome.Equal(d("900")))
	s.True(forecast.TotalForecastExpense.Equal(d("250")))
}

func (s *FinanceServiceTestSuite) TestForecast_EndBeforeStart() {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := s.service.Forecast(s.ctx, start, start.Add(-time.Hour))
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestFinanceService(t *testing.T) {
	suite.Run(t, new(FinanceServiceTestSuite))
}
