package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/apperrors"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	portsrepo "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/repositories"
	portssvc "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/services"
)

type FinanceService struct {
	BaseService
	financeRepo portsrepo.FinanceRepository
	eventRepo   portsrepo.EventRepository
}

// NewFinanceService creates the financial reporting service.
func NewFinanceService(financeRepo portsrepo.FinanceRepository, eventRepo portsrepo.EventRepository) *FinanceService {
	return &FinanceService{financeRepo: financeRepo, eventRepo: eventRepo}
}

var _ portssvc.FinanceService = (*FinanceService)(nil)

const monthKeyLayout = "2006-01"

// Summarize folds bookings and manual transactions into one aggregation.
// Income linked to a booking is counted once, through the booking's received
// amount, never again as manual income.
func (s *FinanceService) Summarize(ctx context.Context, start, end *time.Time) (*domain.FinancialSummary, error) {
	if start != nil && end != nil && end.Before(*start) {
		return nil, fmt.Errorf("%w: summary range end before start", apperrors.ErrValidation)
	}

	events, err := s.financeRepo.ListEventSummaryRows(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "failed to load event rows for summary")
		return nil, fmt.Errorf("failed to load event rows for summary: %w", err)
	}
	eventIDs := make([]int64, 0, len(events))
	for _, e := range events {
		eventIDs = append(eventIDs, e.EventID)
	}
	paidByEvent, err := s.financeRepo.SumPaidIncomeByEvent(ctx, eventIDs)
	if err != nil {
		s.LogError(ctx, err, "failed to sum paid income for summary")
		return nil, fmt.Errorf("failed to sum paid income for summary: %w", err)
	}
	txns, err := s.financeRepo.ListTransactionSummaryRows(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "failed to load transaction rows for summary")
		return nil, fmt.Errorf("failed to load transaction rows for summary: %w", err)
	}

	summary := &domain.FinancialSummary{
		ByCategory: map[string]domain.CategoryTotals{},
		ByMonth:    map[string]domain.MonthTotals{},
		BySpace:    map[string]domain.SpaceTotals{},
	}

	for _, e := range events {
		additional := paidByEvent[e.EventID]
		received := domain.ReceivedAmount(e.TotalValue, e.Deposit, additional)
		pending := domain.PendingAmount(e.TotalValue, e.Deposit, additional)

		summary.EventIncome.Total = summary.EventIncome.Total.Add(e.TotalValue)
		summary.EventIncome.DepositsReceived = summary.EventIncome.DepositsReceived.Add(received)
		summary.EventIncome.PendingPayments = summary.EventIncome.PendingPayments.Add(pending)
		summary.EventIncome.EventCount++
		switch domain.ClassifyPayment(e.TotalValue, e.Deposit, additional) {
		case domain.PaymentPaid:
			summary.EventIncome.PaidEvents++
		case domain.PaymentPartial:
			summary.EventIncome.PartialEvents++
		default:
			summary.EventIncome.UnpaidEvents++
		}

		monthKey := e.Start.Format(monthKeyLayout)
		month := summary.ByMonth[monthKey]
		month.Income = month.Income.Add(received)
		month.Events++
		summary.ByMonth[monthKey] = month

		space := summary.BySpace[e.SpaceName]
		space.Income = space.Income.Add(received)
		space.Events++
		summary.BySpace[e.SpaceName] = space

		category := summary.ByCategory[string(domain.CategoryEventPayment)]
		category.Income = category.Income.Add(received)
		summary.ByCategory[string(domain.CategoryEventPayment)] = category
	}

	for _, t := range txns {
		if t.Status == domain.StatusPending {
			if t.Type == domain.Expense && t.Category.IsServicePending() {
				summary.ServicePendingTotal = summary.ServicePendingTotal.Add(t.Amount)
			}
			if t.Type == domain.Income {
				summary.Forecast.TotalForecastIncome = summary.Forecast.TotalForecastIncome.Add(t.Amount)
			} else {
				summary.Forecast.TotalForecastExpense = summary.Forecast.TotalForecastExpense.Add(t.Amount)
			}
			continue
		}
		// Paid income tied to a booking is already inside its received
		// amount; counting it again would double the revenue.
		if t.Type == domain.Income && t.EventID != nil {
			continue
		}

		monthKey := t.Date.Format(monthKeyLayout)
		month := summary.ByMonth[monthKey]
		category := summary.ByCategory[string(t.Category)]
		if t.Type == domain.Income {
			summary.ManualIncome = summary.ManualIncome.Add(t.Amount)
			month.Income = month.Income.Add(t.Amount)
			category.Income = category.Income.Add(t.Amount)
		} else {
			summary.ManualExpense = summary.ManualExpense.Add(t.Amount)
			month.Expense = month.Expense.Add(t.Amount)
			category.Expense = category.Expense.Add(t.Amount)
		}
		summary.ByMonth[monthKey] = month
		summary.ByCategory[string(t.Category)] = category
	}

	summary.TotalIncome = summary.EventIncome.DepositsReceived.Add(summary.ManualIncome)
	summary.TotalExpense = summary.ManualExpense
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}

// Ledger lists the filtered manual transactions and folds their totals split
// by settlement status.
func (s *FinanceService) Ledger(ctx context.Context, filters domain.LedgerFilters) ([]domain.LedgerEntry, domain.LedgerSummary, error) {
	if filters.Start != nil && filters.End != nil && filters.End.Before(*filters.Start) {
		return nil, domain.LedgerSummary{}, fmt.Errorf("%w: ledger range end before start", apperrors.ErrValidation)
	}
	entries, err := s.financeRepo.ListLedgerEntries(ctx, filters)
	if err != nil {
		s.LogError(ctx, err, "failed to list ledger entries")
		return nil, domain.LedgerSummary{}, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	var fold domain.LedgerSummary
	for _, entry := range entries {
		switch {
		case entry.Type == domain.Income && entry.Status == domain.StatusPaid:
			fold.PaidIncome = fold.PaidIncome.Add(entry.Amount)
		case entry.Type == domain.Income:
			fold.PendingIncome = fold.PendingIncome.Add(entry.Amount)
		case entry.Status == domain.StatusPaid:
			fold.PaidExpense = fold.PaidExpense.Add(entry.Amount)
		default:
			fold.PendingExpense = fold.PendingExpense.Add(entry.Amount)
			if entry.Category.IsServicePending() {
				fold.ServicePendingTotal = fold.ServicePendingTotal.Add(entry.Amount)
			}
		}
	}
	return entries, fold, nil
}

// AllEntries merges bookings (as income rows) and manual transactions into
// one list sorted by date descending.
func (s *FinanceService) AllEntries(ctx context.Context, start, end *time.Time) ([]domain.FinancialEntry, error) {
	if start != nil && end != nil && end.Before(*start) {
		return nil, fmt.Errorf("%w: entries range end before start", apperrors.ErrValidation)
	}
	events, err := s.eventRepo.ListEvents(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "failed to list events for entries view")
		return nil, fmt.Errorf("failed to list events for entries view: %w", err)
	}
	ledger, err := s.financeRepo.ListLedgerEntries(ctx, domain.LedgerFilters{Start: start, End: end})
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions for entries view")
		return nil, fmt.Errorf("failed to list transactions for entries view: %w", err)
	}

	entries := make([]domain.FinancialEntry, 0, len(events)+len(ledger))
	for _, e := range events {
		if e.Category != domain.CategoryEvent {
			continue
		}
		paymentStatus := e.PaymentStatus
		entries = append(entries, domain.FinancialEntry{
			ID:            fmt.Sprintf("event-%d", e.EventID),
			Source:        domain.SourceEvent,
			SourceID:      e.EventID,
			Type:          domain.Income,
			Category:      domain.CategoryEventPayment,
			Description:   e.Title,
			Amount:        e.TotalValue,
			DepositAmount: e.Deposit,
			Date:          e.Start,
			PaymentStatus: &paymentStatus,
			SpaceName:     e.SpaceName,
			Notes:         e.Notes,
		})
	}
	for _, t := range ledger {
		status := t.Status
		entries = append(entries, domain.FinancialEntry{
			ID:          fmt.Sprintf("transaction-%d", t.TransactionID),
			Source:      domain.SourceManual,
			SourceID:    t.TransactionID,
			Type:        t.Type,
			Category:    t.Category,
			Description: t.Description,
			Amount:      t.Amount,
			Date:        t.Date,
			Status:      &status,
			PaidAt:      t.PaidAt,
			EventID:     t.EventID,
			SpaceName:   t.SpaceName,
			Notes:       t.Notes,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

// Forecast sums pending transactions by type inside the window.
func (s *FinanceService) Forecast(ctx context.Context, start, end time.Time) (domain.ForecastSummary, error) {
	if end.Before(start) {
		return domain.ForecastSummary{}, fmt.Errorf("%w: forecast range end before start", apperrors.ErrValidation)
	}
	income, expense, err := s.financeRepo.SumPendingByType(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "failed to compute forecast")
		return domain.ForecastSummary{}, fmt.Errorf("failed to compute forecast: %w", err)
	}
	return domain.ForecastSummary{
		TotalForecastIncome:  income,
		TotalForecastExpense: expense,
	}, nil
}
