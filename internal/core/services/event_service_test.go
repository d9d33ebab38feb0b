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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EventServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEventRepository
	service  *services.EventService
	ctx      context.Context
}

func (s *EventServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockEventRepository)
	s.service = services.NewEventService(s.mockRepo)
	s.ctx = context.Background()
}

func (s *EventServiceTestSuite) TestCreateEvent_DepositMakesPartial() {
	start := time.Date(2026, 10, 10, 18, 0, 0, 0, time.UTC)
	req := dto.CreateEventRequest{
		Title:      "Casamento",
		Category:   "event",
		Start:      start,
		End:        start.Add(6 * time.Hour),
		TotalValue: decimal.RequireFromString("1000"),
		Deposit:    decimal.RequireFromString("300"),
		SpaceID:    1,
	}

	s.mockRepo.On("SaveEvent", s.ctx, mock.MatchedBy(func(e *domain.Event) bool {
		return e.PaymentStatus == domain.PaymentPartial && e.Status == domain.EventPending
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Event).EventID = 42
	}).Return(nil).Once()
	s.mockRepo.On("FindEventByID", s.ctx, int64(42)).Return(&domain.Event{EventID: 42}, nil).Once()

	event, err := s.service.CreateEvent(s.ctx, req)
	s.NoError(err)
	s.Equal(int64(42), event.EventID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *EventServiceTestSuite) TestCreateEvent_ZeroTotalIsPaid() {
	start := time.Date(2026, 10, 10, 18, 0, 0, 0, time.UTC)
	req := dto.CreateEventRequest{
		Title:    "Visita guiada",
		Category: "event",
		Start:    start,
		End:      start.Add(time.Hour),
		SpaceID:  1,
	}

	s.mockRepo.On("SaveEvent", s.ctx, mock.MatchedBy(func(e *domain.Event) bool {
		return e.PaymentStatus == domain.PaymentPaid
	})).Return(nil).Once()
	s.mockRepo.On("FindEventByID", s.ctx, mock.Anything).Return(&domain.Event{}, nil).Once()

	_, err := s.service.CreateEvent(s.ctx, req)
	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *EventServiceTestSuite) TestCreateEvent_InvalidCategory() {
	req := dto.CreateEventRequest{
		Title:    "X",
		Category: "party",
		Start:    time.Now(),
		End:      time.Now().Add(time.Hour),
		SpaceID:  1,
	}
	_, err := s.service.CreateEvent(s.ctx, req)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveEvent")
}

func (s *EventServiceTestSuite) TestCreateEvent_EndBeforeStart() {
	start := time.Date(2026, 10, 10, 18, 0, 0, 0, time.UTC)
	req := dto.CreateEventRequest{
		Title:    "X",
		Category: "event",
		Start:    start,
		End:      start.Add(-time.Hour),
		SpaceID:  1,
	}
	_, err := s.service.CreateEvent(s.ctx, req)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EventServiceTestSuite) TestReconcilePayment_PersistsStatus() {
	s.mockRepo.On("ReconcilePaymentStatus", s.ctx, int64(7)).Return(domain.PaymentPaid, nil).Once()

	err := s.service.ReconcilePayment(s.ctx, 7)
	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *EventServiceTestSuite) TestReconcilePayment_MissingEventIsNoOp() {
	s.mockRepo.On("ReconcilePaymentStatus", s.ctx, int64(99)).Return(domain.PaymentStatus(""), apperrors.ErrNotFound).Once()

	err := s.service.ReconcilePayment(s.ctx, 99)
	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *EventServiceTestSuite) TestReconcilePayment_RepoErrorPropagates() {
	s.mockRepo.On("ReconcilePaymentStatus", s.ctx, int64(7)).Return(domain.PaymentStatus(""), assert.AnError).Once()

	err := s.service.ReconcilePayment(s.ctx, 7)
	s.Error(err)
}

func (s *EventServiceTestSuite) TestUpdateEvent_ReconcilesAfterWrite() {
	start := time.Date(2026, 10, 10, 18, 0, 0, 0, time.UTC)
	existing := &domain.Event{
		EventID:         5,
		Title:           "Aniversário",
		Category:        domain.CategoryEvent,
		Start:           start,
		End:             start.Add(4 * time.Hour),
		Status:          domain.EventConfirmed,
		ContractStatus:  domain.ContractNone,
		TotalValue:      decimal.RequireFromString("500"),
		Deposit:         decimal.RequireFromString("100"),
		PaymentStatus:   domain.PaymentPartial,
		SpaceID:         1,
		ProfessionalIDs: []int64{},
	}
	newTotal := decimal.RequireFromString("800")

	s.mockRepo.On("FindEventByID", s.ctx, int64(5)).Return(existing, nil).Once()
	s.mockRepo.On("UpdateEvent", s.ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.TotalValue.Equal(newTotal)
	})).Return(nil).Once()
	s.mockRepo.On("ReconcilePaymentStatus", s.ctx, int64(5)).Return(domain.PaymentPartial, nil).Once()
	s.mockRepo.On("FindEventByID", s.ctx, int64(5)).Return(existing, nil).Once()

	_, err := s.service.UpdateEvent(s.ctx, 5, dto.UpdateEventRequest{TotalValue: &newTotal})
	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func TestEventService(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
