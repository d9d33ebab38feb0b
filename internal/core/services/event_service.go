package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/apperrors"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	portsrepo "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/repositories"
	portssvc "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/services"
	"github.com/lucasaveiro/gestor_espacos_app/internal/dto"
	"github.com/shopspring/decimal"
)

type EventService struct {
	BaseService
	eventRepo portsrepo.EventRepository
}

// NewEventService creates a new event service.
func NewEventService(eventRepo portsrepo.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

var _ portssvc.EventService = (*EventService)(nil)

func (s *EventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error) {
	category := domain.EventCategory(req.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: invalid event category %q", apperrors.ErrValidation, req.Category)
	}
	status := domain.EventStatus(req.Status)
	if req.Status == "" {
		status = domain.EventPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: invalid event status %q", apperrors.ErrValidation, req.Status)
	}
	contractStatus := domain.ContractStatus(req.ContractStatus)
	if req.ContractStatus == "" {
		contractStatus = domain.ContractNone
	}
	if !contractStatus.IsValid() {
		return nil, fmt.Errorf("%w: invalid contract status %q", apperrors.ErrValidation, req.ContractStatus)
	}
	if req.End.Before(req.Start) {
		return nil, fmt.Errorf("%w: event end before start", apperrors.ErrValidation)
	}
	if req.TotalValue.IsNegative() || req.Deposit.IsNegative() {
		return nil, fmt.Errorf("%w: negative monetary value", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	event := domain.Event{
		Title:          req.Title,
		Category:       category,
		Start:          req.Start,
		End:            req.End,
		Status:         status,
		ContractStatus: contractStatus,
		TotalValue:     req.TotalValue,
		Deposit:        req.Deposit,
		// No transactions can exist yet, so the deposit alone decides.
		PaymentStatus:   domain.ClassifyPayment(req.TotalValue, req.Deposit, decimal.Zero),
		SpaceID:         req.SpaceID,
		ClientID:        req.ClientID,
		Notes:           req.Notes,
		ProfessionalIDs: req.ProfessionalIDs,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.eventRepo.SaveEvent(ctx, &event); err != nil {
		s.LogError(ctx, err, "failed to create event")
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return s.eventRepo.FindEventByID(ctx, event.EventID)
}

func (s *EventService) GetEventByID(ctx context.Context, eventID int64) (*domain.Event, error) {
	return s.eventRepo.FindEventByID(ctx, eventID)
}

func (s *EventService) ListEvents(ctx context.Context, start, end *time.Time) ([]domain.Event, error) {
	events, err := s.eventRepo.ListEvents(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "failed to list events")
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, eventID int64, req dto.UpdateEventRequest) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Category != nil {
		category := domain.EventCategory(*req.Category)
		if !category.IsValid() {
			return nil, fmt.Errorf("%w: invalid event category %q", apperrors.ErrValidation, *req.Category)
		}
		event.Category = category
	}
	if req.Start != nil {
		event.Start = *req.Start
	}
	if req.End != nil {
		event.End = *req.End
	}
	if event.End.Before(event.Start) {
		return nil, fmt.Errorf("%w: event end before start", apperrors.ErrValidation)
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: invalid event status %q", apperrors.ErrValidation, *req.Status)
		}
		event.Status = status
	}
	if req.ContractStatus != nil {
		contractStatus := domain.ContractStatus(*req.ContractStatus)
		if !contractStatus.IsValid() {
			return nil, fmt.Errorf("%w: invalid contract status %q", apperrors.ErrValidation, *req.ContractStatus)
		}
		event.ContractStatus = contractStatus
	}
	if req.TotalValue != nil {
		if req.TotalValue.IsNegative() {
			return nil, fmt.Errorf("%w: negative total value", apperrors.ErrValidation)
		}
		event.TotalValue = *req.TotalValue
	}
	if req.Deposit != nil {
		if req.Deposit.IsNegative() {
			return nil, fmt.Errorf("%w: negative deposit", apperrors.ErrValidation)
		}
		event.Deposit = *req.Deposit
	}
	if req.SpaceID != nil {
		event.SpaceID = *req.SpaceID
	}
	if req.ClientID != nil {
		event.ClientID = req.ClientID
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}
	if req.ProfessionalIDs != nil {
		event.ProfessionalIDs = req.ProfessionalIDs
	} else {
		// Leave the existing links untouched.
		event.ProfessionalIDs = nil
	}
	event.LastUpdatedAt = time.Now().UTC()

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		s.LogError(ctx, err, "failed to update event", "event_id", eventID)
		return nil, err
	}
	// Financial fields may have moved, recompute the derived status.
	if err := s.ReconcilePayment(ctx, eventID); err != nil {
		return nil, err
	}
	return s.eventRepo.FindEventByID(ctx, eventID)
}

func (s *EventService) DeleteEvent(ctx context.Context, eventID int64) error {
	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		return err
	}
	s.LogInfo(ctx, "event deleted", "event_id", eventID)
	return nil
}

// ReconcilePayment recomputes and persists the payment status of a booking.
// Events that are missing or not of category "event" are a silent no-op so
// that transaction writes never fail on a concurrent event deletion.
func (s *EventService) ReconcilePayment(ctx context.Context, eventID int64) error {
	status, err := s.eventRepo.ReconcilePaymentStatus(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "payment reconcile skipped, no booking found", "event_id", eventID)
			return nil
		}
		s.LogError(ctx, err, "failed to reconcile payment status", "event_id", eventID)
		return fmt.Errorf("failed to reconcile payment status for event %d: %w", eventID, err)
	}
	s.LogDebug(ctx, "payment status reconciled", "event_id", eventID, "payment_status", string(status))
	return nil
}
