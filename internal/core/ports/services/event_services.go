package services

import (
	"context"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/lucasaveiro/gestor_espacos_app/internal/dto"
)

// EventReconciler recomputes the derived payment status of an event.
// Implemented by the event service; consumed by the transaction service
// after every income-transaction write.
type EventReconciler interface {
	// ReconcilePayment recomputes and persists the payment status of the
	// event. A missing event (deletion race) or an event whose category is
	// not "event" is a silent no-op, not an error.
	ReconcilePayment(ctx context.Context, eventID int64) error
}

// EventService defines operations for managing events (bookings).
type EventService interface {
	EventReconciler

	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error)
	GetEventByID(ctx context.Context, eventID int64) (*domain.Event, error)
	ListEvents(ctx context.Context, start, end *time.Time) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, eventID int64, req dto.UpdateEventRequest) (*domain.Event, error)
	DeleteEvent(ctx context.Context, eventID int64) error
}
