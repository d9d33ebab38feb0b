package repositories

import (
	"context"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
)

// EventRepository defines persistence operations for events (bookings).
type EventRepository interface {
	// SaveEvent inserts the event and its professional links in one DB
	// transaction, filling the generated EventID.
	SaveEvent(ctx context.Context, event *domain.Event) error
	FindEventByID(ctx context.Context, eventID int64) (*domain.Event, error)
	// ListEvents returns events ordered by start ascending. A nil range means
	// all time; otherwise events whose start falls in [start, end].
	ListEvents(ctx context.Context, start, end *time.Time) ([]domain.Event, error)
	// UpdateEvent replaces the event row and, when event.ProfessionalIDs is
	// non-nil, its professional links, in one DB transaction.
	UpdateEvent(ctx context.Context, event domain.Event) error
	DeleteEvent(ctx context.Context, eventID int64) error

	// ReconcilePaymentStatus recomputes and persists the derived payment
	// status of an event of category "event" inside a single DB transaction
	// (row-locked read, sum of linked paid income transactions, update).
	// Returns apperrors.ErrNotFound when no such event exists.
	ReconcilePaymentStatus(ctx context.Context, eventID int64) (domain.PaymentStatus, error)
}
