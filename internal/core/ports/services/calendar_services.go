package services

import (
	"context"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
)

// CalendarService defines the merged agenda view and the iCalendar feed.
type CalendarService interface {
	// Agenda returns events and service tasks merged into one chronological
	// list (sorted by start ascending).
	Agenda(ctx context.Context, start, end *time.Time) ([]domain.AgendaEntry, error)

	// ICSFeed renders the bookings in the range as an iCalendar document.
	ICSFeed(ctx context.Context, start, end *time.Time) ([]byte, error)
}
