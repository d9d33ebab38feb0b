package dto

import (
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEventRequest is the payload for creating an event. The payment
// status is derived server-side and intentionally absent.
type CreateEventRequest struct {
	Title           string          `json:"title" binding:"required"`
	Category        string          `json:"category" binding:"required"`
	Start           time.Time       `json:"start" binding:"required"`
	End             time.Time       `json:"end" binding:"required"`
	Status          string          `json:"status"`         // Defaults to pending
	ContractStatus  string          `json:"contractStatus"` // Defaults to none
	TotalValue      decimal.Decimal `json:"totalValue"`
	Deposit         decimal.Decimal `json:"deposit"`
	SpaceID         int64           `json:"spaceID" binding:"required"`
	ClientID        *int64          `json:"clientID"`
	Notes           string          `json:"notes"`
	ProfessionalIDs []int64         `json:"professionalIDs"`
}

// UpdateEventRequest is the payload for updating an event. Nil fields are
// left unchanged; ProfessionalIDs replaces the full assignment when present.
type UpdateEventRequest struct {
	Title           *string          `json:"title"`
	Category        *string          `json:"category"`
	Start           *time.Time       `json:"start"`
	End             *time.Time       `json:"end"`
	Status          *string          `json:"status"`
	ContractStatus  *string          `json:"contractStatus"`
	TotalValue      *decimal.Decimal `json:"totalValue"`
	Deposit         *decimal.Decimal `json:"deposit"`
	SpaceID         *int64           `json:"spaceID"`
	ClientID        *int64           `json:"clientID"`
	Notes           *string          `json:"notes"`
	ProfessionalIDs []int64          `json:"professionalIDs"`
}

// EventResponse is the API representation of an event.
type EventResponse struct {
	EventID         int64           `json:"eventID"`
	Title           string          `json:"title"`
	Category        string          `json:"category"`
	Start           time.Time       `json:"start"`
	End             time.Time       `json:"end"`
	Status          string          `json:"status"`
	ContractStatus  string          `json:"contractStatus"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	Deposit         decimal.Decimal `json:"deposit"`
	PaymentStatus   string          `json:"paymentStatus"`
	SpaceID         int64           `json:"spaceID"`
	SpaceName       string          `json:"spaceName,omitempty"`
	ClientID        *int64          `json:"clientID"`
	ClientName      string          `json:"clientName,omitempty"`
	Notes           string          `json:"notes"`
	ProfessionalIDs []int64         `json:"professionalIDs,omitempty"`
}

// ListEventsResponse wraps a list of events.
type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

// ToEventResponse converts a domain event to its API representation.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:         e.EventID,
		Title:           e.Title,
		Category:        string(e.Category),
		Start:           e.Start,
		End:             e.End,
		Status:          string(e.Status),
		ContractStatus:  string(e.ContractStatus),
		TotalValue:      e.TotalValue,
		Deposit:         e.Deposit,
		PaymentStatus:   string(e.PaymentStatus),
		SpaceID:         e.SpaceID,
		SpaceName:       e.SpaceName,
		ClientID:        e.ClientID,
		ClientName:      e.ClientName,
		Notes:           e.Notes,
		ProfessionalIDs: e.ProfessionalIDs,
	}
}
