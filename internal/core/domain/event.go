package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventCategory distinguishes confirmed bookings from visits and proposals.
type EventCategory string

const (
	CategoryEvent    EventCategory = "event"
	CategoryVisit    EventCategory = "visit"
	CategoryProposal EventCategory = "proposal"
)

// IsValid reports whether the category is one of the known event categories.
func (c EventCategory) IsValid() bool {
	switch c {
	case CategoryEvent, CategoryVisit, CategoryProposal:
		return true
	}
	return false
}

// EventStatus indicates the booking state of an event.
type EventStatus string

const (
	EventConfirmed EventStatus = "confirmed"
	EventPending   EventStatus = "pending"
	EventCancelled EventStatus = "cancelled"
)

// IsValid reports whether the status is one of the known event states.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventConfirmed, EventPending, EventCancelled:
		return true
	}
	return false
}

// ContractStatus tracks the rental contract lifecycle for an event.
type ContractStatus string

const (
	ContractNone   ContractStatus = "none"
	ContractDraft  ContractStatus = "draft"
	ContractSigned ContractStatus = "signed"
)

// IsValid reports whether the status is one of the known contract states.
func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractNone, ContractDraft, ContractSigned:
		return true
	}
	return false
}

// PaymentStatus is the derived payment state of an event. For events of
// category "event" it is never set directly by callers; it always equals the
// reconciliation result over the event's deposit and linked paid income
// transactions.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Event represents a booking of a space for a date range, with its own
// financial terms (total value and deposit).
type Event struct {
	EventID        int64           `json:"eventID"`
	Title          string          `json:"title"`
	Category       EventCategory   `json:"category"`
	Start          time.Time       `json:"start"`
	End            time.Time       `json:"end"`
	Status         EventStatus     `json:"status"`
	ContractStatus ContractStatus  `json:"contractStatus"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	Deposit        decimal.Decimal `json:"deposit"` // Stored unclamped; clamped only when computing payment state
	PaymentStatus  PaymentStatus   `json:"paymentStatus"`
	SpaceID        int64           `json:"spaceID"`
	ClientID       *int64          `json:"clientID"` // Nullable FK -> Client
	Notes          string          `json:"notes"`
	AuditFields

	// Professionals assigned to the event. Persisted via a join table.
	ProfessionalIDs []int64 `json:"professionalIDs,omitempty"`

	// Denormalized for display, populated by list queries.
	SpaceName  string `json:"spaceName,omitempty"`
	ClientName string `json:"clientName,omitempty"`
}

// ClassifyPayment computes the payment status of an event from its total
// value, its deposit and the sum of paid income transactions linked to it.
// The deposit is clamped to the total value so that stale data entry
// (deposit > total) can never mark an event overpaid on its own. An event
// with a zero total is always paid.
func ClassifyPayment(totalValue, deposit, additionalPaid decimal.Decimal) PaymentStatus {
	totalPaid := clampedDeposit(totalValue, deposit).Add(additionalPaid)
	switch {
	case totalPaid.GreaterThanOrEqual(totalValue):
		return PaymentPaid
	case totalPaid.IsPositive():
		return PaymentPartial
	default:
		return PaymentUnpaid
	}
}

// ReceivedAmount returns the amount effectively received for an event,
// capped at the total value: min(clamped deposit + paid transactions, total).
func ReceivedAmount(totalValue, deposit, additionalPaid decimal.Decimal) decimal.Decimal {
	received := clampedDeposit(totalValue, deposit).Add(additionalPaid)
	if received.GreaterThan(totalValue) {
		return totalValue
	}
	return received
}

// PendingAmount returns the outstanding amount for an event, never negative.
func PendingAmount(totalValue, deposit, additionalPaid decimal.Decimal) decimal.Decimal {
	pending := totalValue.Sub(ReceivedAmount(totalValue, deposit, additionalPaid))
	if pending.IsNegative() {
		return decimal.Zero
	}
	return pending
}

func clampedDeposit(totalValue, deposit decimal.Decimal) decimal.Decimal {
	if deposit.GreaterThan(totalValue) {
		return totalValue
	}
	return deposit
}
