package dto

import (
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for creating a manual transaction.
type CreateTransactionRequest struct {
	Type          string          `json:"type" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	Status        string          `json:"status"` // Defaults to paid
	EventID       *int64          `json:"eventID"`
	ServiceTaskID *int64          `json:"serviceTaskID"`
	Notes         string          `json:"notes"`
}

// UpdateTransactionRequest is the payload for updating a transaction.
// Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	Type          *string          `json:"type"`
	Category      *string          `json:"category"`
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	Date          *time.Time       `json:"date"`
	Status        *string          `json:"status"`
	EventID       *int64           `json:"eventID"`
	ServiceTaskID *int64           `json:"serviceTaskID"`
	Notes         *string          `json:"notes"`
}

// UpdateTransactionStatusRequest toggles a transaction between paid and pending.
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TransactionResponse is the API representation of a transaction.
type TransactionResponse struct {
	TransactionID int64           `json:"transactionID"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Status        string          `json:"status"`
	PaidAt        *time.Time      `json:"paidAt"`
	EventID       *int64          `json:"eventID"`
	ServiceTaskID *int64          `json:"serviceTaskID"`
	Notes         string          `json:"notes"`
}

// ListTransactionsResponse wraps a list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain transaction to its API representation.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Type:          string(t.Type),
		Category:      string(t.Category),
		Description:   t.Description,
		Amount:        t.Amount,
		Date:          t.Date,
		Status:        string(t.Status),
		PaidAt:        t.PaidAt,
		EventID:       t.EventID,
		ServiceTaskID: t.ServiceTaskID,
		Notes:         t.Notes,
	}
}
