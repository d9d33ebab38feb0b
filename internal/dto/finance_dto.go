package dto

import (
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateRangeParams binds the optional period filter shared by the finance
// endpoints. Dates are YYYY-MM-DD.
type DateRangeParams struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

// LedgerParams binds the ledger filter set.
type LedgerParams struct {
	Start    string `form:"start"`
	End      string `form:"end"`
	Type     string `form:"type"`
	Status   string `form:"status"`
	Category string `form:"category"`
	Search   string `form:"search"`
}

// LedgerEntryResponse is one row of the finance screen.
type LedgerEntryResponse struct {
	TransactionResponse
	Reference string `json:"reference"`
	SpaceName string `json:"spaceName"`
}

// LedgerResponse bundles the filtered entries with their summary fold.
type LedgerResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Summary domain.LedgerSummary  `json:"summary"`
}

// FinancialEntryResponse is one row of the merged financial data view.
type FinancialEntryResponse struct {
	ID            string          `json:"id"`
	Source        string          `json:"source"`
	SourceID      int64           `json:"sourceID"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	Date          time.Time       `json:"date"`
	PaymentStatus *string         `json:"paymentStatus"`
	Status        *string         `json:"status"`
	PaidAt        *time.Time      `json:"paidAt"`
	EventID       *int64          `json:"eventID"`
	SpaceName     string          `json:"spaceName"`
	Notes         string          `json:"notes"`
}

// ListFinancialEntriesResponse wraps the merged financial data view.
type ListFinancialEntriesResponse struct {
	Entries []FinancialEntryResponse `json:"entries"`
}

// ToLedgerEntryResponse converts a domain ledger entry to its API representation.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		TransactionResponse: ToTransactionResponse(&e.Transaction),
		Reference:           e.Reference,
		SpaceName:           e.SpaceName,
	}
}

// ToFinancialEntryResponse converts a merged financial entry to its API representation.
func ToFinancialEntryResponse(e *domain.FinancialEntry) FinancialEntryResponse {
	resp := FinancialEntryResponse{
		ID:            e.ID,
		Source:        string(e.Source),
		SourceID:      e.SourceID,
		Type:          string(e.Type),
		Category:      string(e.Category),
		Description:   e.Description,
		Amount:        e.Amount,
		DepositAmount: e.DepositAmount,
		Date:          e.Date,
		PaidAt:        e.PaidAt,
		EventID:       e.EventID,
		SpaceName:     e.SpaceName,
		Notes:         e.Notes,
	}
	if e.PaymentStatus != nil {
		s := string(*e.PaymentStatus)
		resp.PaymentStatus = &s
	}
	if e.Status != nil {
		s := string(*e.Status)
		resp.Status = &s
	}
	return resp
}
