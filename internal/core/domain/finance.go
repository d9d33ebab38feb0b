package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventIncomeSummary aggregates the financial state of booked events.
type EventIncomeSummary struct {
	Total            decimal.Decimal `json:"total"`            // Sum of contracted values
	DepositsReceived decimal.Decimal `json:"depositsReceived"` // Amounts effectively received (deposits + payments)
	PendingPayments  decimal.Decimal `json:"pendingPayments"`
	PaidEvents       int             `json:"paidEvents"`
	PartialEvents    int             `json:"partialEvents"`
	UnpaidEvents     int             `json:"unpaidEvents"`
	EventCount       int             `json:"eventCount"`
}

// CategoryTotals accumulates income and expense per business category.
type CategoryTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthTotals accumulates income, expense and event counts per YYYY-MM key.
type MonthTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Events  int             `json:"events"`
}

// SpaceTotals accumulates event income per space name.
type SpaceTotals struct {
	Income decimal.Decimal `json:"income"`
	Events int             `json:"events"`
}

// ForecastSummary holds pending amounts inside a future window.
type ForecastSummary struct {
	TotalForecastIncome  decimal.Decimal `json:"totalForecastIncome"`
	TotalForecastExpense decimal.Decimal `json:"totalForecastExpense"`
}

// FinancialSummary is the on-demand aggregation over events and manual
// transactions for a date range. It is never persisted.
type FinancialSummary struct {
	EventIncome         EventIncomeSummary        `json:"eventIncome"`
	ManualIncome        decimal.Decimal           `json:"manualIncome"`  // Paid only
	ManualExpense       decimal.Decimal           `json:"manualExpense"` // Paid only
	TotalIncome         decimal.Decimal           `json:"totalIncome"`
	TotalExpense        decimal.Decimal           `json:"totalExpense"`
	Balance             decimal.Decimal           `json:"balance"`
	ServicePendingTotal decimal.Decimal           `json:"servicePendingTotal"`
	ByCategory          map[string]CategoryTotals `json:"byCategory"`
	ByMonth             map[string]MonthTotals    `json:"byMonth"`
	BySpace             map[string]SpaceTotals    `json:"bySpace"`
	Forecast            ForecastSummary           `json:"forecast"`
}

// EventSummaryRow is the slice of an event the summary fold needs.
type EventSummaryRow struct {
	EventID    int64
	TotalValue decimal.Decimal
	Deposit    decimal.Decimal
	Start      time.Time
	SpaceName  string
}

// TransactionSummaryRow is the slice of a transaction the summary fold needs.
type TransactionSummaryRow struct {
	EventID  *int64
	Type     TransactionType
	Category TransactionCategory
	Amount   decimal.Decimal
	Date     time.Time
	Status   TransactionStatus
}

// LedgerEntry is a manual transaction enriched with display references:
// the linked event's title or the linked service task's service-type name,
// and the space it concerns.
type LedgerEntry struct {
	Transaction
	Reference string `json:"reference"` // Event title, service-type name, or "-"
	SpaceName string `json:"spaceName"` // From linked event's or task's space
}

// LedgerSummary is the fold over the filtered ledger entries, split by status.
type LedgerSummary struct {
	PaidIncome          decimal.Decimal `json:"paidIncome"`
	PaidExpense         decimal.Decimal `json:"paidExpense"`
	PendingIncome       decimal.Decimal `json:"pendingIncome"`
	PendingExpense      decimal.Decimal `json:"pendingExpense"`
	ServicePendingTotal decimal.Decimal `json:"servicePendingTotal"`
}

// LedgerFilters constrains the ledger listing. Empty or "all" string fields
// and nil dates mean no constraint on that dimension. Filters are
// AND-combined.
type LedgerFilters struct {
	Start    *time.Time
	End      *time.Time
	Type     string // "income", "expense"
	Status   string // "paid", "pending"
	Category string
	Search   string // Substring over description, notes, category
}

// EntrySource tags a merged financial entry by its origin.
type EntrySource string

const (
	SourceEvent  EntrySource = "event"
	SourceManual EntrySource = "manual"
)

// FinancialEntry is one row of the merged "all financial data" view: events
// expressed as income entries plus manual transactions, sorted by date.
type FinancialEntry struct {
	ID            string              `json:"id"` // "event-<id>" or "transaction-<id>"
	Source        EntrySource         `json:"source"`
	SourceID      int64               `json:"sourceID"`
	Type          TransactionType     `json:"type"`
	Category      TransactionCategory `json:"category"`
	Description   string              `json:"description"`
	Amount        decimal.Decimal     `json:"amount"`
	DepositAmount decimal.Decimal     `json:"depositAmount"`
	Date          time.Time           `json:"date"`
	PaymentStatus *PaymentStatus      `json:"paymentStatus"` // Event entries only
	Status        *TransactionStatus  `json:"status"`        // Manual entries only
	PaidAt        *time.Time          `json:"paidAt"`        // Manual entries only
	EventID       *int64              `json:"eventID"`
	SpaceName     string              `json:"spaceName"`
	Notes         string              `json:"notes"`
}
