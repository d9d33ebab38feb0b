package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a manual ledger entry is income or expense.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether the type is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// TransactionStatus indicates whether a manual ledger entry was settled.
type TransactionStatus string

const (
	StatusPaid    TransactionStatus = "paid"
	StatusPending TransactionStatus = "pending"
)

// IsValid reports whether the status is one of the known transaction states.
func (s TransactionStatus) IsValid() bool {
	return s == StatusPaid || s == StatusPending
}

// TransactionCategory is the business category of a manual ledger entry.
// The enumerations are fixed; they must match the finance UI exactly.
type TransactionCategory string

const (
	// Income categories.
	CategoryEventPayment      TransactionCategory = "event_payment"
	CategoryDeposit           TransactionCategory = "deposit"
	CategoryRental            TransactionCategory = "rental"
	CategoryRentalInstallment TransactionCategory = "rental_installment"
	CategoryOtherIncome       TransactionCategory = "other_income"

	// Expense categories.
	CategoryServiceCost         TransactionCategory = "service_cost"
	CategoryMaintenance         TransactionCategory = "maintenance"
	CategorySupplies            TransactionCategory = "supplies"
	CategoryUtilities           TransactionCategory = "utilities"
	CategoryProfessionalPayment TransactionCategory = "professional_payment"
	CategoryCleaning            TransactionCategory = "cleaning"
	CategoryOtherExpense        TransactionCategory = "other_expense"
)

var incomeCategories = map[TransactionCategory]bool{
	CategoryEventPayment:      true,
	CategoryDeposit:           true,
	CategoryRental:            true,
	CategoryRentalInstallment: true,
	CategoryOtherIncome:       true,
}

var expenseCategories = map[TransactionCategory]bool{
	CategoryServiceCost:         true,
	CategoryMaintenance:         true,
	CategorySupplies:            true,
	CategoryUtilities:           true,
	CategoryProfessionalPayment: true,
	CategoryCleaning:            true,
	CategoryOtherExpense:        true,
}

// ValidFor reports whether the category belongs to the given transaction type.
func (c TransactionCategory) ValidFor(t TransactionType) bool {
	if t == Income {
		return incomeCategories[c]
	}
	return expenseCategories[c]
}

// IsServicePending reports whether the category counts toward the
// service-pending forecast bucket (operational service costs).
func (c TransactionCategory) IsServicePending() bool {
	switch c {
	case CategoryServiceCost, CategoryProfessionalPayment, CategoryCleaning:
		return true
	}
	return false
}

// Transaction represents a manual financial entry, optionally tied to an
// event (deposits, installments) or a service task (its cost).
//
// Invariant: PaidAt is non-nil if and only if Status is paid. Enforced on
// every write, not just on read.
type Transaction struct {
	TransactionID int64               `json:"transactionID"`
	Type          TransactionType     `json:"type"`
	Category      TransactionCategory `json:"category"`
	Description   string              `json:"description"`
	Amount        decimal.Decimal     `json:"amount"` // Positive; precise decimal type
	Date          time.Time           `json:"date"`   // Due/expected date
	Status        TransactionStatus   `json:"status"`
	PaidAt        *time.Time          `json:"paidAt"`        // Set only when Status is paid
	EventID       *int64              `json:"eventID"`       // Nullable FK -> Event
	ServiceTaskID *int64              `json:"serviceTaskID"` // Nullable FK -> ServiceTask
	Notes         string              `json:"notes"`
	AuditFields
}
