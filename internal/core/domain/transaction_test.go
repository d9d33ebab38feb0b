package domain_test

import (
	"testing"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransactionCategoryValidFor(t *testing.T) {
	assert.True(t, domain.CategoryRental.ValidFor(domain.Income))
	assert.True(t, domain.CategoryEventPayment.ValidFor(domain.Income))
	assert.False(t, domain.CategoryRental.ValidFor(domain.Expense))

	assert.True(t, domain.CategoryCleaning.ValidFor(domain.Expense))
	assert.True(t, domain.CategoryUtilities.ValidFor(domain.Expense))
	assert.False(t, domain.CategoryCleaning.ValidFor(domain.Income))

	assert.False(t, domain.TransactionCategory("snacks").ValidFor(domain.Income))
	assert.False(t, domain.TransactionCategory("snacks").ValidFor(domain.Expense))
}

func TestServicePendingCategories(t *testing.T) {
	// The service-pending subset is fixed: service_cost, professional_payment, cleaning.
	assert.True(t, domain.CategoryServiceCost.IsServicePending())
	assert.True(t, domain.CategoryProfessionalPayment.IsServicePending())
	assert.True(t, domain.CategoryCleaning.IsServicePending())

	assert.False(t, domain.CategoryMaintenance.IsServicePending())
	assert.False(t, domain.CategorySupplies.IsServicePending())
	assert.False(t, domain.CategoryOtherExpense.IsServicePending())
}
