package domain_test

import (
	"testing"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestClassifyPayment(t *testing.T) {
	testCases := []struct {
		name           string
		totalValue     string
		deposit        string
		additionalPaid string
		expected       domain.PaymentStatus
	}{
		{"nothing paid", "1000", "0", "0", domain.PaymentUnpaid},
		{"deposit only is partial", "1000", "200", "0", domain.PaymentPartial},
		{"deposit plus payment below total", "1000", "200", "300", domain.PaymentPartial},
		{"exactly total is paid, not partial", "1000", "200", "800", domain.PaymentPaid},
		{"over total is paid", "1000", "200", "900", domain.PaymentPaid},
		{"deposit clamped to total", "500", "800", "0", domain.PaymentPaid},
		{"clamped deposit does not overpay alone", "500", "800", "0", domain.PaymentPaid},
		{"zero total is always paid", "0", "0", "0", domain.PaymentPaid},
		{"zero total with deposit is still paid", "0", "100", "0", domain.PaymentPaid},
		{"cent boundary below total", "100.00", "0", "99.99", domain.PaymentPartial},
		{"cent boundary at total", "100.00", "0", "100.00", domain.PaymentPaid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ClassifyPayment(d(tc.totalValue), d(tc.deposit), d(tc.additionalPaid))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestReceivedAmountCapsAtTotal(t *testing.T) {
	// deposit 100 + payments 400 on a 500 total: received the full 500
	received := domain.ReceivedAmount(d("500"), d("100"), d("400"))
	assert.True(t, received.Equal(d("500")), "received = %s", received)

	// overpayment never exceeds the contracted value
	received = domain.ReceivedAmount(d("500"), d("100"), d("900"))
	assert.True(t, received.Equal(d("500")), "received = %s", received)

	// deposit above total counts as the total, not more
	received = domain.ReceivedAmount(d("300"), d("450"), d("0"))
	assert.True(t, received.Equal(d("300")), "received = %s", received)
}

func TestPendingAmountNeverNegative(t *testing.T) {
	pending := domain.PendingAmount(d("1000"), d("200"), d("300"))
	assert.True(t, pending.Equal(d("500")), "pending = %s", pending)

	pending = domain.PendingAmount(d("1000"), d("200"), d("1500"))
	assert.True(t, pending.IsZero(), "pending = %s", pending)
}
