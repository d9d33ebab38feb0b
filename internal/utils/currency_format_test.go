package utils_test

import (
	"testing"

	"github.com/lucasaveiro/gestor_espacos_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"0", "R$ 0,00"},
		{"12.3", "R$ 12,30"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"-450", "-R$ 450,00"},
	}
	for _, tc := range testCases {
		got := utils.FormatBRL(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.expected, got)
	}
}

func TestFormatDateBR(t *testing.T) {
	assert.Equal(t, "25/12/2026", utils.FormatDateBR("2026-12-25"))
	assert.Equal(t, "01/02/2026", utils.FormatDateBR("2026-02-01"))
	// non-ISO inputs pass through untouched
	assert.Equal(t, "25/12/2026", utils.FormatDateBR("25/12/2026"))
	assert.Equal(t, "", utils.FormatDateBR(""))
}
