package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/lucasaveiro/gestor_espacos_app/internal/apperrors"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSpaceProfiles(t *testing.T) {
	svc := services.NewContractService()
	profiles := svc.ListSpaceProfiles(context.Background())
	require.Len(t, profiles, 2)
	assert.Equal(t, "estancia-aveiro", profiles[0].Slug)
	assert.Equal(t, "EST", profiles[0].Prefix)
	assert.Equal(t, "rancho-aveiro", profiles[1].Slug)
	assert.Equal(t, "RAN", profiles[1].Prefix)
}

func TestGenerateContract_UnknownSpace(t *testing.T) {
	svc := services.NewContractService()
	_, err := svc.GenerateContract(context.Background(), "sitio-inexistente", domain.ContractData{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGenerateContract_SubstitutesData(t *testing.T) {
	svc := services.NewContractService()
	data := domain.ContractData{
		ClientName:     "Maria Silva",
		EventDate:      "2026-10-15",
		EventStartTime: "18:00",
		EventEndTime:   "23:00",
		TotalValue:     "2500.00",
		DepositValue:   "500.00",
		DepositDueDate: "2026-09-20",
	}

	contract, err := svc.GenerateContract(context.Background(), "estancia-aveiro", data)
	require.NoError(t, err)
	require.Len(t, contract.Clauses, 12)
	assert.True(t, strings.HasPrefix(contract.Number, "EST-"))

	var periodo, valor, pagamento, objeto string
	for _, clause := range contract.Clauses {
		switch clause.ID {
		case "periodo":
			periodo = clause.Content
		case "valor":
			valor = clause.Content
		case "pagamento":
			pagamento = clause.Content
		case "objeto":
			objeto = clause.Content
		}
	}
	assert.Contains(t, periodo, "15/10/2026")
	assert.Contains(t, periodo, "18:00")
	assert.Contains(t, valor, "R$ 2.500,00")
	assert.Contains(t, pagamento, "R$ 500,00")
	assert.Contains(t, pagamento, "20/09/2026")
	assert.Contains(t, objeto, "Estância Aveiro")
	assert.NotContains(t, objeto, "{spaceName}")
}

func TestGenerateContract_EmptyFieldsKeepPlaceholders(t *testing.T) {
	svc := services.NewContractService()
	contract, err := svc.GenerateContract(context.Background(), "rancho-aveiro", domain.ContractData{})
	require.NoError(t, err)

	joined := ""
	for _, clause := range contract.Clauses {
		joined += clause.Content + "\n"
	}
	assert.Contains(t, joined, "[VALOR TOTAL]")
	assert.Contains(t, joined, "[DATA DO EVENTO]")
	assert.NotContains(t, joined, "{totalValue}")
	assert.NotContains(t, joined, "{eventDate}")
}

func TestGenerateContract_KeepsProvidedNumber(t *testing.T) {
	svc := services.NewContractService()
	contract, err := svc.GenerateContract(context.Background(), "rancho-aveiro", domain.ContractData{ContractNumber: "RAN-20260901"})
	require.NoError(t, err)
	assert.Equal(t, "RAN-20260901", contract.Number)
}
