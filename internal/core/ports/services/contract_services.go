package services

import (
	"context"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
)

// ContractService defines rental contract generation operations.
type ContractService interface {
	// ListSpaceProfiles returns the contract profiles of the configured spaces.
	ListSpaceProfiles(ctx context.Context) []domain.SpaceProfile

	// GenerateContract substitutes the contract data into the default clause
	// set for the space identified by slug. Unknown slugs return
	// apperrors.ErrNotFound.
	GenerateContract(ctx context.Context, spaceSlug string, data domain.ContractData) (*domain.GeneratedContract, error)
}
