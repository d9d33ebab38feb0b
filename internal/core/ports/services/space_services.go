package services

import (
	"context"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/lucasaveiro/gestor_espacos_app/internal/dto"
)

// SpaceService defines operations for managing spaces.
type SpaceService interface {
	CreateSpace(ctx context.Context, req dto.CreateSpaceRequest) (*domain.Space, error)
	GetSpaceByID(ctx context.Context, spaceID int64) (*domain.Space, error)
	ListSpaces(ctx context.Context) ([]domain.Space, error)
	UpdateSpace(ctx context.Context, spaceID int64, req dto.UpdateSpaceRequest) (*domain.Space, error)
	DeleteSpace(ctx context.Context, spaceID int64) error
}
