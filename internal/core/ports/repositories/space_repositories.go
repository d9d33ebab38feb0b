package repositories

import (
	"context"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
)

// SpaceRepository defines persistence operations for spaces.
type SpaceRepository interface {
	SaveSpace(ctx context.Context, space *domain.Space) error
	FindSpaceByID(ctx context.Context, spaceID int64) (*domain.Space, error)
	ListSpaces(ctx context.Context) ([]domain.Space, error)
	UpdateSpace(ctx context.Context, space domain.Space) error
	DeleteSpace(ctx context.Context, spaceID int64) error
}
