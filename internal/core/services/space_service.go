package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	portsrepo "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/repositories"
	portssvc "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/services"
	"github.com/lucasaveiro/gestor_espacos_app/internal/dto"
)

type SpaceService struct {
	BaseService
	spaceRepo portsrepo.SpaceRepository
}

// NewSpaceService creates a new space service.
func NewSpaceService(spaceRepo portsrepo.SpaceRepository) *SpaceService {
	return &SpaceService{spaceRepo: spaceRepo}
}

var _ portssvc.SpaceService = (*SpaceService)(nil)

func (s *SpaceService) CreateSpace(ctx context.Context, req dto.CreateSpaceRequest) (*domain.Space, error) {
	now := time.Now().UTC()
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	space := domain.Space{
		Name:    req.Name,
		Address: req.Address,
		Active:  active,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.spaceRepo.SaveSpace(ctx, &space); err != nil {
		s.LogError(ctx, err, "failed to create space")
		return nil, fmt.Errorf("failed to create space: %w", err)
	}
	return &space, nil
}

func (s *SpaceService) GetSpaceByID(ctx context.Context, spaceID int64) (*domain.Space, error) {
	space, err := s.spaceRepo.FindSpaceByID(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	return space, nil
}

func (s *SpaceService) ListSpaces(ctx context.Context) ([]domain.Space, error) {
	spaces, err := s.spaceRepo.ListSpaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list spaces")
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}
	return spaces, nil
}

func (s *SpaceService) UpdateSpace(ctx context.Context, spaceID int64, req dto.UpdateSpaceRequest) (*domain.Space, error) {
	space, err := s.spaceRepo.FindSpaceByID(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		space.Name = *req.Name
	}
	if req.Address != nil {
		space.Address = *req.Address
	}
	if req.Active != nil {
		space.Active = *req.Active
	}
	space.LastUpdatedAt = time.Now().UTC()

	if err := s.spaceRepo.UpdateSpace(ctx, *space); err != nil {
		s.LogError(ctx, err, "failed to update space", "space_id", spaceID)
		return nil, err
	}
	return space, nil
}

func (s *SpaceService) DeleteSpace(ctx context.Context, spaceID int64) error {
	if err := s.spaceRepo.DeleteSpace(ctx, spaceID); err != nil {
		return err
	}
	s.LogInfo(ctx, "space deleted", "space_id", spaceID)
	return nil
}
