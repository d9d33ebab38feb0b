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

type ProfessionalService struct {
	BaseService
	professionalRepo portsrepo.ProfessionalRepository
}

// NewProfessionalService creates a new professional service.
func NewProfessionalService(professionalRepo portsrepo.ProfessionalRepository) *ProfessionalService {
	return &ProfessionalService{professionalRepo: professionalRepo}
}

var _ portssvc.ProfessionalService = (*ProfessionalService)(nil)

func (s *ProfessionalService) CreateProfessional(ctx context.Context, req dto.CreateProfessionalRequest) (*domain.Professional, error) {
	now := time.Now().UTC()
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	professional := domain.Professional{
		Name:   req.Name,
		Role:   req.Role,
		Phone:  req.Phone,
		Email:  req.Email,
		Active: active,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.professionalRepo.SaveProfessional(ctx, &professional); err != nil {
		s.LogError(ctx, err, "failed to create professional")
		return nil, fmt.Errorf("failed to create professional: %w", err)
	}
	return &professional, nil
}

func (s *ProfessionalService) GetProfessionalByID(ctx context.Context, professionalID int64) (*domain.Professional, error) {
	return s.professionalRepo.FindProfessionalByID(ctx, professionalID)
}

func (s *ProfessionalService) ListProfessionals(ctx context.Context) ([]domain.Professional, error) {
	professionals, err := s.professionalRepo.ListProfessionals(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list professionals")
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	return professionals, nil
}

func (s *ProfessionalService) UpdateProfessional(ctx context.Context, professionalID int64, req dto.UpdateProfessionalRequest) (*domain.Professional, error) {
	professional, err := s.professionalRepo.FindProfessionalByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		professional.Name = *req.Name
	}
	if req.Role != nil {
		professional.Role = *req.Role
	}
	if req.Phone != nil {
		professional.Phone = *req.Phone
	}
	if req.Email != nil {
		professional.Email = *req.Email
	}
	if req.Active != nil {
		professional.Active = *req.Active
	}
	professional.LastUpdatedAt = time.Now().UTC()

	if err := s.professionalRepo.UpdateProfessional(ctx, *professional); err != nil {
		s.LogError(ctx, err, "failed to update professional", "professional_id", professionalID)
		return nil, err
	}
	return professional, nil
}

func (s *ProfessionalService) DeleteProfessional(ctx context.Context, professionalID int64) error {
	if err := s.professionalRepo.DeleteProfessional(ctx, professionalID); err != nil {
		return err
	}
	s.LogInfo(ctx, "professional deleted", "professional_id", professionalID)
	return nil
}
