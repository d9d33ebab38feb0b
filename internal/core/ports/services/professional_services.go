package services

import (
	"context"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/lucasaveiro/gestor_espacos_app/internal/dto"
)

// ProfessionalService defines operations for managing professionals.
type ProfessionalService interface {
	CreateProfessional(ctx context.Context, req dto.CreateProfessionalRequest) (*domain.Professional, error)
	GetProfessionalByID(ctx context.Context, professionalID int64) (*domain.Professional, error)
	ListProfessionals(ctx context.Context) ([]domain.Professional, error)
	UpdateProfessional(ctx context.Context, professionalID int64, req dto.UpdateProfessionalRequest) (*domain.Professional, error)
	DeleteProfessional(ctx context.Context, professionalID int64) error
}
