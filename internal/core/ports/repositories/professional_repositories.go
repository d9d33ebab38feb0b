package repositories

import (
	"context"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
)

// ProfessionalRepository defines persistence operations for professionals.
type ProfessionalRepository interface {
	SaveProfessional(ctx context.Context, professional *domain.Professional) error
	FindProfessionalByID(ctx context.Context, professionalID int64) (*domain.Professional, error)
	ListProfessionals(ctx context.Context) ([]domain.Professional, error)
	UpdateProfessional(ctx context.Context, professional domain.Professional) error
	DeleteProfessional(ctx context.Context, professionalID int64) error
}
