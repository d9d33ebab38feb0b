package services

import (
	"context"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/lucasaveiro/gestor_espacos_app/internal/dto"
)

// ClientService defines operations for managing clients.
type ClientService interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)
	GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, clientID int64, req dto.UpdateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID int64) error
}
