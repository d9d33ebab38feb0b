package repositories

import (
	"context"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	SaveClient(ctx context.Context, client *domain.Client) error
	FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, clientID int64) error
}
