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

type ClientService struct {
	BaseService
	clientRepo portsrepo.ClientRepository
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

var _ portssvc.ClientService = (*ClientService)(nil)

func (s *ClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	now := time.Now().UTC()
	client := domain.Client{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Document: req.Document,
		Notes:    req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.clientRepo.SaveClient(ctx, &client); err != nil {
		s.LogError(ctx, err, "failed to create client")
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &client, nil
}

func (s *ClientService) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, clientID int64, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Document != nil {
		client.Document = *req.Document
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	client.LastUpdatedAt = time.Now().UTC()

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "failed to update client", "client_id", clientID)
		return nil, err
	}
	return client, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, clientID int64) error {
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		return err
	}
	s.LogInfo(ctx, "client deleted", "client_id", clientID)
	return nil
}
