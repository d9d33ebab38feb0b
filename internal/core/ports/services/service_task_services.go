package services

import (
	"context"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	"github.com/lucasaveiro/gestor_espacos_app/internal/dto"
)

// ServiceTaskService defines operations for service types and scheduled tasks.
type ServiceTaskService interface {
	ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error)
	CreateServiceTask(ctx context.Context, req dto.CreateServiceTaskRequest) (*domain.ServiceTask, error)
	ListServiceTasks(ctx context.Context, start, end *time.Time) ([]domain.ServiceTask, error)
	UpdateServiceTaskStatus(ctx context.Context, serviceTaskID int64, status string) (*domain.ServiceTask, error)
	DeleteServiceTask(ctx context.Context, serviceTaskID int64) error
}
