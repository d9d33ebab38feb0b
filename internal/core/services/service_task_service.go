package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/apperrors"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	portsrepo "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/repositories"
	portssvc "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/services"
	"github.com/lucasaveiro/gestor_espacos_app/internal/dto"
)

type ServiceTaskService struct {
	BaseService
	serviceRepo portsrepo.ServiceRepository
}

// NewServiceTaskService creates a new service for the maintenance catalogue
// and its scheduled tasks.
func NewServiceTaskService(serviceRepo portsrepo.ServiceRepository) *ServiceTaskService {
	return &ServiceTaskService{serviceRepo: serviceRepo}
}

var _ portssvc.ServiceTaskService = (*ServiceTaskService)(nil)

func (s *ServiceTaskService) ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error) {
	types, err := s.serviceRepo.ListServiceTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list service types")
		return nil, fmt.Errorf("failed to list service types: %w", err)
	}
	return types, nil
}

func (s *ServiceTaskService) CreateServiceTask(ctx context.Context, req dto.CreateServiceTaskRequest) (*domain.ServiceTask, error) {
	status := domain.TaskStatus(req.Status)
	if req.Status == "" {
		status = domain.TaskScheduled
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: invalid task status %q", apperrors.ErrValidation, req.Status)
	}
	if req.End != nil && req.End.Before(req.Start) {
		return nil, fmt.Errorf("%w: task end before start", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	task := domain.ServiceTask{
		ServiceTypeID: req.ServiceTypeID,
		SpaceID:       req.SpaceID,
		EventID:       req.EventID,
		Start:         req.Start,
		End:           req.End,
		Responsible:   req.Responsible,
		Status:        status,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.serviceRepo.SaveServiceTask(ctx, &task); err != nil {
		s.LogError(ctx, err, "failed to create service task")
		return nil, fmt.Errorf("failed to create service task: %w", err)
	}
	// Reload to fill the joined type and space names.
	return s.serviceRepo.FindServiceTaskByID(ctx, task.ServiceTaskID)
}

func (s *ServiceTaskService) ListServiceTasks(ctx context.Context, start, end *time.Time) ([]domain.ServiceTask, error) {
	tasks, err := s.serviceRepo.ListServiceTasks(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "failed to list service tasks")
		return nil, fmt.Errorf("failed to list service tasks: %w", err)
	}
	return tasks, nil
}

func (s *ServiceTaskService) UpdateServiceTaskStatus(ctx context.Context, serviceTaskID int64, status string) (*domain.ServiceTask, error) {
	taskStatus := domain.TaskStatus(status)
	if !taskStatus.IsValid() {
		return nil, fmt.Errorf("%w: invalid task status %q", apperrors.ErrValidation, status)
	}
	if err := s.serviceRepo.UpdateServiceTaskStatus(ctx, serviceTaskID, taskStatus, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.serviceRepo.FindServiceTaskByID(ctx, serviceTaskID)
}

func (s *ServiceTaskService) DeleteServiceTask(ctx context.Context, serviceTaskID int64) error {
	if err := s.serviceRepo.DeleteServiceTask(ctx, serviceTaskID); err != nil {
		return err
	}
	s.LogInfo(ctx, "service task deleted", "service_task_id", serviceTaskID)
	return nil
}
