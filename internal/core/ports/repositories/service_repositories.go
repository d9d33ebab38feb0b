package repositories

import (
	"context"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
)

// ServiceRepository defines persistence operations for service types and tasks.
type ServiceRepository interface {
	ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error)

	SaveServiceTask(ctx context.Context, task *domain.ServiceTask) error
	FindServiceTaskByID(ctx context.Context, serviceTaskID int64) (*domain.ServiceTask, error)
	// ListServiceTasks returns tasks ordered by start ascending. A nil range
	// means all time; otherwise tasks whose start falls in [start, end].
	ListServiceTasks(ctx context.Context, start, end *time.Time) ([]domain.ServiceTask, error)
	UpdateServiceTask(ctx context.Context, task domain.ServiceTask) error
	UpdateServiceTaskStatus(ctx context.Context, serviceTaskID int64, status domain.TaskStatus, updatedAt time.Time) error
	DeleteServiceTask(ctx context.Context, serviceTaskID int64) error
}
