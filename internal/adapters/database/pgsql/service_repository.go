package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasaveiro/gestor_espacos_app/internal/apperrors"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	portsrepo "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/repositories"
)

type PgxServiceRepository struct {
	pool *pgxpool.Pool
}

// newPgxServiceRepository creates a new repository for service types and tasks.
func newPgxServiceRepository(pool *pgxpool.Pool) portsrepo.ServiceRepository {
	return &PgxServiceRepository{pool: pool}
}

var _ portsrepo.ServiceRepository = (*PgxServiceRepository)(nil)

// ListServiceTypes retrieves the service type catalogue ordered by name.
func (r *PgxServiceRepository) ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error) {
	query := `
		SELECT service_type_id, name, description
		FROM service_types
		ORDER BY name ASC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query service types: %w", err)
	}
	defer rows.Close()

	types := []domain.ServiceType{}
	for rows.Next() {
		var st domain.ServiceType
		if err := rows.Scan(&st.ServiceTypeID, &st.Name, &st.Description); err != nil {
			return nil, fmt.Errorf("failed to scan service type row: %w", err)
		}
		types = append(types, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service type rows: %w", err)
	}
	return types, nil
}

// SaveServiceTask inserts a new service task and fills the generated id.
func (r *PgxServiceRepository) SaveServiceTask(ctx context.Context, task *domain.ServiceTask) error {
	query := `
		INSERT INTO service_tasks (service_type_id, space_id, event_id, start_at, end_at, responsible, status, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING service_task_id;
	`
	err := r.pool.QueryRow(ctx, query,
		task.ServiceTypeID,
		task.SpaceID,
		task.EventID,
		task.Start,
		task.End,
		task.Responsible,
		task.Status,
		task.Notes,
		task.CreatedAt,
		task.LastUpdatedAt,
	).Scan(&task.ServiceTaskID)
	if err != nil {
		return fmt.Errorf("failed to insert service task: %w", err)
	}
	return nil
}

const serviceTaskSelect = `
	SELECT t.service_task_id, t.service_type_id, t.space_id, t.event_id, t.start_at, t.end_at,
	       t.responsible, t.status, t.notes, t.created_at, t.last_updated_at,
	       st.name AS service_type_name, s.name AS space_name
	FROM service_tasks t
	JOIN service_types st ON st.service_type_id = t.service_type_id
	JOIN spaces s ON s.space_id = t.space_id
`

func scanServiceTask(row pgx.Row, task *domain.ServiceTask) error {
	return row.Scan(
		&task.ServiceTaskID,
		&task.ServiceTypeID,
		&task.SpaceID,
		&task.EventID,
		&task.Start,
		&task.End,
		&task.Responsible,
		&task.Status,
		&task.Notes,
		&task.CreatedAt,
		&task.LastUpdatedAt,
		&task.ServiceTypeName,
		&task.SpaceName,
	)
}

// FindServiceTaskByID retrieves a service task with its type and space names.
func (r *PgxServiceRepository) FindServiceTaskByID(ctx context.Context, serviceTaskID int64) (*domain.ServiceTask, error) {
	query := serviceTaskSelect + `WHERE t.service_task_id = $1;`
	var task domain.ServiceTask
	err := scanServiceTask(r.pool.QueryRow(ctx, query, serviceTaskID), &task)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service task by ID %d: %w", serviceTaskID, err)
	}
	return &task, nil
}

// ListServiceTasks retrieves service tasks ordered by start ascending,
// optionally restricted to a start range.
func (r *PgxServiceRepository) ListServiceTasks(ctx context.Context, start, end *time.Time) ([]domain.ServiceTask, error) {
	query := serviceTaskSelect + `
	WHERE ($1::timestamptz IS NULL OR t.start_at >= $1)
	  AND ($2::timestamptz IS NULL OR t.start_at <= $2)
	ORDER BY t.start_at ASC, t.service_task_id ASC;
	`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query service tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.ServiceTask{}
	for rows.Next() {
		var task domain.ServiceTask
		if err := scanServiceTask(rows, &task); err != nil {
			return nil, fmt.Errorf("failed to scan service task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service task rows: %w", err)
	}
	return tasks, nil
}

// UpdateServiceTask replaces the mutable fields of a service task.
func (r *PgxServiceRepository) UpdateServiceTask(ctx context.Context, task domain.ServiceTask) error {
	query := `
		UPDATE service_tasks
		SET service_type_id = $2, space_id = $3, event_id = $4, start_at = $5, end_at = $6,
		    responsible = $7, status = $8, notes = $9, last_updated_at = $10
		WHERE service_task_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		task.ServiceTaskID,
		task.ServiceTypeID,
		task.SpaceID,
		task.EventID,
		task.Start,
		task.End,
		task.Responsible,
		task.Status,
		task.Notes,
		task.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update service task %d: %w", task.ServiceTaskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateServiceTaskStatus updates only the status of a service task.
func (r *PgxServiceRepository) UpdateServiceTaskStatus(ctx context.Context, serviceTaskID int64, status domain.TaskStatus, updatedAt time.Time) error {
	query := `
		UPDATE service_tasks
		SET status = $2, last_updated_at = $3
		WHERE service_task_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, serviceTaskID, status, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update service task status %d: %w", serviceTaskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteServiceTask removes a service task.
func (r *PgxServiceRepository) DeleteServiceTask(ctx context.Context, serviceTaskID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM service_tasks WHERE service_task_id = $1;`, serviceTaskID)
	if err != nil {
		return fmt.Errorf("failed to delete service task %d: %w", serviceTaskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
