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
	"github.com/shopspring/decimal"
)

type PgxEventRepository struct {
	pool *pgxpool.Pool
}

// newPgxEventRepository creates a new repository for event data.
func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepository {
	return &PgxEventRepository{pool: pool}
}

var _ portsrepo.EventRepository = (*PgxEventRepository)(nil)

// SaveEvent inserts the event row and its professional links in one
// transaction, filling the generated id.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event *domain.Event) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for event save: %w", err)
	}
	defer tx.Rollback(ctx)

	insertEvent := `
		INSERT INTO events (title, category, start_at, end_at, status, contract_status,
			total_value, deposit, payment_status, space_id, client_id, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING event_id;
	`
	err = tx.QueryRow(ctx, insertEvent,
		event.Title,
		event.Category,
		event.Start,
		event.End,
		event.Status,
		event.ContractStatus,
		event.TotalValue,
		event.Deposit,
		event.PaymentStatus,
		event.SpaceID,
		event.ClientID,
		event.Notes,
		event.CreatedAt,
		event.LastUpdatedAt,
	).Scan(&event.EventID)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	if err := insertEventProfessionals(ctx, tx, event.EventID, event.ProfessionalIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit event save transaction: %w", err)
	}
	return nil
}

func insertEventProfessionals(ctx context.Context, tx pgx.Tx, eventID int64, professionalIDs []int64) error {
	for _, pid := range professionalIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO event_professionals (event_id, professional_id) VALUES ($1, $2);`,
			eventID, pid)
		if err != nil {
			return fmt.Errorf("failed to link professional %d to event %d: %w", pid, eventID, err)
		}
	}
	return nil
}

const eventSelect = `
	SELECT e.event_id, e.title, e.category, e.start_at, e.end_at, e.status, e.contract_status,
	       e.total_value, e.deposit, e.payment_status, e.space_id, e.client_id, e.notes,
	       e.created_at, e.last_updated_at,
	       s.name AS space_name, COALESCE(c.name, '') AS client_name
	FROM events e
	JOIN spaces s ON s.space_id = e.space_id
	LEFT JOIN clients c ON c.client_id = e.client_id
`

func scanEvent(row pgx.Row, event *domain.Event) error {
	return row.Scan(
		&event.EventID,
		&event.Title,
		&event.Category,
		&event.Start,
		&event.End,
		&event.Status,
		&event.ContractStatus,
		&event.TotalValue,
		&event.Deposit,
		&event.PaymentStatus,
		&event.SpaceID,
		&event.ClientID,
		&event.Notes,
		&event.CreatedAt,
		&event.LastUpdatedAt,
		&event.SpaceName,
		&event.ClientName,
	)
}

// FindEventByID retrieves an event with its space/client names and linked
// professional ids.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID int64) (*domain.Event, error) {
	query := eventSelect + `WHERE e.event_id = $1;`
	var event domain.Event
	err := scanEvent(r.pool.QueryRow(ctx, query, eventID), &event)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event by ID %d: %w", eventID, err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT professional_id FROM event_professionals WHERE event_id = $1 ORDER BY professional_id ASC;`,
		eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query event professionals for event %d: %w", eventID, err)
	}
	defer rows.Close()

	event.ProfessionalIDs = []int64{}
	for rows.Next() {
		var pid int64
		if err := rows.Scan(&pid); err != nil {
			return nil, fmt.Errorf("failed to scan event professional row: %w", err)
		}
		event.ProfessionalIDs = append(event.ProfessionalIDs, pid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event professional rows: %w", err)
	}
	return &event, nil
}

// ListEvents retrieves events ordered by start ascending, optionally
// restricted to a start range. Professional links are not loaded here.
func (r *PgxEventRepository) ListEvents(ctx context.Context, start, end *time.Time) ([]domain.Event, error) {
	query := eventSelect + `
	WHERE ($1::timestamptz IS NULL OR e.start_at >= $1)
	  AND ($2::timestamptz IS NULL OR e.start_at <= $2)
	ORDER BY e.start_at ASC, e.event_id ASC;
	`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		var event domain.Event
		if err := scanEvent(rows, &event); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

// UpdateEvent replaces the event row and, when ProfessionalIDs is non-nil,
// its professional links, in one transaction.
func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for event update: %w", err)
	}
	defer tx.Rollback(ctx)

	updateEvent := `
		UPDATE events
		SET title = $2, category = $3, start_at = $4, end_at = $5, status = $6,
		    contract_status = $7, total_value = $8, deposit = $9, payment_status = $10,
		    space_id = $11, client_id = $12, notes = $13, last_updated_at = $14
		WHERE event_id = $1;
	`
	tag, err := tx.Exec(ctx, updateEvent,
		event.EventID,
		event.Title,
		event.Category,
		event.Start,
		event.End,
		event.Status,
		event.ContractStatus,
		event.TotalValue,
		event.Deposit,
		event.PaymentStatus,
		event.SpaceID,
		event.ClientID,
		event.Notes,
		event.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update event %d: %w", event.EventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if event.ProfessionalIDs != nil {
		_, err = tx.Exec(ctx, `DELETE FROM event_professionals WHERE event_id = $1;`, event.EventID)
		if err != nil {
			return fmt.Errorf("failed to clear professionals for event %d: %w", event.EventID, err)
		}
		if err := insertEventProfessionals(ctx, tx, event.EventID, event.ProfessionalIDs); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit event update transaction: %w", err)
	}
	return nil
}

// DeleteEvent removes an event. Linked rows cascade via foreign keys.
func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE event_id = $1;`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event %d: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReconcilePaymentStatus recomputes the derived payment status of a booking
// from its clamped deposit plus the sum of its linked paid income
// transactions, inside one transaction with the event row locked.
func (r *PgxEventRepository) ReconcilePaymentStatus(ctx context.Context, eventID int64) (domain.PaymentStatus, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction for payment reconcile: %w", err)
	}
	defer tx.Rollback(ctx)

	var totalValue, deposit decimal.Decimal
	err = tx.QueryRow(ctx,
		`SELECT total_value, deposit FROM events WHERE event_id = $1 AND category = 'event' FOR UPDATE;`,
		eventID,
	).Scan(&totalValue, &deposit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to lock event %d for reconcile: %w", eventID, err)
	}

	var additionalPaid decimal.Decimal
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE event_id = $1 AND type = 'income' AND status = 'paid';`,
		eventID,
	).Scan(&additionalPaid)
	if err != nil {
		return "", fmt.Errorf("failed to sum paid income for event %d: %w", eventID, err)
	}

	status := domain.ClassifyPayment(totalValue, deposit, additionalPaid)

	_, err = tx.Exec(ctx,
		`UPDATE events SET payment_status = $2, last_updated_at = $3 WHERE event_id = $1;`,
		eventID, status, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to persist payment status for event %d: %w", eventID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit payment reconcile transaction: %w", err)
	}
	return status, nil
}
