package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasaveiro/gestor_espacos_app/internal/apperrors"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	portsrepo "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/repositories"
)

type PgxClientRepository struct {
	pool *pgxpool.Pool
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{pool: pool}
}

var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

// SaveClient inserts a new client and fills the generated id.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (name, email, phone, document, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING client_id;
	`
	err := r.pool.QueryRow(ctx, query,
		client.Name,
		client.Email,
		client.Phone,
		client.Document,
		client.Notes,
		client.CreatedAt,
		client.LastUpdatedAt,
	).Scan(&client.ClientID)
	if err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}
	return nil
}

// FindClientByID retrieves a client by its id.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := `
		SELECT client_id, name, email, phone, document, notes, created_at, last_updated_at
		FROM clients
		WHERE client_id = $1;
	`
	var client domain.Client
	err := r.pool.QueryRow(ctx, query, clientID).Scan(
		&client.ClientID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.Document,
		&client.Notes,
		&client.CreatedAt,
		&client.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %d: %w", clientID, err)
	}
	return &client, nil
}

// ListClients retrieves all clients ordered by name.
func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `
		SELECT client_id, name, email, phone, document, notes, created_at, last_updated_at
		FROM clients
		ORDER BY name ASC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ClientID,
			&client.Name,
			&client.Email,
			&client.Phone,
			&client.Document,
			&client.Notes,
			&client.CreatedAt,
			&client.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}

// UpdateClient replaces the mutable fields of a client.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clients
		SET name = $2, email = $3, phone = $4, document = $5, notes = $6, last_updated_at = $7
		WHERE client_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		client.ClientID,
		client.Name,
		client.Email,
		client.Phone,
		client.Document,
		client.Notes,
		client.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %d: %w", client.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteClient removes a client.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %d: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
