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

type PgxSpaceRepository struct {
	pool *pgxpool.Pool
}

// newPgxSpaceRepository creates a new repository for space data.
func newPgxSpaceRepository(pool *pgxpool.Pool) portsrepo.SpaceRepository {
	return &PgxSpaceRepository{pool: pool}
}

var _ portsrepo.SpaceRepository = (*PgxSpaceRepository)(nil)

// SaveSpace inserts a new space and fills the generated id.
func (r *PgxSpaceRepository) SaveSpace(ctx context.Context, space *domain.Space) error {
	query := `
		INSERT INTO spaces (name, address, active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING space_id;
	`
	err := r.pool.QueryRow(ctx, query,
		space.Name,
		space.Address,
		space.Active,
		space.CreatedAt,
		space.LastUpdatedAt,
	).Scan(&space.SpaceID)
	if err != nil {
		return fmt.Errorf("failed to insert space: %w", err)
	}
	return nil
}

// FindSpaceByID retrieves a space by its id.
func (r *PgxSpaceRepository) FindSpaceByID(ctx context.Context, spaceID int64) (*domain.Space, error) {
	query := `
		SELECT space_id, name, address, active, created_at, last_updated_at
		FROM spaces
		WHERE space_id = $1;
	`
	var space domain.Space
	err := r.pool.QueryRow(ctx, query, spaceID).Scan(
		&space.SpaceID,
		&space.Name,
		&space.Address,
		&space.Active,
		&space.CreatedAt,
		&space.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find space by ID %d: %w", spaceID, err)
	}
	return &space, nil
}

// ListSpaces retrieves all spaces ordered by name.
func (r *PgxSpaceRepository) ListSpaces(ctx context.Context) ([]domain.Space, error) {
	query := `
		SELECT space_id, name, address, active, created_at, last_updated_at
		FROM spaces
		ORDER BY name ASC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query spaces: %w", err)
	}
	defer rows.Close()

	spaces := []domain.Space{}
	for rows.Next() {
		var space domain.Space
		if err := rows.Scan(
			&space.SpaceID,
			&space.Name,
			&space.Address,
			&space.Active,
			&space.CreatedAt,
			&space.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan space row: %w", err)
		}
		spaces = append(spaces, space)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating space rows: %w", err)
	}
	return spaces, nil
}

// UpdateSpace replaces the mutable fields of a space.
func (r *PgxSpaceRepository) UpdateSpace(ctx context.Context, space domain.Space) error {
	query := `
		UPDATE spaces
		SET name = $2, address = $3, active = $4, last_updated_at = $5
		WHERE space_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		space.SpaceID,
		space.Name,
		space.Address,
		space.Active,
		space.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update space %d: %w", space.SpaceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSpace removes a space.
func (r *PgxSpaceRepository) DeleteSpace(ctx context.Context, spaceID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM spaces WHERE space_id = $1;`, spaceID)
	if err != nil {
		return fmt.Errorf("failed to delete space %d: %w", spaceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
