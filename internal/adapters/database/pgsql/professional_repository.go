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

type PgxProfessionalRepository struct {
	pool *pgxpool.Pool
}

// newPgxProfessionalRepository creates a new repository for professional data.
func newPgxProfessionalRepository(pool *pgxpool.Pool) portsrepo.ProfessionalRepository {
	return &PgxProfessionalRepository{pool: pool}
}

var _ portsrepo.ProfessionalRepository = (*PgxProfessionalRepository)(nil)

// SaveProfessional inserts a new professional and fills the generated id.
func (r *PgxProfessionalRepository) SaveProfessional(ctx context.Context, professional *domain.Professional) error {
	query := `
		INSERT INTO professionals (name, role, phone, email, active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING professional_id;
	`
	err := r.pool.QueryRow(ctx, query,
		professional.Name,
		professional.Role,
		professional.Phone,
		professional.Email,
		professional.Active,
		professional.CreatedAt,
		professional.LastUpdatedAt,
	).Scan(&professional.ProfessionalID)
	if err != nil {
		return fmt.Errorf("failed to insert professional: %w", err)
	}
	return nil
}

// FindProfessionalByID retrieves a professional by its id.
func (r *PgxProfessionalRepository) FindProfessionalByID(ctx context.Context, professionalID int64) (*domain.Professional, error) {
	query := `
		SELECT professional_id, name, role, phone, email, active, created_at, last_updated_at
		FROM professionals
		WHERE professional_id = $1;
	`
	var professional domain.Professional
	err := r.pool.QueryRow(ctx, query, professionalID).Scan(
		&professional.ProfessionalID,
		&professional.Name,
		&professional.Role,
		&professional.Phone,
		&professional.Email,
		&professional.Active,
		&professional.CreatedAt,
		&professional.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find professional by ID %d: %w", professionalID, err)
	}
	return &professional, nil
}

// ListProfessionals retrieves all professionals ordered by name.
func (r *PgxProfessionalRepository) ListProfessionals(ctx context.Context) ([]domain.Professional, error) {
	query := `
		SELECT professional_id, name, role, phone, email, active, created_at, last_updated_at
		FROM professionals
		ORDER BY name ASC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query professionals: %w", err)
	}
	defer rows.Close()

	professionals := []domain.Professional{}
	for rows.Next() {
		var professional domain.Professional
		if err := rows.Scan(
			&professional.ProfessionalID,
			&professional.Name,
			&professional.Role,
			&professional.Phone,
			&professional.Email,
			&professional.Active,
			&professional.CreatedAt,
			&professional.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan professional row: %w", err)
		}
		professionals = append(professionals, professional)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating professional rows: %w", err)
	}
	return professionals, nil
}

// UpdateProfessional replaces the mutable fields of a professional.
func (r *PgxProfessionalRepository) UpdateProfessional(ctx context.Context, professional domain.Professional) error {
	query := `
		UPDATE professionals
		SET name = $2, role = $3, phone = $4, email = $5, active = $6, last_updated_at = $7
		WHERE professional_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		professional.ProfessionalID,
		professional.Name,
		professional.Role,
		professional.Phone,
		professional.Email,
		professional.Active,
		professional.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update professional %d: %w", professional.ProfessionalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProfessional removes a professional.
func (r *PgxProfessionalRepository) DeleteProfessional(ctx context.Context, professionalID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM professionals WHERE professional_id = $1;`, professionalID)
	if err != nil {
		return fmt.Errorf("failed to delete professional %d: %w", professionalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
