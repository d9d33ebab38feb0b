package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories against one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		SpaceRepo:        newPgxSpaceRepository(pool),
		ClientRepo:       newPgxClientRepository(pool),
		ProfessionalRepo: newPgxProfessionalRepository(pool),
		ServiceRepo:      newPgxServiceRepository(pool),
		EventRepo:        newPgxEventRepository(pool),
		TransactionRepo:  newPgxTransactionRepository(pool),
		FinanceRepo:      newPgxFinanceRepository(pool),
	}
}
