package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	SpaceRepo        SpaceRepository
	ClientRepo       ClientRepository
	ProfessionalRepo ProfessionalRepository
	ServiceRepo      ServiceRepository
	EventRepo        EventRepository
	TransactionRepo  TransactionRepository
	FinanceRepo      FinanceRepository
}
