package services

// ServiceContainer bundles all service implementations for injection into
// the handler layer.
type ServiceContainer struct {
	Space        SpaceService
	Client       ClientService
	Professional ProfessionalService
	ServiceTask  ServiceTaskService
	Event        EventService
	Transaction  TransactionService
	Finance      FinanceService
	Contract     ContractService
	Calendar     CalendarService
}
