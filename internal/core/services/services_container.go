package services

import (
	portsrepo "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/repositories"
	portssvc "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/services"
)

// NewServiceContainer wires all services against the repository provider.
// The transaction service reconciles bookings through the event service.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	eventService := NewEventService(repos.EventRepo)

	return &portssvc.ServiceContainer{
		Space:        NewSpaceService(repos.SpaceRepo),
		Client:       NewClientService(repos.ClientRepo),
		Professional: NewProfessionalService(repos.ProfessionalRepo),
		ServiceTask:  NewServiceTaskService(repos.ServiceRepo),
		Event:        eventService,
		Transaction:  NewTransactionService(repos.TransactionRepo, eventService),
		Finance:      NewFinanceService(repos.FinanceRepo, repos.EventRepo),
		Contract:     NewContractService(),
		Calendar:     NewCalendarService(repos.EventRepo, repos.ServiceRepo),
	}
}
