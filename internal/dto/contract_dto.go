package dto

import "github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"

// GenerateContractRequest carries the form values substituted into the
// contract clauses. Empty fields render as bracketed placeholders.
type GenerateContractRequest struct {
	ContractNumber   string `json:"contractNumber"`
	ContractDate     string `json:"contractDate"`
	ClientName       string `json:"clientName"`
	ClientCPF        string `json:"clientCPF"`
	ClientRG         string `json:"clientRG"`
	ClientAddress    string `json:"clientAddress"`
	ClientCity       string `json:"clientCity"`
	ClientState      string `json:"clientState"`
	ClientPhone      string `json:"clientPhone"`
	ClientEmail      string `json:"clientEmail"`
	EventDate        string `json:"eventDate"`
	EventStartTime   string `json:"eventStartTime"`
	EventEndTime     string `json:"eventEndTime"`
	EventType        string `json:"eventType"`
	GuestCount       string `json:"guestCount"`
	TotalValue       string `json:"totalValue"`
	DepositValue     string `json:"depositValue"`
	DepositDueDate   string `json:"depositDueDate"`
	RemainingValue   string `json:"remainingValue"`
	RemainingDueDate string `json:"remainingDueDate"`
	PaymentMethod    string `json:"paymentMethod"`
	Observations     string `json:"observations"`
}

// ToContractData converts the request into the domain substitution input.
func (r GenerateContractRequest) ToContractData() domain.ContractData {
	return domain.ContractData(r)
}

// SpaceProfileResponse is the API representation of a contract space profile.
type SpaceProfileResponse struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"displayName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Prefix      string `json:"prefix"`
}

// GeneratedContractResponse is the substituted contract returned to the UI.
type GeneratedContractResponse struct {
	Number    string                  `json:"number"`
	SpaceSlug string                  `json:"spaceSlug"`
	Clauses   []domain.ContractClause `json:"clauses"`
}

// ToSpaceProfileResponse converts a domain space profile to its API representation.
func ToSpaceProfileResponse(p domain.SpaceProfile) SpaceProfileResponse {
	return SpaceProfileResponse{
		Slug:        p.Slug,
		DisplayName: p.DisplayName,
		Address:     p.Address,
		City:        p.City,
		State:       p.State,
		Prefix:      p.Prefix,
	}
}

// ToGeneratedContractResponse converts a generated contract to its API representation.
func ToGeneratedContractResponse(c *domain.GeneratedContract) GeneratedContractResponse {
	return GeneratedContractResponse{
		Number:    c.Number,
		SpaceSlug: c.SpaceSlug,
		Clauses:   c.Clauses,
	}
}
