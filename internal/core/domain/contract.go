package domain

// SpaceProfile holds the legal/contractual identity of a space used when
// generating rental contracts (owner, address, numbering prefix).
type SpaceProfile struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"displayName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	OwnerName   string `json:"ownerName"`
	OwnerCPF    string `json:"ownerCPF"`
	OwnerRole   string `json:"ownerRole"`
	Prefix      string `json:"prefix"` // Contract number prefix, e.g. "EST"
}

// ContractClause is one numbered clause of a rental contract. Content may
// carry {token} placeholders substituted at generation time.
type ContractClause struct {
	ID      string `json:"id"`
	Number  string `json:"number"` // "PRIMEIRA", "SEGUNDA", ...
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GeneratedContract is the result of clause substitution for a space.
type GeneratedContract struct {
	Number    string           `json:"number"`
	SpaceSlug string           `json:"spaceSlug"`
	Clauses   []ContractClause `json:"clauses"`
}

// ContractData carries the values substituted into contract clauses.
// Empty fields render as bracketed placeholders so drafts stay editable.
type ContractData struct {
	ContractNumber   string
	ContractDate     string // YYYY-MM-DD
	ClientName       string
	ClientCPF        string
	ClientRG         string
	ClientAddress    string
	ClientCity       string
	ClientState      string
	ClientPhone      string
	ClientEmail      string
	EventDate        string // YYYY-MM-DD
	EventStartTime   string
	EventEndTime     string
	EventType        string
	GuestCount       string
	TotalValue       string // Decimal string, formatted as BRL on render
	DepositValue     string
	DepositDueDate   string
	RemainingValue   string
	RemainingDueDate string
	PaymentMethod    string
	Observations     string
}
