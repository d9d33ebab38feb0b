package domain

// Client represents a person or company that books events.
type Client struct {
	ClientID int64  `json:"clientID"`
	Name     string `json:"name"`
	Email    string `json:"email"`    // Nullable
	Phone    string `json:"phone"`    // Nullable
	Document string `json:"document"` // CPF/CNPJ, Nullable
	Notes    string `json:"notes"`    // Nullable
	AuditFields
}
