package domain

// Professional represents a service provider that can be assigned to events
// (waiter, security, DJ, etc.).
type Professional struct {
	ProfessionalID int64  `json:"professionalID"`
	Name           string `json:"name"`
	Role           string `json:"role"`  // Nullable
	Phone          string `json:"phone"` // Nullable
	Email          string `json:"email"` // Nullable
	Active         bool   `json:"active"`
	AuditFields
}
