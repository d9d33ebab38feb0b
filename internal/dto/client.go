package dto

import "github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"

// CreateClientRequest is the payload for creating a client.
type CreateClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
	Notes    string `json:"notes"`
}

// UpdateClientRequest is the payload for updating a client. Nil fields are
// left unchanged.
type UpdateClientRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Document *string `json:"document"`
	Notes    *string `json:"notes"`
}

// ClientResponse is the API representation of a client.
type ClientResponse struct {
	ClientID int64  `json:"clientID"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
	Notes    string `json:"notes"`
}

// ListClientsResponse wraps a list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain client to its API representation.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID: c.ClientID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Document: c.Document,
		Notes:    c.Notes,
	}
}
