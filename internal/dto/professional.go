package dto

import "github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"

// CreateProfessionalRequest is the payload for creating a professional.
type CreateProfessionalRequest struct {
	Name   string `json:"name" binding:"required"`
	Role   string `json:"role"`
	Phone  string `json:"phone"`
	Email  string `json:"email" binding:"omitempty,email"`
	Active *bool  `json:"active"` // Defaults to true
}

// UpdateProfessionalRequest is the payload for updating a professional.
// Nil fields are left unchanged.
type UpdateProfessionalRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Active *bool   `json:"active"`
}

// ProfessionalResponse is the API representation of a professional.
type ProfessionalResponse struct {
	ProfessionalID int64  `json:"professionalID"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Active         bool   `json:"active"`
}

// ListProfessionalsResponse wraps a list of professionals.
type ListProfessionalsResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}

// ToProfessionalResponse converts a domain professional to its API representation.
func ToProfessionalResponse(p *domain.Professional) ProfessionalResponse {
	return ProfessionalResponse{
		ProfessionalID: p.ProfessionalID,
		Name:           p.Name,
		Role:           p.Role,
		Phone:          p.Phone,
		Email:          p.Email,
		Active:         p.Active,
	}
}
