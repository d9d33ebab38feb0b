package dto

import "github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"

// CreateSpaceRequest is the payload for creating a space.
type CreateSpaceRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Active  *bool  `json:"active"` // Defaults to true
}

// UpdateSpaceRequest is the payload for updating a space. Nil fields are
// left unchanged.
type UpdateSpaceRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Active  *bool   `json:"active"`
}

// SpaceResponse is the API representation of a space.
type SpaceResponse struct {
	SpaceID int64  `json:"spaceID"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Active  bool   `json:"active"`
}

// ListSpacesResponse wraps a list of spaces.
type ListSpacesResponse struct {
	Spaces []SpaceResponse `json:"spaces"`
}

// ToSpaceResponse converts a domain space to its API representation.
func ToSpaceResponse(s *domain.Space) SpaceResponse {
	return SpaceResponse{
		SpaceID: s.SpaceID,
		Name:    s.Name,
		Address: s.Address,
		Active:  s.Active,
	}
}
