package dto

import (
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
)

// CreateServiceTaskRequest is the payload for scheduling a service task.
type CreateServiceTaskRequest struct {
	ServiceTypeID int64      `json:"serviceTypeID" binding:"required"`
	SpaceID       int64      `json:"spaceID" binding:"required"`
	EventID       *int64     `json:"eventID"`
	Start         time.Time  `json:"start" binding:"required"`
	End           *time.Time `json:"end"`
	Responsible   string     `json:"responsible"`
	Status        string     `json:"status"` // Defaults to scheduled
	Notes         string     `json:"notes"`
}

// UpdateServiceTaskStatusRequest changes only the status of a task.
type UpdateServiceTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ServiceTypeResponse is the API representation of a service type.
type ServiceTypeResponse struct {
	ServiceTypeID int64  `json:"serviceTypeID"`
	Name          string `json:"name"`
	Description   string `json:"description"`
}

// ServiceTaskResponse is the API representation of a service task.
type ServiceTaskResponse struct {
	ServiceTaskID   int64      `json:"serviceTaskID"`
	ServiceTypeID   int64      `json:"serviceTypeID"`
	ServiceTypeName string     `json:"serviceTypeName"`
	SpaceID         int64      `json:"spaceID"`
	SpaceName       string     `json:"spaceName"`
	EventID         *int64     `json:"eventID"`
	Start           time.Time  `json:"start"`
	End             *time.Time `json:"end"`
	Responsible     string     `json:"responsible"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes"`
}

// ListServiceTasksResponse wraps a list of service tasks.
type ListServiceTasksResponse struct {
	Tasks []ServiceTaskResponse `json:"tasks"`
}

// ToServiceTypeResponse converts a domain service type to its API representation.
func ToServiceTypeResponse(t domain.ServiceType) ServiceTypeResponse {
	return ServiceTypeResponse{
		ServiceTypeID: t.ServiceTypeID,
		Name:          t.Name,
		Description:   t.Description,
	}
}

// ToServiceTaskResponse converts a domain service task to its API representation.
func ToServiceTaskResponse(t *domain.ServiceTask) ServiceTaskResponse {
	return ServiceTaskResponse{
		ServiceTaskID:   t.ServiceTaskID,
		ServiceTypeID:   t.ServiceTypeID,
		ServiceTypeName: t.ServiceTypeName,
		SpaceID:         t.SpaceID,
		SpaceName:       t.SpaceName,
		EventID:         t.EventID,
		Start:           t.Start,
		End:             t.End,
		Responsible:     t.Responsible,
		Status:          string(t.Status),
		Notes:           t.Notes,
	}
}
