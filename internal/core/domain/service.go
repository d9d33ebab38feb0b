package domain

import "time"

// TaskStatus indicates the state of a service task.
type TaskStatus string

const (
	TaskScheduled  TaskStatus = "scheduled"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
	TaskCancelled  TaskStatus = "cancelled"
)

// IsValid reports whether the status is one of the known task states.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskScheduled, TaskInProgress, TaskDone, TaskCancelled:
		return true
	}
	return false
}

// ServiceType is a kind of operational service performed on a space
// (cleaning, gardening, pool maintenance...).
type ServiceType struct {
	ServiceTypeID int64  `json:"serviceTypeID"`
	Name          string `json:"name"`
	Description   string `json:"description"` // Nullable
}

// ServiceTask is a scheduled occurrence of a service on a space, optionally
// tied to an event (e.g. post-event cleaning).
type ServiceTask struct {
	ServiceTaskID int64      `json:"serviceTaskID"`
	ServiceTypeID int64      `json:"serviceTypeID"`
	SpaceID       int64      `json:"spaceID"`
	EventID       *int64     `json:"eventID"` // Nullable FK -> Event
	Start         time.Time  `json:"start"`
	End           *time.Time `json:"end"` // Nullable
	Responsible   string     `json:"responsible"`
	Status        TaskStatus `json:"status"`
	Notes         string     `json:"notes"`
	AuditFields

	// Denormalized for display, populated by list queries.
	ServiceTypeName string `json:"serviceTypeName,omitempty"`
	SpaceName       string `json:"spaceName,omitempty"`
}
