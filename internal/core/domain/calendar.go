package domain

import "time"

// AgendaKind tags a calendar entry by its origin.
type AgendaKind string

const (
	AgendaEvent AgendaKind = "event"
	AgendaTask  AgendaKind = "task"
)

// AgendaEntry is one row of the merged calendar view: bookings and service
// tasks flattened into a single chronological list.
type AgendaEntry struct {
	Kind      AgendaKind `json:"kind"`
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end"`
	SpaceName string     `json:"spaceName"`
	Status    string     `json:"status"`
}
