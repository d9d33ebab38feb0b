package domain

// Space represents a rentable venue (hall, ranch, etc.).
type Space struct {
	SpaceID int64  `json:"spaceID"`
	Name    string `json:"name"`
	Address string `json:"address"` // Nullable
	Active  bool   `json:"active"`
	AuditFields
}
