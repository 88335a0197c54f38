package models

import "time"

// Notification is a per-user alert produced by the backend when an update
// crosses the user's impact threshold.
type Notification struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	ImpactLevel string    `json:"impactLevel,omitempty"`
	URL         string    `json:"url,omitempty"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}
