// Package models defines the wire-level types exchanged with the backend.
// The backend owns these shapes; the client treats them as data and never
// enriches them with behavior.
package models

// UserProfile is the authenticated account as reported by the backend
// identity endpoint.
type UserProfile struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Preferences Preferences `json:"preferences"`
}

// Preferences is owned by the backend. The client replaces it wholesale via
// the preferences endpoint and never validates individual fields.
type Preferences struct {
	NotificationSettings NotificationSettings `json:"notificationSettings"`
	MonitoredCategories  []string             `json:"monitoredCategories"`
	DigestFrequency      string               `json:"digestFrequency"`
}

// NotificationSettings controls how the backend delivers alerts.
type NotificationSettings struct {
	Email           bool   `json:"email"`
	InApp           bool   `json:"inApp"`
	ImpactThreshold string `json:"impactThreshold"`
}

// AuthResponse is the payload of a successful login or registration.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
