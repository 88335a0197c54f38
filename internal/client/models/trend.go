package models

// Trend statuses.
const (
	TrendStatusActive    = "active"
	TrendStatusEmerging  = "emerging"
	TrendStatusDeclining = "declining"
)

// Trend is a backend-detected pattern across competitors.
type Trend struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category,omitempty"`
	Status       string   `json:"status"`
	Significance string   `json:"significance"`
	Competitors  []string `json:"competitors,omitempty"`
}
