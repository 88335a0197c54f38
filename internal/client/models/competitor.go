package models

// Competitor statuses as reported by the backend.
const (
	CompetitorStatusActive   = "active"
	CompetitorStatusPaused   = "paused"
	CompetitorStatusArchived = "archived"
)

// Competitor is a monitored company.
type Competitor struct {
	ID                string            `json:"_id"`
	Name              string            `json:"name"`
	Website           string            `json:"website"`
	Industry          string            `json:"industry"`
	Description       string            `json:"description,omitempty"`
	Status            string            `json:"status,omitempty"`
	MonitoredChannels MonitoredChannels `json:"monitoredChannels"`
	MonitoringConfig  MonitoringConfig  `json:"monitoringConfig"`
}

// MonitoredChannels lists the sources the backend watches for a competitor.
type MonitoredChannels struct {
	WebsitePages []WebsitePage `json:"websitePages,omitempty"`
	RSSFeeds     []RSSFeed     `json:"rssFeeds,omitempty"`
}

// WebsitePage is a single monitored page. Type is one of the backend's page
// types (pricing, product, blog, about, other).
type WebsitePage struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// RSSFeed is a monitored feed URL.
type RSSFeed struct {
	URL string `json:"url"`
}

// MonitoringConfig controls scrape scheduling for one competitor.
type MonitoringConfig struct {
	Enabled   bool   `json:"enabled"`
	Frequency string `json:"frequency"`
	Priority  string `json:"priority"`
}

// CompetitorStats is the per-competitor aggregate from
// GET /competitors/{id}/stats.
type CompetitorStats struct {
	TotalUpdates   int            `json:"totalUpdates"`
	ByCategory     map[string]int `json:"byCategory"`
	ByImpact       map[string]int `json:"byImpact"`
	LastDetectedAt string         `json:"lastDetectedAt,omitempty"`
}
