package models

import "time"

// Update categories recognized by the backend classifier.
const (
	CategoryPricing        = "pricing"
	CategoryFeatureRelease = "feature_release"
	CategoryIntegration    = "integration"
	CategoryProductUpdate  = "product_update"
	CategoryBlogPost       = "blog_post"
	CategoryCaseStudy      = "case_study"
	CategoryWebinar        = "webinar"
)

// Impact levels, lowest to highest.
const (
	ImpactLow      = "low"
	ImpactMedium   = "medium"
	ImpactHigh     = "high"
	ImpactCritical = "critical"
)

// Update is a single detected change on a competitor's channel.
type Update struct {
	ID             string         `json:"_id"`
	Competitor     string         `json:"competitor"`
	CompetitorName string         `json:"competitorName,omitempty"`
	Title          string         `json:"title"`
	Summary        string         `json:"summary,omitempty"`
	URL            string         `json:"url,omitempty"`
	Classification Classification `json:"classification"`
	Status         string         `json:"status,omitempty"`
	DetectedAt     time.Time      `json:"detectedAt"`
}

// Classification is assigned by the backend when an update is ingested.
type Classification struct {
	Category    string `json:"category"`
	ImpactLevel string `json:"impactLevel"`
}

// UpdateStats is the payload of GET /updates/stats/overview.
type UpdateStats struct {
	Total    int             `json:"total"`
	ByImpact []ImpactCount   `json:"byImpact"`
	Timeline []TimelinePoint `json:"timeline"`
}

// ImpactCount is one bucket of the impact histogram. The backend keys the
// bucket by impact level under "_id".
type ImpactCount struct {
	Impact string `json:"_id"`
	Count  int    `json:"count"`
}

// TimelinePoint is one day of update volume.
type TimelinePoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
