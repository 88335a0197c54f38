package services

import (
	"context"

	"github.com/navbug/compintel-cli/internal/client/models"
)

// DashboardService assembles the overview screen: headline counters, the
// most recent updates and their category distribution.
type DashboardService struct {
	competitors *CompetitorService
	updates     *UpdateService
	trends      *TrendService
}

func NewDashboardService(competitors *CompetitorService, updates *UpdateService, trends *TrendService) *DashboardService {
	return &DashboardService{competitors: competitors, updates: updates, trends: trends}
}

// recentLimit bounds the recent-updates panel.
const recentLimit = 10

// Summary is everything the dashboard renders in one pass.
type Summary struct {
	TotalCompetitors int
	TotalUpdates     int
	ActiveTrends     int
	CriticalUpdates  int
	RecentUpdates    []models.Update
	Timeline         []models.TimelinePoint
	// ByCategory counts the recent updates per classification category.
	ByCategory map[string]int
}

// Overview gathers the dashboard data. Total and per-impact counters come
// from the backend's stats endpoint (the real database counts); the category
// histogram is derived locally from the recent slice.
func (s *DashboardService) Overview(ctx context.Context) (*Summary, error) {
	competitors, err := s.competitors.List(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.updates.List(ctx, UpdateFilter{Limit: recentLimit})
	if err != nil {
		return nil, err
	}

	trends, err := s.trends.List(ctx, models.TrendStatusActive)
	if err != nil {
		return nil, err
	}

	stats, err := s.updates.StatsOverview(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalCompetitors: len(competitors),
		TotalUpdates:     stats.Total,
		ActiveTrends:     len(trends),
		CriticalUpdates:  impactCount(stats.ByImpact, models.ImpactCritical),
		RecentUpdates:    recent,
		Timeline:         stats.Timeline,
		ByCategory:       countByCategory(recent),
	}, nil
}

func impactCount(buckets []models.ImpactCount, impact string) int {
	for _, b := range buckets {
		if b.Impact == impact {
			return b.Count
		}
	}
	return 0
}

func countByCategory(updates []models.Update) map[string]int {
	out := make(map[string]int)
	for _, u := range updates {
		out[u.Classification.Category]++
	}
	return out
}
