package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/navbug/compintel-cli/internal/client/models"
)

// UpdateService reads the cross-competitor update feed.
type UpdateService struct {
	gw api
}

func NewUpdateService(gw api) *UpdateService {
	return &UpdateService{gw: gw}
}

// UpdateFilter narrows the feed. Zero values mean "no constraint".
type UpdateFilter struct {
	Category    string
	ImpactLevel string
	Status      string
	Competitor  string
	Limit       int
}

func (f UpdateFilter) query() string {
	params := url.Values{}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.ImpactLevel != "" {
		params.Set("impactLevel", f.ImpactLevel)
	}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.Competitor != "" {
		params.Set("competitor", f.Competitor)
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

func (s *UpdateService) List(ctx context.Context, filter UpdateFilter) ([]models.Update, error) {
	var resp struct {
		Data  []models.Update `json:"data"`
		Count int             `json:"count"`
	}
	if err := s.gw.Get(ctx, "/updates"+filter.query(), &resp); err != nil {
		return nil, fmt.Errorf("fetch updates: %w", err)
	}
	return resp.Data, nil
}

// MarkReviewed moves an update out of the "new" state.
func (s *UpdateService) MarkReviewed(ctx context.Context, id string) error {
	body := map[string]string{"status": "reviewed"}
	if err := s.gw.Put(ctx, "/updates/"+url.PathEscape(id)+"/status", body, nil); err != nil {
		return fmt.Errorf("mark update %s reviewed: %w", id, err)
	}
	return nil
}

// StatsOverview returns the backend's aggregate counters. Unlike counting
// fetched pages locally, this reflects the real totals in the database.
func (s *UpdateService) StatsOverview(ctx context.Context) (*models.UpdateStats, error) {
	var resp struct {
		Data models.UpdateStats `json:"data"`
	}
	if err := s.gw.Get(ctx, "/updates/stats/overview", &resp); err != nil {
		return nil, fmt.Errorf("fetch update stats: %w", err)
	}
	return &resp.Data, nil
}
