package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/navbug/compintel-cli/internal/client/models"
)

// CompetitorService exposes CRUD plus scrape triggering for monitored
// companies.
type CompetitorService struct {
	gw api
}

func NewCompetitorService(gw api) *CompetitorService {
	return &CompetitorService{gw: gw}
}

// CompetitorInput is the create/update payload. The backend assigns the ID
// and status.
type CompetitorInput struct {
	Name              string                   `json:"name"`
	Website           string                   `json:"website"`
	Industry          string                   `json:"industry"`
	Description       string                   `json:"description,omitempty"`
	MonitoredChannels models.MonitoredChannels `json:"monitoredChannels"`
	MonitoringConfig  models.MonitoringConfig  `json:"monitoringConfig"`
}

func (s *CompetitorService) List(ctx context.Context) ([]models.Competitor, error) {
	var resp struct {
		Data  []models.Competitor `json:"data"`
		Count int                 `json:"count"`
	}
	if err := s.gw.Get(ctx, "/competitors", &resp); err != nil {
		return nil, fmt.Errorf("fetch competitors: %w", err)
	}
	return resp.Data, nil
}

func (s *CompetitorService) Get(ctx context.Context, id string) (*models.Competitor, error) {
	var resp struct {
		Data models.Competitor `json:"data"`
	}
	if err := s.gw.Get(ctx, "/competitors/"+url.PathEscape(id), &resp); err != nil {
		return nil, fmt.Errorf("fetch competitor %s: %w", id, err)
	}
	return &resp.Data, nil
}

// Stats returns the per-competitor aggregate the detail view renders next to
// the profile.
func (s *CompetitorService) Stats(ctx context.Context, id string) (*models.CompetitorStats, error) {
	var resp struct {
		Data models.CompetitorStats `json:"data"`
	}
	if err := s.gw.Get(ctx, "/competitors/"+url.PathEscape(id)+"/stats", &resp); err != nil {
		return nil, fmt.Errorf("fetch competitor stats: %w", err)
	}
	return &resp.Data, nil
}

func (s *CompetitorService) Create(ctx context.Context, input CompetitorInput) (*models.Competitor, error) {
	var resp struct {
		Data models.Competitor `json:"data"`
	}
	if err := s.gw.Post(ctx, "/competitors", input, &resp); err != nil {
		return nil, fmt.Errorf("create competitor: %w", err)
	}
	return &resp.Data, nil
}

func (s *CompetitorService) Update(ctx context.Context, id string, input CompetitorInput) (*models.Competitor, error) {
	var resp struct {
		Data models.Competitor `json:"data"`
	}
	if err := s.gw.Put(ctx, "/competitors/"+url.PathEscape(id), input, &resp); err != nil {
		return nil, fmt.Errorf("update competitor %s: %w", id, err)
	}
	return &resp.Data, nil
}

func (s *CompetitorService) Delete(ctx context.Context, id string) error {
	if err := s.gw.Delete(ctx, "/competitors/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete competitor %s: %w", id, err)
	}
	return nil
}

// TriggerScrape asks the backend to re-check the competitor's channels now
// instead of waiting for the next scheduled run.
func (s *CompetitorService) TriggerScrape(ctx context.Context, id string) error {
	if err := s.gw.Post(ctx, "/competitors/"+url.PathEscape(id)+"/scrape", nil, nil); err != nil {
		return fmt.Errorf("trigger scrape for %s: %w", id, err)
	}
	return nil
}
