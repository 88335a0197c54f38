package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/navbug/compintel-cli/internal/client/models"
)

// TrendService reads backend-detected patterns.
type TrendService struct {
	gw api
}

func NewTrendService(gw api) *TrendService {
	return &TrendService{gw: gw}
}

// List returns trends, optionally filtered by status ("active", "emerging",
// "declining"). Empty status returns everything.
func (s *TrendService) List(ctx context.Context, status string) ([]models.Trend, error) {
	path := "/trends"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var resp struct {
		Data  []models.Trend `json:"data"`
		Count int            `json:"count"`
	}
	if err := s.gw.Get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("fetch trends: %w", err)
	}
	return resp.Data, nil
}
