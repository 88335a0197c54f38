package services

import (
	"context"

	"github.com/navbug/compintel-cli/internal/client/models"
)

// comparePerCompetitor bounds the recent slice fetched per competitor.
const comparePerCompetitor = 5

// Activity levels derived from the recent update count per competitor.
const (
	ActivityHigh   = "high"
	ActivityMedium = "medium"
	ActivityLow    = "low"
)

// ComparisonService builds the side-by-side view: every competitor next to
// its freshest updates, grouped into the categories worth comparing.
type ComparisonService struct {
	competitors *CompetitorService
	updates     *UpdateService
}

func NewComparisonService(competitors *CompetitorService, updates *UpdateService) *ComparisonService {
	return &ComparisonService{competitors: competitors, updates: updates}
}

// CompetitorColumn is one column of the comparison: a competitor with its
// recent updates pre-grouped for rendering.
type CompetitorColumn struct {
	Competitor models.Competitor
	// Updates is the raw recent slice, newest first, as the backend returns it.
	Updates []models.Update
	// Pricing, Features and Integrations are category projections of Updates.
	// Features covers both feature releases and product updates.
	Pricing      []models.Update
	Features     []models.Update
	Integrations []models.Update
	// Activity summarizes how busy the competitor has been lately.
	Activity string
}

// Compare fetches every competitor and its last few updates, one request per
// competitor. Columns come back in the backend's competitor order.
func (s *ComparisonService) Compare(ctx context.Context) ([]CompetitorColumn, error) {
	competitors, err := s.competitors.List(ctx)
	if err != nil {
		return nil, err
	}

	columns := make([]CompetitorColumn, 0, len(competitors))
	for _, comp := range competitors {
		recent, err := s.updates.List(ctx, UpdateFilter{
			Competitor: comp.ID,
			Limit:      comparePerCompetitor,
		})
		if err != nil {
			return nil, err
		}

		columns = append(columns, CompetitorColumn{
			Competitor:   comp,
			Updates:      recent,
			Pricing:      filterByCategory(recent, models.CategoryPricing),
			Features:     filterByCategory(recent, models.CategoryFeatureRelease, models.CategoryProductUpdate),
			Integrations: filterByCategory(recent, models.CategoryIntegration),
			Activity:     activityLevel(len(recent)),
		})
	}

	return columns, nil
}

func filterByCategory(updates []models.Update, categories ...string) []models.Update {
	var out []models.Update
	for _, u := range updates {
		for _, c := range categories {
			if u.Classification.Category == c {
				out = append(out, u)
				break
			}
		}
	}
	return out
}

// activityLevel buckets a recent update count: more than three is high
// activity, more than one is medium, anything else is low.
func activityLevel(n int) string {
	switch {
	case n > 3:
		return ActivityHigh
	case n > 1:
		return ActivityMedium
	default:
		return ActivityLow
	}
}
