package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/navbug/compintel-cli/internal/client/services"
)

// Updates prints the cross-competitor feed. Filters are given as key=value
// arguments: category, impact, status, competitor, limit.
func (a *App) Updates(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	filter, err := parseUpdateFilter(args)
	if err != nil {
		return err
	}

	items, err := a.updates.List(ctx, filter)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		printlnFn("No updates match.")
		return nil
	}

	for _, u := range items {
		name := u.CompetitorName
		if name == "" {
			name = u.Competitor
		}
		printlnFn(fmt.Sprintf("[%s] %s  %s  %s  %s (%s)  %s",
			shortDate(u.DetectedAt), u.ID, name, truncate(u.Title, 50),
			u.Classification.Category, u.Classification.ImpactLevel, orDash(u.Status)))
	}
	return nil
}

// Review marks an update reviewed.
func (a *App) Review(ctx context.Context, id string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	if err := a.updates.MarkReviewed(ctx, id); err != nil {
		return err
	}
	printlnFn("Update marked as reviewed.")
	return nil
}

func parseUpdateFilter(args []string) (services.UpdateFilter, error) {
	var filter services.UpdateFilter
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || value == "" {
			return filter, fmt.Errorf("bad filter %q, expected key=value", arg)
		}
		switch key {
		case "category":
			filter.Category = value
		case "impact":
			filter.ImpactLevel = value
		case "status":
			filter.Status = value
		case "competitor":
			filter.Competitor = value
		case "limit":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return filter, fmt.Errorf("bad limit %q", value)
			}
			filter.Limit = n
		default:
			return filter, fmt.Errorf("unknown filter %q (category, impact, status, competitor, limit)", key)
		}
	}
	return filter, nil
}
