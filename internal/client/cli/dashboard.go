package cli

import (
	"context"
	"fmt"
	"sort"
)

// Dashboard prints the overview: headline counters, the recent-updates panel
// and the category distribution of the recent slice.
func (a *App) Dashboard(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	sum, err := a.dashboard.Overview(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Competitors: %d  Updates: %d  Active trends: %d  Critical: %d",
		sum.TotalCompetitors, sum.TotalUpdates, sum.ActiveTrends, sum.CriticalUpdates))

	if len(sum.Timeline) > 0 {
		parts := make([]string, 0, len(sum.Timeline))
		for _, p := range sum.Timeline {
			parts = append(parts, fmt.Sprintf("%s: %d", p.Date, p.Count))
		}
		printlnFn("Timeline:", joinList(parts))
	}

	if len(sum.ByCategory) > 0 {
		cats := make([]string, 0, len(sum.ByCategory))
		for c := range sum.ByCategory {
			cats = append(cats, c)
		}
		sort.Strings(cats)

		parts := make([]string, 0, len(cats))
		for _, c := range cats {
			parts = append(parts, fmt.Sprintf("%s: %d", c, sum.ByCategory[c]))
		}
		printlnFn("Recent by category:", joinList(parts))
	}

	if len(sum.RecentUpdates) == 0 {
		printlnFn("No recent updates.")
		return nil
	}

	printlnFn("Recent updates:")
	for _, u := range sum.RecentUpdates {
		printlnFn(fmt.Sprintf("  [%s] %s  %s  %s (%s)",
			shortDate(u.DetectedAt), u.ID, truncate(u.Title, 60),
			u.Classification.Category, u.Classification.ImpactLevel))
	}
	return nil
}
