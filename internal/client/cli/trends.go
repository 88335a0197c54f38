package cli

import (
	"context"
	"fmt"
)

// Trends prints backend-detected patterns. An optional argument filters by
// status (active, emerging, declining).
func (a *App) Trends(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	status := ""
	if len(args) > 0 {
		status = args[0]
	}

	items, err := a.trends.List(ctx, status)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		printlnFn("No trends detected.")
		return nil
	}

	for _, t := range items {
		printlnFn(fmt.Sprintf("%s  %s  [%s/%s]", t.ID, truncate(t.Title, 60), t.Status, t.Significance))
		if t.Description != "" {
			printlnFn("    " + truncate(t.Description, 100))
		}
		if len(t.Competitors) > 0 {
			printlnFn("    competitors:", joinList(t.Competitors))
		}
	}
	return nil
}
