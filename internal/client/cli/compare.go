package cli

import (
	"context"
	"fmt"

	"github.com/navbug/compintel-cli/internal/client/models"
)

// Compare prints the side-by-side view: for every competitor, its recent
// pricing changes, latest features, new integrations and an activity level.
func (a *App) Compare(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	columns, err := a.comparison.Compare(ctx)
	if err != nil {
		return err
	}
	if len(columns) == 0 {
		printlnFn("No competitors to compare. Use 'add' to start monitoring one.")
		return nil
	}

	for _, col := range columns {
		printlnFn(fmt.Sprintf("%s  (%s activity, %d recent updates)",
			col.Competitor.Name, col.Activity, len(col.Updates)))
		printCompareRow("pricing changes", col.Pricing, 1)
		printCompareRow("latest features", col.Features, 2)
		printCompareRow("new integrations", col.Integrations, 2)
	}
	return nil
}

// printCompareRow shows up to limit titles for one category bucket and a
// "+N more" tail when the bucket overflows.
func printCompareRow(label string, updates []models.Update, limit int) {
	if len(updates) == 0 {
		printlnFn(fmt.Sprintf("  %s: none", label))
		return
	}
	printlnFn(fmt.Sprintf("  %s:", label))
	for i, u := range updates {
		if i == limit {
			printlnFn(fmt.Sprintf("    +%d more", len(updates)-limit))
			break
		}
		printlnFn("    " + truncate(u.Title, 70))
	}
}
