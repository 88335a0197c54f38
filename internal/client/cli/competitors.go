package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/navbug/compintel-cli/internal/client/models"
	"github.com/navbug/compintel-cli/internal/client/services"
	"github.com/navbug/compintel-cli/internal/client/validation"
)

// Competitors lists the monitored companies.
func (a *App) Competitors(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	items, err := a.competitors.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		printlnFn("No competitors yet. Use 'add' to start monitoring one.")
		return nil
	}

	for _, c := range items {
		printlnFn(fmt.Sprintf("%s  %s  %s  [%s]", c.ID, c.Name, c.Website, orDash(c.Status)))
	}
	return nil
}

// ShowCompetitor prints one competitor's profile together with its update
// stats.
func (a *App) ShowCompetitor(ctx context.Context, id string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	c, err := a.competitors.Get(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("%s (%s)", c.Name, orDash(c.Status)))
	printlnFn("Website:", c.Website)
	printlnFn("Industry:", c.Industry)
	if c.Description != "" {
		printlnFn("Description:", c.Description)
	}
	printlnFn(fmt.Sprintf("Monitoring: %s, %s frequency, %s priority",
		onOff(c.MonitoringConfig.Enabled), orDash(c.MonitoringConfig.Frequency), orDash(c.MonitoringConfig.Priority)))
	for _, p := range c.MonitoredChannels.WebsitePages {
		printlnFn(fmt.Sprintf("  page: %s (%s)", p.URL, p.Type))
	}
	for _, f := range c.MonitoredChannels.RSSFeeds {
		printlnFn("  feed:", f.URL)
	}

	stats, err := a.competitors.Stats(ctx, id)
	if err != nil {
		return err
	}
	printlnFn("Total updates:", stats.TotalUpdates)
	if stats.LastDetectedAt != "" {
		printlnFn("Last detected:", stats.LastDetectedAt)
	}
	printBuckets("By category", stats.ByCategory)
	printBuckets("By impact", stats.ByImpact)
	return nil
}

// AddCompetitor walks the interactive form and creates the competitor.
func (a *App) AddCompetitor(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	input, err := a.competitorForm(services.CompetitorInput{
		MonitoringConfig: models.MonitoringConfig{Enabled: true},
	})
	if err != nil {
		return err
	}

	created, err := a.competitors.Create(ctx, input)
	if err != nil {
		return err
	}

	printlnFn("Competitor added:", created.ID)
	return nil
}

// EditCompetitor re-runs the form prefilled with the current values; leaving
// a field empty keeps it.
func (a *App) EditCompetitor(ctx context.Context, id string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	current, err := a.competitors.Get(ctx, id)
	if err != nil {
		return err
	}

	input, err := a.competitorForm(services.CompetitorInput{
		Name:              current.Name,
		Website:           current.Website,
		Industry:          current.Industry,
		Description:       current.Description,
		MonitoredChannels: current.MonitoredChannels,
		MonitoringConfig:  current.MonitoringConfig,
	})
	if err != nil {
		return err
	}

	updated, err := a.competitors.Update(ctx, id, input)
	if err != nil {
		return err
	}

	printlnFn("Competitor updated:", updated.ID)
	return nil
}

// RemoveCompetitor asks for confirmation and deletes the competitor.
func (a *App) RemoveCompetitor(ctx context.Context, id string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Remove competitor %s? (y/N)", id), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.competitors.Delete(ctx, id); err != nil {
		return err
	}
	printlnFn("Competitor removed.")
	return nil
}

// Scrape triggers an immediate re-check of the competitor's channels.
func (a *App) Scrape(ctx context.Context, id string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	if err := a.competitors.TriggerScrape(ctx, id); err != nil {
		return err
	}
	printlnFn("Scrape started. New updates will appear in the feed shortly.")
	return nil
}

// competitorForm collects a competitor payload interactively. Every prompt
// shows the current value; an empty answer keeps it.
func (a *App) competitorForm(current services.CompetitorInput) (services.CompetitorInput, error) {
	input := current

	var err error
	if input.Name, err = a.askKeep("Company name", current.Name); err != nil {
		return input, err
	}
	if input.Website, err = a.askKeep("Website URL", current.Website); err != nil {
		return input, err
	}
	if input.Industry, err = a.askKeep("Industry", current.Industry); err != nil {
		return input, err
	}

	desc, err := getMultiline(a.reader, "Description (optional)", a.out)
	if err != nil {
		return input, err
	}
	if desc != "" {
		input.Description = desc
	}

	pages, err := getList(a.reader, "Monitored pages, comma-separated URLs (empty keeps current)", a.out)
	if err != nil {
		return input, err
	}
	if pages != nil {
		input.MonitoredChannels.WebsitePages = input.MonitoredChannels.WebsitePages[:0]
		for _, u := range pages {
			input.MonitoredChannels.WebsitePages = append(input.MonitoredChannels.WebsitePages,
				models.WebsitePage{URL: u, Type: "other"})
		}
	}

	feeds, err := getList(a.reader, "RSS feeds, comma-separated URLs (empty keeps current)", a.out)
	if err != nil {
		return input, err
	}
	if feeds != nil {
		input.MonitoredChannels.RSSFeeds = input.MonitoredChannels.RSSFeeds[:0]
		for _, u := range feeds {
			input.MonitoredChannels.RSSFeeds = append(input.MonitoredChannels.RSSFeeds, models.RSSFeed{URL: u})
		}
	}

	if input.MonitoringConfig.Frequency, err = a.askKeep("Check frequency (hourly/daily/weekly)", defaultString(current.MonitoringConfig.Frequency, "daily")); err != nil {
		return input, err
	}
	if input.MonitoringConfig.Priority, err = a.askKeep("Priority (low/medium/high)", defaultString(current.MonitoringConfig.Priority, "medium")); err != nil {
		return input, err
	}
	input.MonitoringConfig.Enabled = true

	if err := validation.Competitor(competitorFormOf(input)); err != nil {
		return input, err
	}
	return input, nil
}

// askKeep prompts with the current value appended; empty input keeps it.
func (a *App) askKeep(prompt, current string) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	answer, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func competitorFormOf(input services.CompetitorInput) validation.CompetitorForm {
	form := validation.CompetitorForm{
		Name:        input.Name,
		Website:     input.Website,
		Industry:    input.Industry,
		Description: input.Description,
		Frequency:   input.MonitoringConfig.Frequency,
		Priority:    input.MonitoringConfig.Priority,
	}
	for _, p := range input.MonitoredChannels.WebsitePages {
		form.PageURLs = append(form.PageURLs, p.URL)
	}
	for _, f := range input.MonitoredChannels.RSSFeeds {
		form.FeedURLs = append(form.FeedURLs, f.URL)
	}
	return form
}

func printBuckets(label string, buckets map[string]int) {
	if len(buckets) == 0 {
		return
	}
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %d", k, buckets[k]))
	}
	printlnFn(label+":", joinList(parts))
}
