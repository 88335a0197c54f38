package cli

import (
	"context"
	"fmt"
	"strings"
)

// Settings edits the notification preferences interactively and sends the
// whole object to the backend. The session snapshot is refreshed from the
// server's response, so Whoami immediately reflects the change.
func (a *App) Settings(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	prefs := a.session.Snapshot().User.Preferences

	var err error
	if prefs.DigestFrequency, err = a.askKeep("Digest frequency (daily/weekly/none)", defaultString(prefs.DigestFrequency, "daily")); err != nil {
		return err
	}
	if prefs.NotificationSettings.ImpactThreshold, err = a.askKeep("Impact threshold (low/medium/high/critical)", defaultString(prefs.NotificationSettings.ImpactThreshold, "high")); err != nil {
		return err
	}
	if prefs.NotificationSettings.Email, err = a.askBool("Email alerts", prefs.NotificationSettings.Email); err != nil {
		return err
	}
	if prefs.NotificationSettings.InApp, err = a.askBool("In-app alerts", prefs.NotificationSettings.InApp); err != nil {
		return err
	}

	categories, err := getList(a.reader, fmt.Sprintf("Monitored categories, comma-separated [%s]", joinList(prefs.MonitoredCategories)), a.out)
	if err != nil {
		return err
	}
	if categories != nil {
		prefs.MonitoredCategories = categories
	}

	if _, err := a.session.UpdatePreferences(ctx, prefs); err != nil {
		return err
	}

	printlnFn("Preferences saved.")
	return nil
}

// askBool prompts for an on/off answer; empty input keeps the current value.
func (a *App) askBool(prompt string, current bool) (bool, error) {
	answer, err := getSimpleText(a.reader, fmt.Sprintf("%s (on/off) [%s]", prompt, onOff(current)), a.out)
	if err != nil {
		return current, err
	}
	switch strings.ToLower(answer) {
	case "":
		return current, nil
	case "on", "y", "yes", "true":
		return true, nil
	case "off", "n", "no", "false":
		return false, nil
	default:
		return current, fmt.Errorf("bad answer %q, expected on or off", answer)
	}
}
