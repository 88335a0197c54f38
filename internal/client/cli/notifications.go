package cli

import (
	"context"
	"fmt"
)

// Notifications prints alerts. "notifications unread" restricts the list to
// unread ones.
func (a *App) Notifications(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	unreadOnly := len(args) > 0 && args[0] == "unread"

	items, unread, err := a.notifications.List(ctx, unreadOnly)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("%d unread", unread))
	if len(items) == 0 {
		printlnFn("No notifications.")
		return nil
	}

	for _, n := range items {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s [%s] %s  %s", marker, shortDate(n.CreatedAt), n.ID, truncate(n.Title, 60)))
		if n.Message != "" {
			printlnFn("    " + truncate(n.Message, 100))
		}
	}
	return nil
}

// MarkRead acknowledges one alert.
func (a *App) MarkRead(ctx context.Context, id string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	if err := a.notifications.MarkRead(ctx, id); err != nil {
		return err
	}
	printlnFn("Notification marked as read.")
	return nil
}

// MarkAllRead acknowledges everything at once.
func (a *App) MarkAllRead(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	if err := a.notifications.MarkAllRead(ctx); err != nil {
		return err
	}
	printlnFn("All notifications marked as read.")
	return nil
}
