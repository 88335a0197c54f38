package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/navbug/compintel-cli/internal/client/models"
)

// NotificationService reads and acknowledges per-user alerts.
type NotificationService struct {
	gw api
}

func NewNotificationService(gw api) *NotificationService {
	return &NotificationService{gw: gw}
}

// List returns notifications plus the backend's unread counter. With
// unreadOnly set, already-read entries are filtered out server-side.
func (s *NotificationService) List(ctx context.Context, unreadOnly bool) ([]models.Notification, int, error) {
	path := "/notifications"
	if unreadOnly {
		path += "?read=false"
	}

	var resp struct {
		Data        []models.Notification `json:"data"`
		UnreadCount int                   `json:"unreadCount"`
	}
	if err := s.gw.Get(ctx, path, &resp); err != nil {
		return nil, 0, fmt.Errorf("fetch notifications: %w", err)
	}
	return resp.Data, resp.UnreadCount, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if err := s.gw.Put(ctx, "/notifications/"+url.PathEscape(id)+"/read", nil, nil); err != nil {
		return fmt.Errorf("mark notification %s read: %w", id, err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	if err := s.gw.Put(ctx, "/notifications/read-all", nil, nil); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}
