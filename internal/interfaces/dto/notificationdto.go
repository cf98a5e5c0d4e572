package dto

import (
	"time"

	"helpdesk/internal/domain/notification"
)

type NotificationHrefResponse struct {
	Name   string            `json:"name"`
	Params map[string]string `json:"params,omitempty"`
}

type NotificationResponse struct {
	ID        uint                     `json:"id"`
	Title     string                   `json:"title"`
	Message   string                   `json:"message"`
	Href      NotificationHrefResponse `json:"href"`
	Meta      map[string]any           `json:"meta,omitempty"`
	Read      bool                     `json:"read"`
	ReadAt    *time.Time               `json:"read_at"`
	CreatedAt time.Time                `json:"created_at"`
}

func FromNotification(n *notification.Notification) NotificationResponse {
	href := n.Href()
	return NotificationResponse{
		ID:      n.ID(),
		Title:   n.Title(),
		Message: n.Message(),
		Href: NotificationHrefResponse{
			Name:   href.Name,
			Params: href.Params,
		},
		Meta:      n.Meta(),
		Read:      n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}
}

func FromNotifications(notifications []*notification.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, FromNotification(n))
	}
	return out
}
