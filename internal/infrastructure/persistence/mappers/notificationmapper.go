package mappers

import (
	"encoding/json"
	"fmt"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) (*models.NotificationModel, error)
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) (*models.NotificationModel, error) {
	hrefJSON, err := json.Marshal(n.Href())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification href: %w", err)
	}

	var metaJSON []byte
	if n.Meta() != nil {
		metaJSON, err = json.Marshal(n.Meta())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification meta: %w", err)
		}
	}

	return &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Title:     n.Title(),
		Message:   n.Message(),
		Href:      hrefJSON,
		Meta:      metaJSON,
		ReadAt:    timePtrToMillisPtr(n.ReadAt()),
		CreatedAt: timeToMillis(n.CreatedAt()),
	}, nil
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	var href notification.HrefTarget
	if len(model.Href) > 0 {
		if err := json.Unmarshal(model.Href, &href); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification href (id=%d): %w", model.ID, err)
		}
	}

	var meta map[string]any
	if len(model.Meta) > 0 {
		if err := json.Unmarshal(model.Meta, &meta); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification meta (id=%d): %w", model.ID, err)
		}
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.Title,
		model.Message,
		href,
		meta,
		millisPtrToTimePtr(model.ReadAt),
		millisToTime(model.CreatedAt),
	)
}
