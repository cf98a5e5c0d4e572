// Package usecases implements the in-app notification inbox.
package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// defaultInboxLimit caps how many notifications the inbox returns.
const defaultInboxLimit = 50

type ListNotificationsUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: notificationRepo, logger: logger}
}

type ListNotificationsCommand struct {
	UserID uint
	Limit  int
}

type ListNotificationsResult struct {
	Notifications []*notification.Notification
	UnreadCount   int64
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, cmd ListNotificationsCommand) (*ListNotificationsResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewValidationError("User ID is required")
	}

	limit := cmd.Limit
	if limit <= 0 || limit > defaultInboxLimit {
		limit = defaultInboxLimit
	}

	notifications, err := uc.notificationRepo.ListByUserID(ctx, cmd.UserID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	unread, err := uc.notificationRepo.CountUnreadByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	return &ListNotificationsResult{Notifications: notifications, UnreadCount: unread}, nil
}
