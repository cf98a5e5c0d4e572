package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// ClearNotificationsUseCase empties the caller's inbox.
type ClearNotificationsUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewClearNotificationsUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *ClearNotificationsUseCase {
	return &ClearNotificationsUseCase{notificationRepo: notificationRepo, logger: logger}
}

type ClearNotificationsCommand struct {
	UserID uint
}

func (uc *ClearNotificationsUseCase) Execute(ctx context.Context, cmd ClearNotificationsCommand) error {
	if cmd.UserID == 0 {
		return apperrors.NewValidationError("User ID is required")
	}

	if err := uc.notificationRepo.DeleteByUserID(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to clear notifications", "user_id", cmd.UserID, "error", err)
		return err
	}

	return nil
}
