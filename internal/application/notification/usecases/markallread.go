package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type MarkAllReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkAllReadUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

type MarkAllReadCommand struct {
	UserID uint
}

func (uc *MarkAllReadUseCase) Execute(ctx context.Context, cmd MarkAllReadCommand) error {
	if cmd.UserID == 0 {
		return apperrors.NewValidationError("User ID is required")
	}

	if err := uc.notificationRepo.MarkAllReadByUserID(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to mark all notifications read", "user_id", cmd.UserID, "error", err)
		return err
	}

	return nil
}
