package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type MarkReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkReadUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *MarkReadUseCase {
	return &MarkReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

type MarkReadCommand struct {
	UserID         uint
	NotificationID uint
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) error {
	if cmd.UserID == 0 {
		return apperrors.NewValidationError("User ID is required")
	}
	if cmd.NotificationID == 0 {
		return apperrors.NewValidationError("Notification ID is required")
	}

	// Scoped by user ID so one user cannot touch another's inbox.
	n, err := uc.notificationRepo.GetByIDAndUserID(ctx, cmd.NotificationID, cmd.UserID)
	if err != nil {
		return err
	}

	if n.IsRead() {
		return nil
	}

	n.MarkRead()
	if err := uc.notificationRepo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to mark notification read", "notification_id", cmd.NotificationID, "error", err)
		return err
	}

	return nil
}
