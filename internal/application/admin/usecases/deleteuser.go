package usecases

import (
	"context"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// DeleteUserUseCase removes one account with its full cascade. Admins cannot
// delete themselves.
type DeleteUserUseCase struct {
	repos     cascadeRepos
	txManager TransactionManager
	store     AttachmentStore
	recorder  ActivityRecorder
	logger    logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.UserRepository,
	sessionRepo user.SessionRepository,
	tokenRepo user.PasswordResetTokenRepository,
	ticketRepo ticket.TicketRepository,
	replyRepo ticket.ReplyRepository,
	notificationRepo notification.NotificationRepository,
	txManager TransactionManager,
	store AttachmentStore,
	recorder ActivityRecorder,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		repos: cascadeRepos{
			userRepo:         userRepo,
			sessionRepo:      sessionRepo,
			tokenRepo:        tokenRepo,
			ticketRepo:       ticketRepo,
			replyRepo:        replyRepo,
			notificationRepo: notificationRepo,
		},
		txManager: txManager,
		store:     store,
		recorder:  recorder,
		logger:    logger,
	}
}

type DeleteUserCommand struct {
	Actor     authorization.Actor
	UserID    uint
	IPAddress string
	UserAgent string
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == 0 {
		return apperrors.NewValidationError("User ID is required")
	}
	if cmd.UserID == cmd.Actor.UserID {
		return apperrors.NewValidationError("You cannot delete your own account")
	}

	u, err := uc.repos.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	var files []string
	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		files, err = purgeUser(ctx, uc.repos, u)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return err
	}

	for _, name := range files {
		if err := uc.store.Delete(name); err != nil {
			uc.logger.Warnw("failed to delete attachment file", "name", name, "error", err)
		}
	}

	actorID := cmd.Actor.UserID
	uc.recorder.Record(ctx, &actorID, activitylog.ActionUserDeleted, "Deleted user "+u.Email(),
		map[string]any{"target_user_id": cmd.UserID}, cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("user deleted", "user_id", cmd.UserID)
	return nil
}
