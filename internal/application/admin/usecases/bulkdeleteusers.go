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

// BulkDeleteUsersUseCase removes a set of accounts with their full cascades
// in a single transaction. The whole request is refused if the caller's own
// ID is in the set; a bulk delete must never take down the admin running it.
type BulkDeleteUsersUseCase struct {
	repos     cascadeRepos
	txManager TransactionManager
	store     AttachmentStore
	recorder  ActivityRecorder
	logger    logger.Interface
}

func NewBulkDeleteUsersUseCase(
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
) *BulkDeleteUsersUseCase {
	return &BulkDeleteUsersUseCase{
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

type BulkDeleteUsersCommand struct {
	Actor     authorization.Actor
	UserIDs   []uint
	IPAddress string
	UserAgent string
}

type BulkDeleteUsersResult struct {
	DeletedCount int
}

func (uc *BulkDeleteUsersUseCase) Execute(ctx context.Context, cmd BulkDeleteUsersCommand) (*BulkDeleteUsersResult, error) {
	if len(cmd.UserIDs) == 0 {
		return nil, apperrors.NewValidationError("At least one user ID is required")
	}
	for _, id := range cmd.UserIDs {
		if id == cmd.Actor.UserID {
			return nil, apperrors.NewValidationError("You cannot delete your own account")
		}
	}

	users, err := uc.repos.userRepo.GetByIDs(ctx, cmd.UserIDs)
	if err != nil {
		uc.logger.Errorw("failed to load users for bulk delete", "error", err)
		return nil, err
	}

	var files []string
	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, u := range users {
			purged, err := purgeUser(ctx, uc.repos, u)
			if err != nil {
				return err
			}
			files = append(files, purged...)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to bulk delete users", "error", err)
		return nil, err
	}

	for _, name := range files {
		if err := uc.store.Delete(name); err != nil {
			uc.logger.Warnw("failed to delete attachment file", "name", name, "error", err)
		}
	}

	actorID := cmd.Actor.UserID
	uc.recorder.Record(ctx, &actorID, activitylog.ActionUserDeleted, "Bulk deleted users",
		map[string]any{"deleted_count": len(users)}, cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("bulk deleted users", "requested", len(cmd.UserIDs), "deleted", len(users))

	return &BulkDeleteUsersResult{DeletedCount: len(users)}, nil
}
