package usecases

import (
	"context"
	"mime/multipart"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// AddReplyUseCase appends a message to a ticket thread. An admin reply may
// carry a status change; the reply and the status update commit in one
// transaction and each raises its own notification to the ticket owner.
type AddReplyUseCase struct {
	ticketRepo ticket.TicketRepository
	replyRepo  ticket.ReplyRepository
	userRepo   user.UserRepository
	txManager  TransactionManager
	store      AttachmentStore
	notifier   TicketNotifier
	recorder   ActivityRecorder
	logger     logger.Interface
}

func NewAddReplyUseCase(
	ticketRepo ticket.TicketRepository,
	replyRepo ticket.ReplyRepository,
	userRepo user.UserRepository,
	txManager TransactionManager,
	store AttachmentStore,
	notifier TicketNotifier,
	recorder ActivityRecorder,
	logger logger.Interface,
) *AddReplyUseCase {
	return &AddReplyUseCase{
		ticketRepo: ticketRepo,
		replyRepo:  replyRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		store:      store,
		notifier:   notifier,
		recorder:   recorder,
		logger:     logger,
	}
}

type AddReplyCommand struct {
	Actor   authorization.Actor
	Code    string
	Content string
	// Status lets an admin change the ticket status alongside the reply.
	// Ignored for regular users.
	Status     string
	Attachment *multipart.FileHeader
	IPAddress  string
	UserAgent  string
}

type AddReplyResult struct {
	Reply  *ticket.Reply
	Ticket *ticket.Ticket
}

func (uc *AddReplyUseCase) Execute(ctx context.Context, cmd AddReplyCommand) (*AddReplyResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetByCode(ctx, cmd.Code)
	if err != nil {
		return nil, err
	}

	if !cmd.Actor.IsAdmin() && !t.IsOwnedBy(cmd.Actor.UserID) {
		return nil, apperrors.NewForbiddenError("Access forbidden")
	}

	actor, err := uc.userRepo.GetByID(ctx, cmd.Actor.UserID)
	if err != nil {
		return nil, err
	}

	reply, err := ticket.NewReply(t.ID(), cmd.Actor.UserID, cmd.Content)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	oldStatus := t.Status()
	statusChanged := false
	if cmd.Actor.IsAdmin() && cmd.Status != "" {
		newStatus, err := vo.NewTicketStatus(cmd.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if newStatus != oldStatus {
			if err := t.ChangeStatus(newStatus); err != nil {
				return nil, apperrors.NewValidationError(err.Error())
			}
			statusChanged = true
		}
	}

	var storedAttachment string
	if cmd.Attachment != nil {
		name, err := uc.store.Save(cmd.Attachment)
		if err != nil {
			uc.logger.Errorw("failed to store reply attachment", "error", err)
			return nil, apperrors.NewInternalError("Failed to store attachment")
		}
		storedAttachment = name
		reply.SetAttachmentPath(&name)
	}

	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.replyRepo.Save(ctx, reply); err != nil {
			return err
		}
		if statusChanged {
			return uc.ticketRepo.Update(ctx, t)
		}
		return nil
	})
	if err != nil {
		if storedAttachment != "" {
			if cleanupErr := uc.store.Delete(storedAttachment); cleanupErr != nil {
				uc.logger.Warnw("failed to clean up orphaned attachment", "name", storedAttachment, "error", cleanupErr)
			}
		}
		uc.logger.Errorw("failed to save reply", "ticket_code", cmd.Code, "error", err)
		return nil, err
	}

	if cmd.Actor.IsAdmin() {
		uc.notifier.NotifyUser(ctx, t.OwnerID(),
			notification.NewAdminRepliedEvent(t.Code(), actor.Name(), cmd.Content))
		if statusChanged {
			uc.notifier.NotifyUser(ctx, t.OwnerID(),
				notification.NewStatusChangedEvent(t.Code(), actor.Name(), oldStatus.String(), t.Status().String()))
		}
	} else {
		uc.notifier.NotifyAdmins(ctx,
			notification.NewUserRepliedEvent(t.Code(), actor.Name(), cmd.Content))
	}

	userID := cmd.Actor.UserID
	uc.recorder.Record(ctx, &userID, activitylog.ActionTicketReplied, "Replied to ticket "+t.Code(),
		map[string]any{"ticket_code": t.Code()}, cmd.IPAddress, cmd.UserAgent)

	return &AddReplyResult{Reply: reply, Ticket: t}, nil
}

func (uc *AddReplyUseCase) validateCommand(cmd AddReplyCommand) error {
	if cmd.Actor.UserID == 0 {
		return apperrors.NewValidationError("User ID is required")
	}
	if cmd.Code == "" {
		return apperrors.NewValidationError("Ticket code is required")
	}
	if cmd.Content == "" {
		return apperrors.NewValidationError("Content is required")
	}
	return nil
}
