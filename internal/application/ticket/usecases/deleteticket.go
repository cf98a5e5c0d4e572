package usecases

import (
	"context"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// DeleteTicketUseCase removes a ticket and its reply thread in one
// transaction. Attachment files are removed afterwards, best-effort: an
// orphaned file is preferable to a half-deleted thread.
type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	replyRepo  ticket.ReplyRepository
	txManager  TransactionManager
	store      AttachmentStore
	recorder   ActivityRecorder
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	replyRepo ticket.ReplyRepository,
	txManager TransactionManager,
	store AttachmentStore,
	recorder ActivityRecorder,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		replyRepo:  replyRepo,
		txManager:  txManager,
		store:      store,
		recorder:   recorder,
		logger:     logger,
	}
}

type DeleteTicketCommand struct {
	Actor     authorization.Actor
	Code      string
	IPAddress string
	UserAgent string
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if cmd.Code == "" {
		return apperrors.NewValidationError("Ticket code is required")
	}

	t, err := uc.ticketRepo.GetByCode(ctx, cmd.Code)
	if err != nil {
		return err
	}

	replies, err := uc.replyRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load replies for deletion", "ticket_code", cmd.Code, "error", err)
		return err
	}

	var files []string
	if t.AttachmentPath() != nil {
		files = append(files, *t.AttachmentPath())
	}
	for _, r := range replies {
		if r.AttachmentPath() != nil {
			files = append(files, *r.AttachmentPath())
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.replyRepo.DeleteByTicketID(ctx, t.ID()); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(ctx, t.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_code", cmd.Code, "error", err)
		return err
	}

	for _, name := range files {
		if err := uc.store.Delete(name); err != nil {
			uc.logger.Warnw("failed to delete attachment file", "name", name, "error", err)
		}
	}

	userID := cmd.Actor.UserID
	uc.recorder.Record(ctx, &userID, activitylog.ActionTicketDeleted, "Deleted ticket "+t.Code(),
		map[string]any{"ticket_code": t.Code()}, cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("ticket deleted", "ticket_code", cmd.Code, "replies", len(replies))
	return nil
}
