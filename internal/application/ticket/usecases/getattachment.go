package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// GetAttachmentUseCase resolves the on-disk path of a ticket or reply
// attachment, applying the same ownership rules as viewing the ticket.
type GetAttachmentUseCase struct {
	ticketRepo ticket.TicketRepository
	replyRepo  ticket.ReplyRepository
	store      AttachmentStore
	logger     logger.Interface
}

func NewGetAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	replyRepo ticket.ReplyRepository,
	store AttachmentStore,
	logger logger.Interface,
) *GetAttachmentUseCase {
	return &GetAttachmentUseCase{
		ticketRepo: ticketRepo,
		replyRepo:  replyRepo,
		store:      store,
		logger:     logger,
	}
}

type GetAttachmentCommand struct {
	Actor authorization.Actor
	Code  string
	// ReplyID selects a reply attachment; nil targets the ticket's own.
	ReplyID *uint
}

type GetAttachmentResult struct {
	// Path is the absolute filesystem path to serve.
	Path string
	// Name is the stored file name, used as the download name.
	Name string
}

func (uc *GetAttachmentUseCase) Execute(ctx context.Context, cmd GetAttachmentCommand) (*GetAttachmentResult, error) {
	if cmd.Code == "" {
		return nil, apperrors.NewValidationError("Ticket code is required")
	}

	t, err := uc.ticketRepo.GetByCode(ctx, cmd.Code)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResourceByOwnerID(cmd.Actor.UserID, cmd.Actor.Role, t.OwnerID()) {
		return nil, apperrors.NewForbiddenError("Access forbidden")
	}

	var attachment *string
	if cmd.ReplyID == nil {
		attachment = t.AttachmentPath()
	} else {
		reply, err := uc.replyRepo.GetByID(ctx, *cmd.ReplyID)
		if err != nil {
			return nil, err
		}
		if reply.TicketID() != t.ID() {
			return nil, apperrors.NewNotFoundError("Reply not found")
		}
		attachment = reply.AttachmentPath()
	}

	if attachment == nil {
		return nil, apperrors.NewNotFoundError("Attachment not found")
	}

	path, err := uc.store.Open(*attachment)
	if err != nil {
		uc.logger.Warnw("stored attachment missing from disk", "name", *attachment, "error", err)
		return nil, apperrors.NewNotFoundError("Attachment not found")
	}

	return &GetAttachmentResult{Path: path, Name: *attachment}, nil
}
