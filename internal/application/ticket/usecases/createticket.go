// Package usecases implements the ticket lifecycle: creation, listing,
// updates, replies, archival and attachment access.
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

// codeAllocationAttempts bounds the retry loop when a generated ticket code
// collides with an existing one.
const codeAllocationAttempts = 5

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	codes      ticket.CodeGenerator
	store      AttachmentStore
	notifier   TicketNotifier
	recorder   ActivityRecorder
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	codes ticket.CodeGenerator,
	store AttachmentStore,
	notifier TicketNotifier,
	recorder ActivityRecorder,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		codes:      codes,
		store:      store,
		notifier:   notifier,
		recorder:   recorder,
		logger:     logger,
	}
}

type CreateTicketCommand struct {
	Actor       authorization.Actor
	Title       string
	Description string
	Priority    string
	Attachment  *multipart.FileHeader
	IPAddress   string
	UserAgent   string
}

type CreateTicketResult struct {
	Ticket *ticket.Ticket
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	actor, err := uc.userRepo.GetByID(ctx, cmd.Actor.UserID)
	if err != nil {
		return nil, err
	}

	t, err := ticket.NewTicket(cmd.Actor.UserID, cmd.Title, cmd.Description, priority)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.allocateCode(ctx, t); err != nil {
		return nil, err
	}

	var storedAttachment string
	if cmd.Attachment != nil {
		name, err := uc.store.Save(cmd.Attachment)
		if err != nil {
			uc.logger.Errorw("failed to store ticket attachment", "error", err)
			return nil, apperrors.NewInternalError("Failed to store attachment")
		}
		storedAttachment = name
		t.SetAttachmentPath(&name)
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		if storedAttachment != "" {
			if cleanupErr := uc.store.Delete(storedAttachment); cleanupErr != nil {
				uc.logger.Warnw("failed to clean up orphaned attachment", "name", storedAttachment, "error", cleanupErr)
			}
		}
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.notifier.NotifyAdmins(ctx, notification.NewTicketCreatedEvent(t.Code(), actor.Name(), t.Description()))

	userID := cmd.Actor.UserID
	uc.recorder.Record(ctx, &userID, activitylog.ActionTicketCreated, "Created ticket "+t.Code(),
		map[string]any{"ticket_code": t.Code(), "priority": priority.String()},
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("ticket created", "ticket_code", t.Code(), "user_id", cmd.Actor.UserID)

	return &CreateTicketResult{Ticket: t}, nil
}

// allocateCode assigns a random code, retrying on collision. The unique index
// on the tickets table is the real guarantee; this check just keeps retries
// out of the save path.
func (uc *CreateTicketUseCase) allocateCode(ctx context.Context, t *ticket.Ticket) error {
	for i := 0; i < codeAllocationAttempts; i++ {
		code, err := uc.codes.Generate(ctx)
		if err != nil {
			return apperrors.NewInternalError("Failed to allocate ticket code")
		}

		exists, err := uc.ticketRepo.ExistsByCode(ctx, code)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		return t.AssignCode(code)
	}

	uc.logger.Errorw("exhausted ticket code allocation attempts")
	return apperrors.NewInternalError("Failed to allocate ticket code")
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.Actor.UserID == 0 {
		return apperrors.NewValidationError("User ID is required")
	}
	if cmd.Title == "" {
		return apperrors.NewValidationError("Title is required")
	}
	if cmd.Description == "" {
		return apperrors.NewValidationError("Description is required")
	}
	if cmd.Priority == "" {
		return apperrors.NewValidationError("Priority is required")
	}
	return nil
}
