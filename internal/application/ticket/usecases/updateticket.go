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

// UpdateTicketUseCase is the admin edit operation: details, status and the
// attachment can all change in one request.
type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	store      AttachmentStore
	notifier   TicketNotifier
	recorder   ActivityRecorder
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	store AttachmentStore,
	notifier TicketNotifier,
	recorder ActivityRecorder,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		store:      store,
		notifier:   notifier,
		recorder:   recorder,
		logger:     logger,
	}
}

type UpdateTicketCommand struct {
	Actor       authorization.Actor
	Code        string
	Title       string
	Description string
	Priority    string
	// Status is optional; empty leaves the current status untouched.
	Status           string
	Attachment       *multipart.FileHeader
	RemoveAttachment bool
	IPAddress        string
	UserAgent        string
}

type UpdateTicketResult struct {
	Ticket *ticket.Ticket
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByCode(ctx, cmd.Code)
	if err != nil {
		return nil, err
	}

	if err := t.UpdateDetails(cmd.Title, cmd.Description, priority); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	oldStatus := t.Status()
	statusChanged := false
	if cmd.Status != "" {
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

	oldAttachment := ""
	if t.AttachmentPath() != nil {
		oldAttachment = *t.AttachmentPath()
	}

	newAttachment := ""
	switch {
	case cmd.Attachment != nil:
		name, err := uc.store.Save(cmd.Attachment)
		if err != nil {
			uc.logger.Errorw("failed to store ticket attachment", "error", err)
			return nil, apperrors.NewInternalError("Failed to store attachment")
		}
		newAttachment = name
		t.SetAttachmentPath(&name)
	case cmd.RemoveAttachment:
		t.SetAttachmentPath(nil)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		if newAttachment != "" {
			if cleanupErr := uc.store.Delete(newAttachment); cleanupErr != nil {
				uc.logger.Warnw("failed to clean up orphaned attachment", "name", newAttachment, "error", cleanupErr)
			}
		}
		uc.logger.Errorw("failed to update ticket", "ticket_code", cmd.Code, "error", err)
		return nil, err
	}

	// The old file is removed only after the row points at the new one.
	if oldAttachment != "" && (cmd.Attachment != nil || cmd.RemoveAttachment) {
		if err := uc.store.Delete(oldAttachment); err != nil {
			uc.logger.Warnw("failed to delete replaced attachment", "name", oldAttachment, "error", err)
		}
	}

	if statusChanged {
		actorName := ""
		if actor, err := uc.userRepo.GetByID(ctx, cmd.Actor.UserID); err != nil {
			uc.logger.Warnw("failed to load actor for status notification", "user_id", cmd.Actor.UserID, "error", err)
		} else {
			actorName = actor.Name()
		}
		uc.notifier.NotifyUser(ctx, t.OwnerID(),
			notification.NewStatusChangedEvent(t.Code(), actorName, oldStatus.String(), t.Status().String()))
	}

	userID := cmd.Actor.UserID
	uc.recorder.Record(ctx, &userID, activitylog.ActionTicketUpdated, "Updated ticket "+t.Code(),
		map[string]any{"ticket_code": t.Code()}, cmd.IPAddress, cmd.UserAgent)

	return &UpdateTicketResult{Ticket: t}, nil
}

func (uc *UpdateTicketUseCase) validateCommand(cmd UpdateTicketCommand) error {
	if cmd.Code == "" {
		return apperrors.NewValidationError("Ticket code is required")
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
