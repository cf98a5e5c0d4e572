package usecases

import (
	"context"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// ArchiveTicketUseCase hides a ticket from default listings, or restores it.
// Archival never touches the ticket status.
type ArchiveTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	recorder   ActivityRecorder
	logger     logger.Interface
}

func NewArchiveTicketUseCase(ticketRepo ticket.TicketRepository, recorder ActivityRecorder, logger logger.Interface) *ArchiveTicketUseCase {
	return &ArchiveTicketUseCase{
		ticketRepo: ticketRepo,
		recorder:   recorder,
		logger:     logger,
	}
}

type ArchiveTicketCommand struct {
	Actor     authorization.Actor
	Code      string
	Archive   bool
	IPAddress string
	UserAgent string
}

type ArchiveTicketResult struct {
	Ticket *ticket.Ticket
}

func (uc *ArchiveTicketUseCase) Execute(ctx context.Context, cmd ArchiveTicketCommand) (*ArchiveTicketResult, error) {
	if cmd.Code == "" {
		return nil, apperrors.NewValidationError("Ticket code is required")
	}

	t, err := uc.ticketRepo.GetByCode(ctx, cmd.Code)
	if err != nil {
		return nil, err
	}

	if cmd.Archive {
		t.Archive()
	} else {
		t.Unarchive()
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket archival", "ticket_code", cmd.Code, "error", err)
		return nil, err
	}

	description := "Archived ticket " + t.Code()
	if !cmd.Archive {
		description = "Unarchived ticket " + t.Code()
	}
	userID := cmd.Actor.UserID
	uc.recorder.Record(ctx, &userID, activitylog.ActionTicketArchived, description,
		map[string]any{"ticket_code": t.Code(), "archived": cmd.Archive},
		cmd.IPAddress, cmd.UserAgent)

	return &ArchiveTicketResult{Ticket: t}, nil
}
