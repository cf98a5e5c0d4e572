package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	replyRepo  ticket.ReplyRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	replyRepo ticket.ReplyRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		replyRepo:  replyRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

type GetTicketCommand struct {
	Actor authorization.Actor
	Code  string
}

// ReplyDetail pairs a reply with its resolved author. Author is nil when the
// account has since been deleted.
type ReplyDetail struct {
	Reply  *ticket.Reply
	Author *user.User
}

type GetTicketResult struct {
	Ticket  *ticket.Ticket
	Owner   *user.User
	Replies []ReplyDetail
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
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

	replies, err := uc.replyRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket replies", "ticket_code", cmd.Code, "error", err)
		return nil, err
	}

	authors, owner, err := uc.resolveParticipants(ctx, t, replies)
	if err != nil {
		return nil, err
	}

	details := make([]ReplyDetail, 0, len(replies))
	for _, r := range replies {
		details = append(details, ReplyDetail{Reply: r, Author: authors[r.AuthorID()]})
	}

	return &GetTicketResult{Ticket: t, Owner: owner, Replies: details}, nil
}

func (uc *GetTicketUseCase) resolveParticipants(ctx context.Context, t *ticket.Ticket, replies []*ticket.Reply) (map[uint]*user.User, *user.User, error) {
	ids := []uint{t.OwnerID()}
	seen := map[uint]bool{t.OwnerID(): true}
	for _, r := range replies {
		if !seen[r.AuthorID()] {
			seen[r.AuthorID()] = true
			ids = append(ids, r.AuthorID())
		}
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to resolve ticket participants", "ticket_code", t.Code(), "error", err)
		return nil, nil, err
	}

	byID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		byID[u.ID()] = u
	}
	return byID, byID[t.OwnerID()], nil
}
