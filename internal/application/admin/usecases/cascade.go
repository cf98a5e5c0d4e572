package usecases

import (
	"context"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

// cascadeRepos bundles the repositories the account removal cascade touches.
type cascadeRepos struct {
	userRepo         user.UserRepository
	sessionRepo      user.SessionRepository
	tokenRepo        user.PasswordResetTokenRepository
	ticketRepo       ticket.TicketRepository
	replyRepo        ticket.ReplyRepository
	notificationRepo notification.NotificationRepository
}

// purgeUser removes one account and everything hanging off it: owned tickets
// with their reply threads, replies the user wrote on other tickets, the
// notification inbox, login sessions and any pending reset token. It returns
// the attachment file names to delete once the transaction has committed.
func purgeUser(ctx context.Context, repos cascadeRepos, u *user.User) ([]string, error) {
	tickets, err := repos.ticketRepo.GetByOwnerID(ctx, u.ID())
	if err != nil {
		return nil, err
	}

	var files []string
	ticketIDs := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		ticketIDs = append(ticketIDs, t.ID())
		if t.AttachmentPath() != nil {
			files = append(files, *t.AttachmentPath())
		}
	}

	if len(ticketIDs) > 0 {
		replies, err := repos.replyRepo.GetByTicketIDs(ctx, ticketIDs)
		if err != nil {
			return nil, err
		}
		for _, r := range replies {
			if r.AttachmentPath() != nil {
				files = append(files, *r.AttachmentPath())
			}
		}
		if err := repos.replyRepo.DeleteByTicketIDs(ctx, ticketIDs); err != nil {
			return nil, err
		}
	}

	// Replies the user authored on tickets they do not own.
	if err := repos.replyRepo.DeleteByAuthorID(ctx, u.ID()); err != nil {
		return nil, err
	}
	if err := repos.ticketRepo.DeleteByOwnerID(ctx, u.ID()); err != nil {
		return nil, err
	}
	if err := repos.notificationRepo.DeleteByUserID(ctx, u.ID()); err != nil {
		return nil, err
	}
	if err := repos.sessionRepo.DeleteByUserID(ctx, u.ID()); err != nil {
		return nil, err
	}
	if err := repos.tokenRepo.DeleteByEmail(ctx, u.Email()); err != nil {
		return nil, err
	}
	if err := repos.userRepo.Delete(ctx, u.ID()); err != nil {
		return nil, err
	}

	return files, nil
}
