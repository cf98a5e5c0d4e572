package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

// failingTxManager rejects the transaction before the callback runs.
type failingTxManager struct{}

func (failingTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return assert.AnError
}

func testReply(t *testing.T, id, ticketID, authorID uint, attachment *string) *ticket.Reply {
	t.Helper()
	now := time.Now()
	r, err := ticket.ReconstructReply(id, ticketID, authorID, "reply content", attachment, now, now)
	require.NoError(t, err)
	return r
}

func TestDeleteTicketCascadesRepliesAndAttachments(t *testing.T) {
	tk := testTicket(t, 1, "TIC-11111", 7, vo.StatusOpen)
	ticketFile := "ticket-file.png"
	tk.SetAttachmentPath(&ticketFile)

	replyFile := "reply-file.pdf"
	replies := []*ticket.Reply{
		testReply(t, 1, 1, 7, &replyFile),
		testReply(t, 2, 1, 2, nil),
	}

	ticketRepo := &mockTicketRepo{
		getByCodeFn: func(ctx context.Context, code string) (*ticket.Ticket, error) { return tk, nil },
	}
	replyRepo := &mockReplyRepo{
		getByTicketIDFn: func(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) { return replies, nil },
	}
	store := &mockAttachmentStore{}
	recorder := &mockRecorder{}
	uc := NewDeleteTicketUseCase(ticketRepo, replyRepo, mockTxManager{}, store, recorder, logger.NewLogger())

	err := uc.Execute(context.Background(), DeleteTicketCommand{
		Actor: authorization.Actor{UserID: 2, Role: authorization.RoleAdmin},
		Code:  "TIC-11111",
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{1}, replyRepo.deletedTickets, "replies removed with the ticket")
	assert.Equal(t, []uint{1}, ticketRepo.deleted)
	assert.ElementsMatch(t, []string{"ticket-file.png", "reply-file.pdf"}, store.deleted,
		"both the ticket's and each reply's attachment files are removed")
	assert.Equal(t, []string{activitylog.ActionTicketDeleted}, recorder.actions)
}

func TestDeleteTicketWithoutAttachments(t *testing.T) {
	tk := testTicket(t, 1, "TIC-11111", 7, vo.StatusOpen)
	ticketRepo := &mockTicketRepo{
		getByCodeFn: func(ctx context.Context, code string) (*ticket.Ticket, error) { return tk, nil },
	}
	replyRepo := &mockReplyRepo{}
	store := &mockAttachmentStore{}
	uc := NewDeleteTicketUseCase(ticketRepo, replyRepo, mockTxManager{}, store, &mockRecorder{}, logger.NewLogger())

	err := uc.Execute(context.Background(), DeleteTicketCommand{
		Actor: authorization.Actor{UserID: 2, Role: authorization.RoleAdmin},
		Code:  "TIC-11111",
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{1}, ticketRepo.deleted)
	assert.Empty(t, store.deleted)
}

func TestDeleteTicketFailedTransactionKeepsFiles(t *testing.T) {
	tk := testTicket(t, 1, "TIC-11111", 7, vo.StatusOpen)
	ticketFile := "ticket-file.png"
	tk.SetAttachmentPath(&ticketFile)

	ticketRepo := &mockTicketRepo{
		getByCodeFn: func(ctx context.Context, code string) (*ticket.Ticket, error) { return tk, nil },
	}
	store := &mockAttachmentStore{}
	recorder := &mockRecorder{}
	uc := NewDeleteTicketUseCase(ticketRepo, &mockReplyRepo{}, failingTxManager{}, store, recorder, logger.NewLogger())

	err := uc.Execute(context.Background(), DeleteTicketCommand{
		Actor: authorization.Actor{UserID: 2, Role: authorization.RoleAdmin},
		Code:  "TIC-11111",
	})

	require.Error(t, err)
	assert.Empty(t, store.deleted, "attachment files stay when the row deletion rolls back")
	assert.Empty(t, recorder.actions)
}

func TestDeleteTicketRequiresCode(t *testing.T) {
	uc := NewDeleteTicketUseCase(&mockTicketRepo{}, &mockReplyRepo{}, mockTxManager{}, &mockAttachmentStore{}, &mockRecorder{}, logger.NewLogger())

	err := uc.Execute(context.Background(), DeleteTicketCommand{
		Actor: authorization.Actor{UserID: 2, Role: authorization.RoleAdmin},
	})

	require.Error(t, err)
}
