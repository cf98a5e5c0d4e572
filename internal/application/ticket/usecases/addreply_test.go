package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func newAddReplyUseCase(t *testing.T, ticketRepo *mockTicketRepo, replyRepo *mockReplyRepo, notifier *mockNotifier, actorName string, actorRole authorization.UserRole) *AddReplyUseCase {
	userRepo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, userID uint) (*user.User, error) {
			return testActorUser(t, userID, actorName, actorRole), nil
		},
	}
	return NewAddReplyUseCase(ticketRepo, replyRepo, userRepo, mockTxManager{}, &mockAttachmentStore{}, notifier, &mockRecorder{}, logger.NewLogger())
}

func TestAddReplyByOwnerNotifiesAdmins(t *testing.T) {
	tk := testTicket(t, 1, "TIC-11111", 7, vo.StatusOpen)
	ticketRepo := &mockTicketRepo{
		getByCodeFn: func(ctx context.Context, code string) (*ticket.Ticket, error) { return tk, nil },
	}
	replyRepo := &mockReplyRepo{}
	notifier := &mockNotifier{}
	uc := newAddReplyUseCase(t, ticketRepo, replyRepo, notifier, "Alice", authorization.RoleUser)

	result, err := uc.Execute(context.Background(), AddReplyCommand{
		Actor:   authorization.Actor{UserID: 7, Role: authorization.RoleUser},
		Code:    "TIC-11111",
		Content: "Still broken after restart",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.Reply.TicketID())
	require.Len(t, replyRepo.saved, 1)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, notification.EventUserReplied, notifier.events[0].event.Kind)
	assert.Equal(t, uint(0), notifier.events[0].userID, "user replies broadcast to admins")
}

func TestAddReplyByForeignUserForbidden(t *testing.T) {
	tk := testTicket(t, 1, "TIC-11111", 7, vo.StatusOpen)
	ticketRepo := &mockTicketRepo{
		getByCodeFn: func(ctx context.Context, code string) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := newAddReplyUseCase(t, ticketRepo, &mockReplyRepo{}, &mockNotifier{}, "Mallory", authorization.RoleUser)

	_, err := uc.Execute(context.Background(), AddReplyCommand{
		Actor:   authorization.Actor{UserID: 99, Role: authorization.RoleUser},
		Code:    "TIC-11111",
		Content: "let me in",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestAddReplyByAdminWithStatusChange(t *testing.T) {
	tk := testTicket(t, 1, "TIC-11111", 7, vo.StatusOnProgress)
	ticketRepo := &mockTicketRepo{
		getByCodeFn: func(ctx context.Context, code string) (*ticket.Ticket, error) { return tk, nil },
	}
	replyRepo := &mockReplyRepo{}
	notifier := &mockNotifier{}
	uc := newAddReplyUseCase(t, ticketRepo, replyRepo, notifier, "Bob", authorization.RoleAdmin)

	result, err := uc.Execute(context.Background(), AddReplyCommand{
		Actor:   authorization.Actor{UserID: 2, Role: authorization.RoleAdmin},
		Code:    "TIC-11111",
		Content: "Replaced the toner, resolving",
		Status:  "resolved",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved, result.Ticket.Status())
	require.NotNil(t, result.Ticket.CompletedAt())
	require.Len(t, ticketRepo.updated, 1, "status change persists with the reply")

	require.Len(t, notifier.events, 2)
	assert.Equal(t, notification.EventAdminReplied, notifier.events[0].event.Kind)
	assert.Equal(t, uint(7), notifier.events[0].userID)
	assert.Equal(t, notification.EventStatusChanged, notifier.events[1].event.Kind)
	assert.Equal(t, uint(7), notifier.events[1].userID)
	assert.Equal(t, "onprogress", notifier.events[1].event.OldStatus)
	assert.Equal(t, "resolved", notifier.events[1].event.NewStatus)
}

func TestAddReplyByAdminSameStatusIsNoop(t *testing.T) {
	tk := testTicket(t, 1, "TIC-11111", 7, vo.StatusOnProgress)
	ticketRepo := &mockTicketRepo{
		getByCodeFn: func(ctx context.Context, code string) (*ticket.Ticket, error) { return tk, nil },
	}
	notifier := &mockNotifier{}
	uc := newAddReplyUseCase(t, ticketRepo, &mockReplyRepo{}, notifier, "Bob", authorization.RoleAdmin)

	_, err := uc.Execute(context.Background(), AddReplyCommand{
		Actor:   authorization.Actor{UserID: 2, Role: authorization.RoleAdmin},
		Code:    "TIC-11111",
		Content: "Working on it",
		Status:  "onprogress",
	})

	require.NoError(t, err)
	assert.Empty(t, ticketRepo.updated)

	require.Len(t, notifier.events, 1, "no status notification when the status did not change")
	assert.Equal(t, notification.EventAdminReplied, notifier.events[0].event.Kind)
}

func TestAddReplyIgnoresStatusFromRegularUser(t *testing.T) {
	tk := testTicket(t, 1, "TIC-11111", 7, vo.StatusOpen)
	ticketRepo := &mockTicketRepo{
		getByCodeFn: func(ctx context.Context, code string) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := newAddReplyUseCase(t, ticketRepo, &mockReplyRepo{}, &mockNotifier{}, "Alice", authorization.RoleUser)

	result, err := uc.Execute(context.Background(), AddReplyCommand{
		Actor:   authorization.Actor{UserID: 7, Role: authorization.RoleUser},
		Code:    "TIC-11111",
		Content: "Please close this",
		Status:  "resolved",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusOpen, result.Ticket.Status())
	assert.Empty(t, ticketRepo.updated)
}
