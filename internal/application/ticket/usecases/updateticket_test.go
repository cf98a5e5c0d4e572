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
	"helpdesk/internal/shared/logger"
)

func TestUpdateTicketStatusChangeNotifiesOwner(t *testing.T) {
	tk := testTicket(t, 1, "TIC-11111", 7, vo.StatusOpen)
	ticketRepo := &mockTicketRepo{
		getByCodeFn: func(ctx context.Context, code string) (*ticket.Ticket, error) { return tk, nil },
	}
	userRepo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, userID uint) (*user.User, error) {
			return testActorUser(t, userID, "Bob", authorization.RoleAdmin), nil
		},
	}
	notifier := &mockNotifier{}
	uc := NewUpdateTicketUseCase(ticketRepo, userRepo, &mockAttachmentStore{}, notifier, &mockRecorder{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Actor:       authorization.Actor{UserID: 2, Role: authorization.RoleAdmin},
		Code:        "TIC-11111",
		Title:       "Printer down",
		Description: "The office printer is down",
		Priority:    "medium",
		Status:      "onprogress",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusOnProgress, result.Ticket.Status())

	require.Len(t, notifier.events, 1)
	assert.Equal(t, notification.EventStatusChanged, notifier.events[0].event.Kind)
	assert.Equal(t, uint(7), notifier.events[0].userID)
	assert.Equal(t, "Bob", notifier.events[0].event.ActorName)
}

func TestUpdateTicketNotifiesEvenWhenActorLookupFails(t *testing.T) {
	tk := testTicket(t, 1, "TIC-11111", 7, vo.StatusOpen)
	ticketRepo := &mockTicketRepo{
		getByCodeFn: func(ctx context.Context, code string) (*ticket.Ticket, error) { return tk, nil },
	}
	userRepo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, userID uint) (*user.User, error) {
			return nil, assert.AnError
		},
	}
	notifier := &mockNotifier{}
	uc := NewUpdateTicketUseCase(ticketRepo, userRepo, &mockAttachmentStore{}, notifier, &mockRecorder{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Actor:       authorization.Actor{UserID: 2, Role: authorization.RoleAdmin},
		Code:        "TIC-11111",
		Title:       "Printer down",
		Description: "The office printer is down",
		Priority:    "medium",
		Status:      "resolved",
	})

	require.NoError(t, err)
	require.Len(t, notifier.events, 1, "status notification still goes out")
	assert.Equal(t, notification.EventStatusChanged, notifier.events[0].event.Kind)
	assert.Empty(t, notifier.events[0].event.ActorName)
}

func TestUpdateTicketUnchangedStatusDoesNotNotify(t *testing.T) {
	tk := testTicket(t, 1, "TIC-11111", 7, vo.StatusOpen)
	ticketRepo := &mockTicketRepo{
		getByCodeFn: func(ctx context.Context, code string) (*ticket.Ticket, error) { return tk, nil },
	}
	notifier := &mockNotifier{}
	uc := NewUpdateTicketUseCase(ticketRepo, &mockUserRepo{}, &mockAttachmentStore{}, notifier, &mockRecorder{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Actor:       authorization.Actor{UserID: 2, Role: authorization.RoleAdmin},
		Code:        "TIC-11111",
		Title:       "Printer down",
		Description: "The office printer is down",
		Priority:    "medium",
		Status:      "open",
	})

	require.NoError(t, err)
	assert.Empty(t, notifier.events)
	require.Len(t, ticketRepo.updated, 1, "detail edit still persists")
}
