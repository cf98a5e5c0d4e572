package usecases

import (
	"context"
	"strings"
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

func newCreateTicketUseCase(t *testing.T, repo *mockTicketRepo, codes *mockCodeGenerator, notifier *mockNotifier, recorder *mockRecorder) *CreateTicketUseCase {
	userRepo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, userID uint) (*user.User, error) {
			return testActorUser(t, userID, "Alice", authorization.RoleUser), nil
		},
	}
	return NewCreateTicketUseCase(repo, userRepo, codes, &mockAttachmentStore{}, notifier, recorder, logger.NewLogger())
}

func TestCreateTicketSuccess(t *testing.T) {
	repo := &mockTicketRepo{}
	notifier := &mockNotifier{}
	recorder := &mockRecorder{}
	uc := newCreateTicketUseCase(t, repo, &mockCodeGenerator{codes: []string{"TIC-11111"}}, notifier, recorder)

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       authorization.Actor{UserID: 7, Role: authorization.RoleUser},
		Title:       "Printer down",
		Description: "The office printer is down",
		Priority:    "high",
	})

	require.NoError(t, err)
	assert.Equal(t, "TIC-11111", result.Ticket.Code())
	assert.True(t, strings.HasPrefix(result.Ticket.Code(), ticket.CodePrefix))
	assert.Equal(t, vo.StatusOpen, result.Ticket.Status())
	assert.Equal(t, uint(7), result.Ticket.OwnerID())

	require.Len(t, notifier.events, 1)
	assert.Equal(t, notification.EventTicketCreated, notifier.events[0].event.Kind)
	assert.Equal(t, uint(0), notifier.events[0].userID, "creation notifies admins, not a single user")

	assert.Equal(t, []string{"ticket_created"}, recorder.actions)
}

func TestCreateTicketRetriesOnCodeCollision(t *testing.T) {
	taken := map[string]bool{"TIC-11111": true, "TIC-22222": true}
	repo := &mockTicketRepo{
		existsByCodeFn: func(ctx context.Context, code string) (bool, error) {
			return taken[code], nil
		},
	}
	codes := &mockCodeGenerator{codes: []string{"TIC-11111", "TIC-22222", "TIC-33333"}}
	uc := newCreateTicketUseCase(t, repo, codes, &mockNotifier{}, &mockRecorder{})

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       authorization.Actor{UserID: 7, Role: authorization.RoleUser},
		Title:       "Printer down",
		Description: "The office printer is down",
		Priority:    "low",
	})

	require.NoError(t, err)
	assert.Equal(t, "TIC-33333", result.Ticket.Code())
	assert.Equal(t, 3, codes.calls)
}

func TestCreateTicketExhaustsCodeAttempts(t *testing.T) {
	repo := &mockTicketRepo{
		existsByCodeFn: func(ctx context.Context, code string) (bool, error) { return true, nil },
	}
	uc := newCreateTicketUseCase(t, repo, &mockCodeGenerator{codes: []string{"TIC-11111"}}, &mockNotifier{}, &mockRecorder{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       authorization.Actor{UserID: 7, Role: authorization.RoleUser},
		Title:       "Printer down",
		Description: "The office printer is down",
		Priority:    "low",
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func TestCreateTicketInvalidPriority(t *testing.T) {
	uc := newCreateTicketUseCase(t, &mockTicketRepo{}, &mockCodeGenerator{codes: []string{"TIC-11111"}}, &mockNotifier{}, &mockRecorder{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       authorization.Actor{UserID: 7, Role: authorization.RoleUser},
		Title:       "Printer down",
		Description: "The office printer is down",
		Priority:    "urgent",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
