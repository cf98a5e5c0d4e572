package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestListTicketsScopesRegularUserToOwnTickets(t *testing.T) {
	var captured ticket.TicketFilter
	repo := &mockTicketRepo{
		listFn: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	uc := NewListTicketsUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ListTicketsCommand{
		Actor: authorization.Actor{UserID: 7, Role: authorization.RoleUser},
	})

	require.NoError(t, err)
	require.NotNil(t, captured.OwnerID)
	assert.Equal(t, uint(7), *captured.OwnerID)
}

func TestListTicketsAdminSeesAll(t *testing.T) {
	var captured ticket.TicketFilter
	repo := &mockTicketRepo{
		listFn: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	uc := NewListTicketsUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ListTicketsCommand{
		Actor: authorization.Actor{UserID: 1, Role: authorization.RoleAdmin},
	})

	require.NoError(t, err)
	assert.Nil(t, captured.OwnerID)
}

func TestListTicketsPassesArchivedTriState(t *testing.T) {
	var captured ticket.TicketFilter
	repo := &mockTicketRepo{
		listFn: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	uc := NewListTicketsUseCase(repo, logger.NewLogger())

	archived := true
	_, err := uc.Execute(context.Background(), ListTicketsCommand{
		Actor:    authorization.Actor{UserID: 1, Role: authorization.RoleAdmin},
		Archived: &archived,
	})
	require.NoError(t, err)
	require.NotNil(t, captured.Archived)
	assert.True(t, *captured.Archived)

	_, err = uc.Execute(context.Background(), ListTicketsCommand{
		Actor: authorization.Actor{UserID: 1, Role: authorization.RoleAdmin},
	})
	require.NoError(t, err)
	assert.Nil(t, captured.Archived, "absent filter hides archived tickets by default")
}

func TestListTicketsInvalidStatusFilter(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepo{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ListTicketsCommand{
		Actor:  authorization.Actor{UserID: 1, Role: authorization.RoleAdmin},
		Status: "closed",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
