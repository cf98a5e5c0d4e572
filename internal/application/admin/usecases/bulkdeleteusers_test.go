package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func ticketWithAttachment(t *testing.T, id uint, code string, ownerID uint, attachment string) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	var path *string
	if attachment != "" {
		path = &attachment
	}
	tk, err := ticket.ReconstructTicket(id, code, ownerID, "Broken laptop", "It will not boot",
		vo.PriorityHigh, vo.StatusOpen, path, nil, nil, now, now)
	require.NoError(t, err)
	return tk
}

func newBulkDeleteUseCase(userRepo *mockUserRepo, ticketRepo *mockTicketRepo, replyRepo *mockReplyRepo, notifRepo *mockNotificationRepo, sessionRepo *mockSessionRepo, store *mockStore, recorder *mockRecorder) *BulkDeleteUsersUseCase {
	return NewBulkDeleteUsersUseCase(
		userRepo, sessionRepo, &mockTokenRepo{}, ticketRepo, replyRepo, notifRepo,
		mockTxManager{}, store, recorder, logger.NewLogger(),
	)
}

func TestBulkDeleteRefusesSelfDelete(t *testing.T) {
	uc := newBulkDeleteUseCase(newMockUserRepo(), &mockTicketRepo{}, &mockReplyRepo{}, &mockNotificationRepo{}, &mockSessionRepo{}, &mockStore{}, &mockRecorder{})

	_, err := uc.Execute(context.Background(), BulkDeleteUsersCommand{
		Actor:   authorization.Actor{UserID: 1, Role: authorization.RoleAdmin},
		UserIDs: []uint{5, 1, 9},
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Equal(t, "You cannot delete your own account", appErr.Message)
}

func TestBulkDeleteCascades(t *testing.T) {
	userRepo := newMockUserRepo()
	userRepo.usersByID[5] = testUser(t, 5, "victim@example.com", authorization.RoleUser)

	ticketRepo := &mockTicketRepo{byOwner: map[uint][]*ticket.Ticket{
		5: {ticketWithAttachment(t, 10, "TIC-10000", 5, "file-a.png")},
	}}
	replyRepo := &mockReplyRepo{byTicketIDs: map[uint][]*ticket.Reply{}}
	notifRepo := &mockNotificationRepo{}
	sessionRepo := &mockSessionRepo{}
	store := &mockStore{}
	recorder := &mockRecorder{}

	uc := newBulkDeleteUseCase(userRepo, ticketRepo, replyRepo, notifRepo, sessionRepo, store, recorder)

	result, err := uc.Execute(context.Background(), BulkDeleteUsersCommand{
		Actor:   authorization.Actor{UserID: 1, Role: authorization.RoleAdmin},
		UserIDs: []uint{5},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.DeletedCount)

	assert.Equal(t, [][]uint{{10}}, replyRepo.deletedTicketIDs, "reply threads of owned tickets removed")
	assert.Equal(t, []uint{5}, replyRepo.deletedAuthors, "replies authored elsewhere removed")
	assert.Equal(t, []uint{5}, ticketRepo.deletedOwners)
	assert.Equal(t, []uint{5}, notifRepo.deletedUsers)
	assert.Equal(t, []uint{5}, sessionRepo.deletedUsers)
	assert.Equal(t, []uint{5}, userRepo.deleted)
	assert.Equal(t, []string{"file-a.png"}, store.deleted, "attachment files removed after commit")
	assert.Equal(t, []string{"user_deleted"}, recorder.actions)
}

func TestBulkDeleteSkipsUnknownIDs(t *testing.T) {
	userRepo := newMockUserRepo()
	userRepo.usersByID[5] = testUser(t, 5, "victim@example.com", authorization.RoleUser)

	uc := newBulkDeleteUseCase(userRepo, &mockTicketRepo{}, &mockReplyRepo{}, &mockNotificationRepo{}, &mockSessionRepo{}, &mockStore{}, &mockRecorder{})

	result, err := uc.Execute(context.Background(), BulkDeleteUsersCommand{
		Actor:   authorization.Actor{UserID: 1, Role: authorization.RoleAdmin},
		UserIDs: []uint{5, 999},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.DeletedCount)
}
