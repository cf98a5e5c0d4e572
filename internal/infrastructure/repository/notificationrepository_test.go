package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/notification"
)

func createTestNotification(t *testing.T, repo *NotificationRepository, userID uint, title string) *notification.Notification {
	n, err := notification.NewNotification(
		userID,
		title,
		"Test message",
		notification.HrefTarget{Name: "ticket-detail", Params: map[string]string{"code": "TK-001"}},
		map[string]any{"ticket_code": "TK-001"},
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), n))
	return n
}

func TestNotificationRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	n := createTestNotification(t, repo, 1, "New reply on TK-001")
	assert.NotZero(t, n.ID())

	found, err := repo.GetByIDAndUserID(ctx, n.ID(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "New reply on TK-001", found.Title())
	assert.Equal(t, "ticket-detail", found.Href().Name)
	assert.Equal(t, "TK-001", found.Href().Params["code"])
	assert.False(t, found.IsRead())
}

func TestNotificationRepository_GetByIDAndUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	n := createTestNotification(t, repo, 1, "Scoped")

	t.Run("wrong user cannot read it", func(t *testing.T) {
		found, err := repo.GetByIDAndUserID(ctx, n.ID(), 2)
		assert.Error(t, err)
		assert.Nil(t, found)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("non-existent ID", func(t *testing.T) {
		found, err := repo.GetByIDAndUserID(ctx, 99999, 1)
		assert.Error(t, err)
		assert.Nil(t, found)
	})
}

func TestNotificationRepository_ListByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	createTestNotification(t, repo, 1, "First")
	time.Sleep(5 * time.Millisecond)
	createTestNotification(t, repo, 1, "Second")
	time.Sleep(5 * time.Millisecond)
	createTestNotification(t, repo, 1, "Third")
	createTestNotification(t, repo, 2, "Someone else's")

	t.Run("newest first, scoped to user", func(t *testing.T) {
		notifications, err := repo.ListByUserID(ctx, 1, 0)
		assert.NoError(t, err)
		require.Len(t, notifications, 3)
		assert.Equal(t, "Third", notifications[0].Title())
		assert.Equal(t, "First", notifications[2].Title())
	})

	t.Run("limit caps the result", func(t *testing.T) {
		notifications, err := repo.ListByUserID(ctx, 1, 2)
		assert.NoError(t, err)
		require.Len(t, notifications, 2)
		assert.Equal(t, "Third", notifications[0].Title())
	})
}

func TestNotificationRepository_CountUnreadByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	n1 := createTestNotification(t, repo, 1, "Unread 1")
	createTestNotification(t, repo, 1, "Unread 2")
	createTestNotification(t, repo, 2, "Someone else's")

	count, err := repo.CountUnreadByUserID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	n1.MarkRead()
	require.NoError(t, repo.Update(ctx, n1))

	count, err = repo.CountUnreadByUserID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNotificationRepository_MarkAllReadByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	createTestNotification(t, repo, 1, "Unread 1")
	createTestNotification(t, repo, 1, "Unread 2")
	other := createTestNotification(t, repo, 2, "Someone else's")

	err := repo.MarkAllReadByUserID(ctx, 1)
	assert.NoError(t, err)

	count, err := repo.CountUnreadByUserID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	found, err := repo.GetByIDAndUserID(ctx, other.ID(), 2)
	assert.NoError(t, err)
	assert.False(t, found.IsRead())
}

func TestNotificationRepository_DeleteByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	createTestNotification(t, repo, 1, "Gone 1")
	createTestNotification(t, repo, 1, "Gone 2")
	kept := createTestNotification(t, repo, 2, "Kept")

	err := repo.DeleteByUserID(ctx, 1)
	assert.NoError(t, err)

	notifications, err := repo.ListByUserID(ctx, 1, 0)
	assert.NoError(t, err)
	assert.Len(t, notifications, 0)

	found, err := repo.GetByIDAndUserID(ctx, kept.ID(), 2)
	assert.NoError(t, err)
	assert.Equal(t, "Kept", found.Title())
}
