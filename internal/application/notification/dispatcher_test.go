package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type mockUserRepo struct {
	user.UserRepository
	getByIDFn   func(ctx context.Context, userID uint) (*user.User, error)
	getByRoleFn func(ctx context.Context, role authorization.UserRole) ([]*user.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	return m.getByIDFn(ctx, userID)
}

func (m *mockUserRepo) GetByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	return m.getByRoleFn(ctx, role)
}

type mockNotificationRepo struct {
	domain.NotificationRepository
	saved []*domain.Notification
}

func (m *mockNotificationRepo) Save(ctx context.Context, n *domain.Notification) error {
	m.saved = append(m.saved, n)
	return nil
}

type mockEmailSender struct {
	sent chan string
}

func (m *mockEmailSender) SendTicketEventEmail(to string, event domain.TicketEvent) error {
	m.sent <- to
	return nil
}

func boolPtr(b bool) *bool { return &b }

func testUser(t *testing.T, id uint, email string, role authorization.UserRole, prefs user.NotificationPreferences) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(id, "Test User", email, "hash", role, nil, nil, nil, nil, prefs, now, now)
	require.NoError(t, err)
	return u
}

func TestShouldSendEmail(t *testing.T) {
	tests := []struct {
		name  string
		prefs user.NotificationPreferences
		event domain.TicketEvent
		want  bool
	}{
		{
			name:  "unset preferences default to sending",
			prefs: user.NotificationPreferences{},
			event: domain.NewTicketCreatedEvent("TIC-12345", "Alice", "broken printer"),
			want:  true,
		},
		{
			name:  "created flag gates ticket created",
			prefs: user.NotificationPreferences{EmailOnTicketCreated: boolPtr(false)},
			event: domain.NewTicketCreatedEvent("TIC-12345", "Alice", "broken printer"),
			want:  false,
		},
		{
			name:  "reply flag gates user replies",
			prefs: user.NotificationPreferences{EmailOnTicketReply: boolPtr(false)},
			event: domain.NewUserRepliedEvent("TIC-12345", "Alice", "still broken"),
			want:  false,
		},
		{
			name:  "reply flag gates admin replies",
			prefs: user.NotificationPreferences{EmailOnTicketReply: boolPtr(false)},
			event: domain.NewAdminRepliedEvent("TIC-12345", "Bob", "on it"),
			want:  false,
		},
		{
			name:  "status change uses the updated flag",
			prefs: user.NotificationPreferences{EmailOnTicketUpdated: boolPtr(false), EmailOnTicketClosed: boolPtr(true)},
			event: domain.NewStatusChangedEvent("TIC-12345", "Bob", "open", "onprogress"),
			want:  false,
		},
		{
			name:  "resolving uses the closed flag, not updated",
			prefs: user.NotificationPreferences{EmailOnTicketUpdated: boolPtr(true), EmailOnTicketClosed: boolPtr(false)},
			event: domain.NewStatusChangedEvent("TIC-12345", "Bob", "onprogress", "resolved"),
			want:  false,
		},
		{
			name:  "resolving with closed flag enabled sends",
			prefs: user.NotificationPreferences{EmailOnTicketUpdated: boolPtr(false), EmailOnTicketClosed: boolPtr(true)},
			event: domain.NewStatusChangedEvent("TIC-12345", "Bob", "onprogress", "resolved"),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldSendEmail(tt.prefs, tt.event))
		})
	}
}

func TestDispatcherNotifyUserStoresInAppAndSendsEmail(t *testing.T) {
	recipient := testUser(t, 7, "owner@example.com", authorization.RoleUser, user.NotificationPreferences{})

	notifRepo := &mockNotificationRepo{}
	email := &mockEmailSender{sent: make(chan string, 1)}
	d := NewDispatcher(&mockUserRepo{
		getByIDFn: func(ctx context.Context, userID uint) (*user.User, error) { return recipient, nil },
	}, notifRepo, email, logger.NewLogger())

	d.NotifyUser(context.Background(), 7, domain.NewAdminRepliedEvent("TIC-12345", "Bob", "on it"))

	require.Len(t, notifRepo.saved, 1)
	assert.Equal(t, uint(7), notifRepo.saved[0].UserID())
	assert.Equal(t, "app.ticket.detail", notifRepo.saved[0].Href().Name)

	select {
	case to := <-email.sent:
		assert.Equal(t, "owner@example.com", to)
	case <-time.After(time.Second):
		t.Fatal("expected an email to be sent")
	}
}

func TestDispatcherSkipsEmailWhenPreferenceDisabled(t *testing.T) {
	recipient := testUser(t, 7, "owner@example.com", authorization.RoleUser,
		user.NotificationPreferences{EmailOnTicketReply: boolPtr(false)})

	notifRepo := &mockNotificationRepo{}
	email := &mockEmailSender{sent: make(chan string, 1)}
	d := NewDispatcher(&mockUserRepo{
		getByIDFn: func(ctx context.Context, userID uint) (*user.User, error) { return recipient, nil },
	}, notifRepo, email, logger.NewLogger())

	d.NotifyUser(context.Background(), 7, domain.NewAdminRepliedEvent("TIC-12345", "Bob", "on it"))

	require.Len(t, notifRepo.saved, 1, "in-app notification is stored regardless of email preference")

	select {
	case <-email.sent:
		t.Fatal("email must not be sent when the preference is disabled")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDispatcherNotifyAdminsFansOut(t *testing.T) {
	admins := []*user.User{
		testUser(t, 1, "admin1@example.com", authorization.RoleAdmin, user.NotificationPreferences{}),
		testUser(t, 2, "admin2@example.com", authorization.RoleAdmin, user.NotificationPreferences{}),
	}

	notifRepo := &mockNotificationRepo{}
	email := &mockEmailSender{sent: make(chan string, 2)}
	d := NewDispatcher(&mockUserRepo{
		getByRoleFn: func(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
			assert.Equal(t, authorization.RoleAdmin, role)
			return admins, nil
		},
	}, notifRepo, email, logger.NewLogger())

	d.NotifyAdmins(context.Background(), domain.NewTicketCreatedEvent("TIC-12345", "Alice", "broken printer"))

	require.Len(t, notifRepo.saved, 2)
	assert.Equal(t, "admin.ticket.detail", notifRepo.saved[0].Href().Name)
}
