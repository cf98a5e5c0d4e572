package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
)

type mockUserRepo struct {
	user.UserRepository
	usersByID    map[uint]*user.User
	usersByEmail map[string]bool
	saved        []*user.User
	deleted      []uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[uint]*user.User),
		usersByEmail: make(map[string]bool),
	}
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	return m.usersByID[userID], nil
}

func (m *mockUserRepo) GetByIDs(ctx context.Context, userIDs []uint) ([]*user.User, error) {
	var users []*user.User
	for _, id := range userIDs {
		if u, ok := m.usersByID[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.usersByEmail[email], nil
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error {
	u.SetID(uint(len(m.saved) + 100))
	m.saved = append(m.saved, u)
	m.usersByEmail[u.Email()] = true
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, userID uint) error {
	m.deleted = append(m.deleted, userID)
	return nil
}

type mockSessionRepo struct {
	user.SessionRepository
	deletedUsers []uint
}

func (m *mockSessionRepo) DeleteByUserID(ctx context.Context, userID uint) error {
	m.deletedUsers = append(m.deletedUsers, userID)
	return nil
}

type mockTokenRepo struct {
	user.PasswordResetTokenRepository
	deletedEmails []string
}

func (m *mockTokenRepo) DeleteByEmail(ctx context.Context, email string) error {
	m.deletedEmails = append(m.deletedEmails, email)
	return nil
}

type mockTicketRepo struct {
	ticket.TicketRepository
	byOwner       map[uint][]*ticket.Ticket
	deletedOwners []uint
}

func (m *mockTicketRepo) GetByOwnerID(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error) {
	return m.byOwner[ownerID], nil
}

func (m *mockTicketRepo) DeleteByOwnerID(ctx context.Context, ownerID uint) error {
	m.deletedOwners = append(m.deletedOwners, ownerID)
	return nil
}

type mockReplyRepo struct {
	ticket.ReplyRepository
	byTicketIDs      map[uint][]*ticket.Reply
	deletedTicketIDs [][]uint
	deletedAuthors   []uint
}

func (m *mockReplyRepo) GetByTicketIDs(ctx context.Context, ticketIDs []uint) ([]*ticket.Reply, error) {
	var replies []*ticket.Reply
	for _, id := range ticketIDs {
		replies = append(replies, m.byTicketIDs[id]...)
	}
	return replies, nil
}

func (m *mockReplyRepo) DeleteByTicketIDs(ctx context.Context, ticketIDs []uint) error {
	m.deletedTicketIDs = append(m.deletedTicketIDs, ticketIDs)
	return nil
}

func (m *mockReplyRepo) DeleteByAuthorID(ctx context.Context, authorID uint) error {
	m.deletedAuthors = append(m.deletedAuthors, authorID)
	return nil
}

type mockNotificationRepo struct {
	notification.NotificationRepository
	deletedUsers []uint
}

func (m *mockNotificationRepo) DeleteByUserID(ctx context.Context, userID uint) error {
	m.deletedUsers = append(m.deletedUsers, userID)
	return nil
}

type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (mockHasher) Verify(password, hash string) error {
	return nil
}

type mockStore struct {
	deleted []string
}

func (m *mockStore) Delete(name string) error {
	m.deleted = append(m.deleted, name)
	return nil
}

type mockRecorder struct {
	actions []string
}

func (m *mockRecorder) Record(ctx context.Context, userID *uint, action, description string, meta map[string]any, ipAddress, userAgent string) {
	m.actions = append(m.actions, action)
}

type mockTxManager struct{}

func (mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testUser(t *testing.T, id uint, email string, role authorization.UserRole) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(id, "Test User", email, "hash", role,
		nil, nil, nil, nil, user.NotificationPreferences{}, now, now)
	require.NoError(t, err)
	return u
}
