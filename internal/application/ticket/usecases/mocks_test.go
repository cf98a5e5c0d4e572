package usecases

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
)

type mockTicketRepo struct {
	ticket.TicketRepository
	existsByCodeFn func(ctx context.Context, code string) (bool, error)
	getByCodeFn    func(ctx context.Context, code string) (*ticket.Ticket, error)
	listFn         func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	saved          []*ticket.Ticket
	updated        []*ticket.Ticket
	deleted        []uint
}

func (m *mockTicketRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if m.existsByCodeFn != nil {
		return m.existsByCodeFn(ctx, code)
	}
	return false, nil
}

func (m *mockTicketRepo) GetByCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	return m.getByCodeFn(ctx, code)
}

func (m *mockTicketRepo) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return m.listFn(ctx, filter)
}

func (m *mockTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	t.SetID(uint(len(m.saved) + 1))
	m.saved = append(m.saved, t)
	return nil
}

func (m *mockTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	m.updated = append(m.updated, t)
	return nil
}

func (m *mockTicketRepo) Delete(ctx context.Context, ticketID uint) error {
	m.deleted = append(m.deleted, ticketID)
	return nil
}

type mockReplyRepo struct {
	ticket.ReplyRepository
	getByTicketIDFn func(ctx context.Context, ticketID uint) ([]*ticket.Reply, error)
	saved           []*ticket.Reply
	deletedTickets  []uint
}

func (m *mockReplyRepo) Save(ctx context.Context, r *ticket.Reply) error {
	r.SetID(uint(len(m.saved) + 1))
	m.saved = append(m.saved, r)
	return nil
}

func (m *mockReplyRepo) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) {
	if m.getByTicketIDFn != nil {
		return m.getByTicketIDFn(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockReplyRepo) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	m.deletedTickets = append(m.deletedTickets, ticketID)
	return nil
}

type mockUserRepo struct {
	user.UserRepository
	getByIDFn func(ctx context.Context, userID uint) (*user.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	return m.getByIDFn(ctx, userID)
}

type mockCodeGenerator struct {
	codes []string
	calls int
}

func (m *mockCodeGenerator) Generate(ctx context.Context) (string, error) {
	code := m.codes[m.calls%len(m.codes)]
	m.calls++
	return code, nil
}

type mockAttachmentStore struct {
	saved   []string
	deleted []string
}

func (m *mockAttachmentStore) Save(file *multipart.FileHeader) (string, error) {
	name := "stored-" + file.Filename
	m.saved = append(m.saved, name)
	return name, nil
}

func (m *mockAttachmentStore) Open(name string) (string, error) {
	return "/attachments/" + name, nil
}

func (m *mockAttachmentStore) Delete(name string) error {
	m.deleted = append(m.deleted, name)
	return nil
}

type notified struct {
	userID uint // 0 means broadcast to admins
	event  notification.TicketEvent
}

type mockNotifier struct {
	events []notified
}

func (m *mockNotifier) NotifyAdmins(ctx context.Context, event notification.TicketEvent) {
	m.events = append(m.events, notified{event: event})
}

func (m *mockNotifier) NotifyUser(ctx context.Context, userID uint, event notification.TicketEvent) {
	m.events = append(m.events, notified{userID: userID, event: event})
}

type mockRecorder struct {
	actions []string
}

func (m *mockRecorder) Record(ctx context.Context, userID *uint, action, description string, meta map[string]any, ipAddress, userAgent string) {
	m.actions = append(m.actions, action)
}

// mockTxManager runs the function without a real transaction.
type mockTxManager struct{}

func (mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testTicket(t *testing.T, id uint, code string, ownerID uint, status vo.TicketStatus) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(id, code, ownerID, "Printer down", "The office printer is down",
		vo.PriorityMedium, status, nil, nil, nil, now, now)
	require.NoError(t, err)
	return tk
}

func testActorUser(t *testing.T, id uint, name string, role authorization.UserRole) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(id, name, "actor@example.com", "hash", role,
		nil, nil, nil, nil, user.NotificationPreferences{}, now, now)
	require.NoError(t, err)
	return u
}
