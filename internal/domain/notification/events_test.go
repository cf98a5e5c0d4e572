package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/authorization"
)

func TestTicketEvent_HrefFor(t *testing.T) {
	e := NewTicketCreatedEvent("TIC-12345", "Alice", "desc")

	adminHref := e.HrefFor(authorization.RoleAdmin)
	assert.Equal(t, "admin.ticket.detail", adminHref.Name)
	assert.Equal(t, "TIC-12345", adminHref.Params["code"])

	userHref := e.HrefFor(authorization.RoleUser)
	assert.Equal(t, "app.ticket.detail", userHref.Name)
}

func TestTicketEvent_Meta(t *testing.T) {
	e := NewStatusChangedEvent("TIC-00001", "Bob", "open", "resolved")
	meta := e.Meta()

	assert.Equal(t, "TIC-00001", meta["ticketCode"])
	assert.Equal(t, "status_changed", meta["event"])
	assert.Equal(t, "open", meta["oldStatus"])
	assert.Equal(t, "resolved", meta["newStatus"])
	_, hasContent := meta["content"]
	assert.False(t, hasContent)

	reply := NewUserRepliedEvent("TIC-00001", "Alice", "still broken")
	assert.Equal(t, "still broken", reply.Meta()["content"])
}

func TestTicketEvent_ClosesTicket(t *testing.T) {
	assert.True(t, NewStatusChangedEvent("TIC-1", "a", "open", "resolved").ClosesTicket())
	assert.False(t, NewStatusChangedEvent("TIC-1", "a", "open", "rejected").ClosesTicket())
	assert.False(t, NewAdminRepliedEvent("TIC-1", "a", "c").ClosesTicket())
}

func TestFromTicketEvent(t *testing.T) {
	e := NewAdminRepliedEvent("TIC-77777", "Support", "we are on it")

	n, err := FromTicketEvent(42, authorization.RoleUser, e)
	require.NoError(t, err)
	assert.Equal(t, uint(42), n.UserID())
	assert.Equal(t, "Reply from the IT team", n.Title())
	assert.Equal(t, "app.ticket.detail", n.Href().Name)
	assert.False(t, n.IsRead())

	n.MarkRead()
	assert.True(t, n.IsRead())
}
