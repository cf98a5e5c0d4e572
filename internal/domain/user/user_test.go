package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/authorization"
)

func boolPtr(b bool) *bool { return &b }

func TestNewUser(t *testing.T) {
	tests := []struct {
		name    string
		uname   string
		email   string
		hash    string
		role    authorization.UserRole
		wantErr string
	}{
		{name: "valid user", uname: "Alice", email: "alice@example.com", hash: "h", role: authorization.RoleUser},
		{name: "valid admin", uname: "Bob", email: "bob@example.com", hash: "h", role: authorization.RoleAdmin},
		{name: "missing name", uname: "", email: "a@example.com", hash: "h", role: authorization.RoleUser, wantErr: "name is required"},
		{name: "bad email", uname: "Alice", email: "not-an-email", hash: "h", role: authorization.RoleUser, wantErr: "invalid email"},
		{name: "missing hash", uname: "Alice", email: "a@example.com", hash: "", role: authorization.RoleUser, wantErr: "password hash is required"},
		{name: "bad role", uname: "Alice", email: "a@example.com", hash: "h", role: authorization.UserRole("manager"), wantErr: "invalid role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.uname, tt.email, tt.hash, tt.role)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.role, u.Role())
			assert.Nil(t, u.LastLoginAt())
		})
	}
}

func TestNotificationPreferences_Defaults(t *testing.T) {
	// unset flags default to sending email
	var p NotificationPreferences
	assert.True(t, p.AllowsTicketCreated())
	assert.True(t, p.AllowsTicketReply())
	assert.True(t, p.AllowsTicketClosed())
	assert.True(t, p.AllowsTicketUpdated())

	p.EmailOnTicketReply = boolPtr(false)
	p.EmailOnTicketClosed = boolPtr(true)
	assert.False(t, p.AllowsTicketReply())
	assert.True(t, p.AllowsTicketClosed())
	assert.True(t, p.AllowsTicketCreated())
}
