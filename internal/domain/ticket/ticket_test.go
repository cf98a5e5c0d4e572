package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/value_objects"
)

func newValidTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(1, "Printer not working", "The office printer jams on every job", vo.PriorityMedium)
	require.NoError(t, err)
	return tk
}

func reconstructedTicket(t *testing.T, status vo.TicketStatus, completedAt *time.Time) *Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ReconstructTicket(
		1, "TIC-12345",
		10,
		"Persisted ticket", "desc",
		vo.PriorityHigh, status,
		nil,
		completedAt,
		nil,
		now, now,
	)
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name     string
		ownerID  uint
		title    string
		desc     string
		priority vo.Priority
		wantErr  string
	}{
		{
			name:    "valid low priority",
			ownerID: 1, title: "VPN keeps dropping", desc: "Disconnects every few minutes", priority: vo.PriorityLow,
		},
		{
			name:    "valid high priority",
			ownerID: 2, title: "Server down", desc: "Production API unreachable", priority: vo.PriorityHigh,
		},
		{
			name:    "missing owner",
			ownerID: 0, title: "x", desc: "y", priority: vo.PriorityLow,
			wantErr: "owner ID is required",
		},
		{
			name:    "missing title",
			ownerID: 1, title: "", desc: "y", priority: vo.PriorityLow,
			wantErr: "title is required",
		},
		{
			name:    "title too long",
			ownerID: 1, title: strings.Repeat("a", 256), desc: "y", priority: vo.PriorityLow,
			wantErr: "maximum length",
		},
		{
			name:    "missing description",
			ownerID: 1, title: "x", desc: "", priority: vo.PriorityLow,
			wantErr: "description is required",
		},
		{
			name:    "invalid priority",
			ownerID: 1, title: "x", desc: "y", priority: vo.Priority("urgent"),
			wantErr: "invalid priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.ownerID, tt.title, tt.desc, tt.priority)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusOpen, tk.Status())
			assert.Equal(t, tt.ownerID, tk.OwnerID())
			assert.Nil(t, tk.CompletedAt())
			assert.Nil(t, tk.ArchivedAt())
			assert.Empty(t, tk.Code())
		})
	}
}

func TestTicket_AssignCode(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.AssignCode("TIC-54321"))
	assert.Equal(t, "TIC-54321", tk.Code())

	err := tk.AssignCode("TIC-99999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already assigned")
	assert.Equal(t, "TIC-54321", tk.Code())
}

func TestTicket_ChangeStatus_SetsCompletedAtOnResolve(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.ChangeStatus(vo.StatusOnProgress))
	assert.Nil(t, tk.CompletedAt())

	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	require.NotNil(t, tk.CompletedAt())
	assert.WithinDuration(t, time.Now(), *tk.CompletedAt(), time.Second)
}

func TestTicket_ChangeStatus_ClearsCompletedAtWhenLeavingResolved(t *testing.T) {
	completed := time.Now().Add(-time.Hour)
	tk := reconstructedTicket(t, vo.StatusResolved, &completed)

	require.NoError(t, tk.ChangeStatus(vo.StatusOpen))
	assert.Nil(t, tk.CompletedAt())
	assert.Equal(t, vo.StatusOpen, tk.Status())
}

func TestTicket_ChangeStatus_Invalid(t *testing.T) {
	tk := newValidTicket(t)

	err := tk.ChangeStatus(vo.TicketStatus("closed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ticket status")
	assert.Equal(t, vo.StatusOpen, tk.Status())
}

func TestTicket_ChangeStatus_NoopOnSameStatus(t *testing.T) {
	completed := time.Now().Add(-time.Hour)
	tk := reconstructedTicket(t, vo.StatusResolved, &completed)

	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	require.NotNil(t, tk.CompletedAt())
	assert.Equal(t, completed.Unix(), tk.CompletedAt().Unix())
}

func TestTicket_ArchiveUnarchive(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusOpen, nil)
	assert.False(t, tk.IsArchived())

	tk.Archive()
	require.True(t, tk.IsArchived())
	first := *tk.ArchivedAt()

	// archiving again keeps the original timestamp
	tk.Archive()
	assert.Equal(t, first, *tk.ArchivedAt())

	// archival never touches the status
	assert.Equal(t, vo.StatusOpen, tk.Status())

	tk.Unarchive()
	assert.False(t, tk.IsArchived())
}

func TestTicket_UpdateDetails(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.UpdateDetails("New title", "New description", vo.PriorityHigh))
	assert.Equal(t, "New title", tk.Title())
	assert.Equal(t, vo.PriorityHigh, tk.Priority())

	err := tk.UpdateDetails("", "desc", vo.PriorityLow)
	require.Error(t, err)
	assert.Equal(t, "New title", tk.Title())
}

func TestTicket_IsOwnedBy(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusOpen, nil)
	assert.True(t, tk.IsOwnedBy(10))
	assert.False(t, tk.IsOwnedBy(11))
}
