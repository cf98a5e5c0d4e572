// Package activitylog holds the append-only audit trail of user actions.
package activitylog

import (
	"fmt"
	"time"
)

// Common action names recorded across the application.
const (
	ActionLogin          = "login"
	ActionLogout         = "logout"
	ActionTicketCreated  = "ticket_created"
	ActionTicketUpdated  = "ticket_updated"
	ActionTicketDeleted  = "ticket_deleted"
	ActionTicketArchived = "ticket_archived"
	ActionTicketReplied  = "ticket_replied"
	ActionUserCreated    = "user_created"
	ActionUserUpdated    = "user_updated"
	ActionUserDeleted    = "user_deleted"
	ActionUsersImported  = "users_imported"
	ActionSessionRevoked = "session_revoked"
)

// Entry is one audit record. Entries are written once and never updated;
// UserID may be nil for actions without an authenticated actor.
type Entry struct {
	id          uint
	userID      *uint
	action      string
	description string
	meta        map[string]any
	ipAddress   string
	userAgent   string
	createdAt   time.Time
}

func NewEntry(userID *uint, action, description string, meta map[string]any, ipAddress, userAgent string) (*Entry, error) {
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}

	return &Entry{
		userID:      userID,
		action:      action,
		description: description,
		meta:        meta,
		ipAddress:   ipAddress,
		userAgent:   userAgent,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructEntry(
	id uint,
	userID *uint,
	action string,
	description string,
	meta map[string]any,
	ipAddress string,
	userAgent string,
	createdAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}

	return &Entry{
		id:          id,
		userID:      userID,
		action:      action,
		description: description,
		meta:        meta,
		ipAddress:   ipAddress,
		userAgent:   userAgent,
		createdAt:   createdAt,
	}, nil
}

func (e *Entry) ID() uint             { return e.id }
func (e *Entry) UserID() *uint        { return e.userID }
func (e *Entry) Action() string       { return e.action }
func (e *Entry) Description() string  { return e.description }
func (e *Entry) Meta() map[string]any { return e.meta }
func (e *Entry) IPAddress() string    { return e.ipAddress }
func (e *Entry) UserAgent() string    { return e.userAgent }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

func (e *Entry) SetID(id uint) {
	e.id = id
}
