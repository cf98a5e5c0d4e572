package notification

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/authorization"
)

// Notification is one in-app inbox entry for a user. Href and Meta are stored
// as JSON documents so the frontend payload round-trips unchanged.
type Notification struct {
	id        uint
	userID    uint
	title     string
	message   string
	href      HrefTarget
	meta      map[string]any
	readAt    *time.Time
	createdAt time.Time
}

func NewNotification(userID uint, title, message string, href HrefTarget, meta map[string]any) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	return &Notification{
		userID:    userID,
		title:     title,
		message:   message,
		href:      href,
		meta:      meta,
		createdAt: time.Now(),
	}, nil
}

// FromTicketEvent builds the inbox entry a recipient receives for a ticket
// event, with the deep link resolved for the recipient's role.
func FromTicketEvent(recipientID uint, recipientRole authorization.UserRole, event TicketEvent) (*Notification, error) {
	return NewNotification(
		recipientID,
		event.Title(),
		event.Message(),
		event.HrefFor(recipientRole),
		event.Meta(),
	)
}

func ReconstructNotification(
	id uint,
	userID uint,
	title string,
	message string,
	href HrefTarget,
	meta map[string]any,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Notification{
		id:        id,
		userID:    userID,
		title:     title,
		message:   message,
		href:      href,
		meta:      meta,
		readAt:    readAt,
		createdAt: createdAt,
	}, nil
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) UserID() uint         { return n.userID }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Href() HrefTarget     { return n.href }
func (n *Notification) Meta() map[string]any { return n.meta }
func (n *Notification) ReadAt() *time.Time   { return n.readAt }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) SetID(id uint) {
	n.id = id
}

func (n *Notification) IsRead() bool {
	return n.readAt != nil
}

func (n *Notification) MarkRead() {
	if n.readAt != nil {
		return
	}
	now := time.Now()
	n.readAt = &now
}
