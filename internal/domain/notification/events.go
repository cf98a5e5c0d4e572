package notification

import (
	"fmt"

	"helpdesk/internal/shared/authorization"
)

type EventKind string

const (
	EventTicketCreated EventKind = "ticket_created"
	EventUserReplied   EventKind = "user_replied"
	EventAdminReplied  EventKind = "admin_replied"
	EventStatusChanged EventKind = "status_changed"
)

// HrefTarget is a client-side route reference stored with the notification so
// the frontend can deep-link to the ticket.
type HrefTarget struct {
	Name   string            `json:"name"`
	Params map[string]string `json:"params"`
}

// TicketEvent describes one ticket lifecycle occurrence to fan out. The
// dispatcher resolves recipients and channels from it.
type TicketEvent struct {
	Kind       EventKind
	TicketCode string
	ActorName  string
	Content    string
	OldStatus  string
	NewStatus  string
}

func NewTicketCreatedEvent(ticketCode, actorName, description string) TicketEvent {
	return TicketEvent{
		Kind:       EventTicketCreated,
		TicketCode: ticketCode,
		ActorName:  actorName,
		Content:    description,
	}
}

func NewUserRepliedEvent(ticketCode, actorName, content string) TicketEvent {
	return TicketEvent{
		Kind:       EventUserReplied,
		TicketCode: ticketCode,
		ActorName:  actorName,
		Content:    content,
	}
}

func NewAdminRepliedEvent(ticketCode, actorName, content string) TicketEvent {
	return TicketEvent{
		Kind:       EventAdminReplied,
		TicketCode: ticketCode,
		ActorName:  actorName,
		Content:    content,
	}
}

func NewStatusChangedEvent(ticketCode, actorName, oldStatus, newStatus string) TicketEvent {
	return TicketEvent{
		Kind:       EventStatusChanged,
		TicketCode: ticketCode,
		ActorName:  actorName,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
	}
}

func (e TicketEvent) Title() string {
	switch e.Kind {
	case EventTicketCreated:
		return "New ticket created"
	case EventUserReplied:
		return "Ticket reply from user"
	case EventAdminReplied:
		return "Reply from the IT team"
	case EventStatusChanged:
		return "Ticket status updated"
	default:
		return "Notification"
	}
}

func (e TicketEvent) Message() string {
	switch e.Kind {
	case EventTicketCreated:
		return fmt.Sprintf("Ticket %s was created by %s.", e.TicketCode, e.ActorName)
	case EventUserReplied:
		return fmt.Sprintf("A user replied to ticket %s.", e.TicketCode)
	case EventAdminReplied:
		return fmt.Sprintf("An admin replied to ticket %s.", e.TicketCode)
	case EventStatusChanged:
		return fmt.Sprintf("Ticket %s status changed to %s.", e.TicketCode, e.NewStatus)
	default:
		return ""
	}
}

// HrefFor returns the client route for a recipient: admins land on the admin
// ticket detail view, users on their own.
func (e TicketEvent) HrefFor(role authorization.UserRole) HrefTarget {
	name := "app.ticket.detail"
	if role.IsAdmin() {
		name = "admin.ticket.detail"
	}
	return HrefTarget{
		Name:   name,
		Params: map[string]string{"code": e.TicketCode},
	}
}

func (e TicketEvent) Meta() map[string]any {
	meta := map[string]any{
		"ticketCode": e.TicketCode,
		"event":      string(e.Kind),
		"actorName":  e.ActorName,
	}
	if e.Content != "" {
		meta["content"] = e.Content
	}
	if e.Kind == EventStatusChanged {
		meta["oldStatus"] = e.OldStatus
		meta["newStatus"] = e.NewStatus
	}
	return meta
}

// ClosesTicket reports whether the event represents a ticket being resolved,
// which maps to the "ticket closed" email preference.
func (e TicketEvent) ClosesTicket() bool {
	return e.Kind == EventStatusChanged && e.NewStatus == "resolved"
}
