// Package notification fans ticket events out to their recipients over the
// in-app inbox and, preference permitting, email.
package notification

import (
	"context"

	domain "helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

// EmailSender is the outbound mail channel the dispatcher uses. Defined here
// so the application layer does not depend on the SMTP implementation.
type EmailSender interface {
	SendTicketEventEmail(to string, event domain.TicketEvent) error
}

// Dispatcher resolves the recipients of a ticket event and delivers it.
// In-app notifications are always stored; email is sent asynchronously and
// only when the recipient's preferences allow it. Delivery is best-effort:
// a failed recipient never fails the operation that raised the event.
type Dispatcher struct {
	userRepo         user.UserRepository
	notificationRepo domain.NotificationRepository
	email            EmailSender
	logger           logger.Interface
}

func NewDispatcher(
	userRepo user.UserRepository,
	notificationRepo domain.NotificationRepository,
	email EmailSender,
	logger logger.Interface,
) *Dispatcher {
	return &Dispatcher{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		email:            email,
		logger:           logger,
	}
}

// NotifyAdmins delivers the event to every admin account. Used for events
// raised by regular users (new tickets, user replies).
func (d *Dispatcher) NotifyAdmins(ctx context.Context, event domain.TicketEvent) {
	admins, err := d.userRepo.GetByRole(ctx, authorization.RoleAdmin)
	if err != nil {
		d.logger.Errorw("failed to resolve admin recipients",
			"event", string(event.Kind),
			"ticket_code", event.TicketCode,
			"error", err)
		return
	}

	for _, admin := range admins {
		d.deliver(ctx, admin, event)
	}
}

// NotifyUser delivers the event to a single user, typically the ticket owner
// reacting to an admin reply or status change.
func (d *Dispatcher) NotifyUser(ctx context.Context, userID uint, event domain.TicketEvent) {
	recipient, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		d.logger.Errorw("failed to resolve notification recipient",
			"event", string(event.Kind),
			"ticket_code", event.TicketCode,
			"user_id", userID,
			"error", err)
		return
	}

	d.deliver(ctx, recipient, event)
}

func (d *Dispatcher) deliver(ctx context.Context, recipient *user.User, event domain.TicketEvent) {
	n, err := domain.FromTicketEvent(recipient.ID(), recipient.Role(), event)
	if err != nil {
		d.logger.Errorw("failed to build notification",
			"event", string(event.Kind),
			"user_id", recipient.ID(),
			"error", err)
		return
	}

	if err := d.notificationRepo.Save(ctx, n); err != nil {
		d.logger.Errorw("failed to store notification",
			"event", string(event.Kind),
			"user_id", recipient.ID(),
			"error", err)
	}

	if !ShouldSendEmail(recipient.Preferences(), event) {
		return
	}

	to := recipient.Email()
	goroutine.SafeGo(d.logger, "notification.email", func() {
		if err := d.email.SendTicketEventEmail(to, event); err != nil {
			d.logger.Errorw("failed to send notification email",
				"event", string(event.Kind),
				"ticket_code", event.TicketCode,
				"error", err)
		}
	})
}

// ShouldSendEmail maps an event to the recipient's preference flag. A status
// change to resolved counts as the ticket being closed and is gated by the
// closed flag instead of the generic updated flag.
func ShouldSendEmail(prefs user.NotificationPreferences, event domain.TicketEvent) bool {
	switch event.Kind {
	case domain.EventTicketCreated:
		return prefs.AllowsTicketCreated()
	case domain.EventUserReplied, domain.EventAdminReplied:
		return prefs.AllowsTicketReply()
	case domain.EventStatusChanged:
		if event.ClosesTicket() {
			return prefs.AllowsTicketClosed()
		}
		return prefs.AllowsTicketUpdated()
	default:
		return true
	}
}
