package usecases

import (
	"context"
	"mime/multipart"

	"helpdesk/internal/domain/notification"
)

// AttachmentStore persists uploaded files and resolves them for download.
type AttachmentStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Open(name string) (string, error)
	Delete(name string) error
}

// TicketNotifier fans a ticket event out to its recipients. Delivery is
// best-effort; implementations never fail the calling operation.
type TicketNotifier interface {
	NotifyAdmins(ctx context.Context, event notification.TicketEvent)
	NotifyUser(ctx context.Context, userID uint, event notification.TicketEvent)
}

// ActivityRecorder appends audit entries, best-effort.
type ActivityRecorder interface {
	Record(ctx context.Context, userID *uint, action, description string, meta map[string]any, ipAddress, userAgent string)
}

// TransactionManager runs a function inside a database transaction propagated
// through the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
