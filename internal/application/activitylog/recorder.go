// Package activitylog writes the audit trail. Recording is best-effort: a
// failed write is logged and swallowed so auditing never fails an operation.
package activitylog

import (
	"context"

	domain "helpdesk/internal/domain/activitylog"
	"helpdesk/internal/shared/logger"
)

type Recorder struct {
	entries domain.EntryRepository
	logger  logger.Interface
}

func NewRecorder(entries domain.EntryRepository, logger logger.Interface) *Recorder {
	return &Recorder{entries: entries, logger: logger}
}

// Record appends one audit entry. userID may be nil for unauthenticated
// actions such as failed logins.
func (r *Recorder) Record(ctx context.Context, userID *uint, action, description string, meta map[string]any, ipAddress, userAgent string) {
	entry, err := domain.NewEntry(userID, action, description, meta, ipAddress, userAgent)
	if err != nil {
		r.logger.Warnw("failed to build activity log entry", "action", action, "error", err)
		return
	}

	if err := r.entries.Save(ctx, entry); err != nil {
		r.logger.Warnw("failed to write activity log entry", "action", action, "error", err)
	}
}
