package usecases

import "context"

// ActivityRecorder appends audit entries, best-effort.
type ActivityRecorder interface {
	Record(ctx context.Context, userID *uint, action, description string, meta map[string]any, ipAddress, userAgent string)
}
