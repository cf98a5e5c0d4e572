package usecases

import "context"

// PasswordHasher abstracts password hashing for account creation and import.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// AttachmentStore deletes attachment files left behind by removed accounts.
type AttachmentStore interface {
	Delete(name string) error
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
