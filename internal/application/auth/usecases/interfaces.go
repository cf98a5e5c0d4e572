package usecases

import (
	"context"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/authorization"
)

// PasswordHasher abstracts password hashing so use cases stay testable.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer issues access tokens bound to a login session.
type TokenIssuer interface {
	Generate(userID, sessionID uint, role authorization.UserRole) (*auth.TokenResult, error)
}

// PasswordResetMailer delivers the reset token to the account email.
type PasswordResetMailer interface {
	SendPasswordResetEmail(to, token string) error
}

// ActivityRecorder appends audit entries. Implementations are best-effort and
// never return errors to the caller.
type ActivityRecorder interface {
	Record(ctx context.Context, userID *uint, action, description string, meta map[string]any, ipAddress, userAgent string)
}
