package user

import (
	"fmt"
	"time"
)

// PasswordResetToken is a single-use credential for the forgot-password flow.
// The token value stored here is a hash of what was mailed to the user.
type PasswordResetToken struct {
	email     string
	tokenHash string
	createdAt time.Time
	expiresAt time.Time
}

func NewPasswordResetToken(email, tokenHash string, ttl time.Duration) (*PasswordResetToken, error) {
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(tokenHash) == 0 {
		return nil, fmt.Errorf("token hash is required")
	}

	now := time.Now()
	return &PasswordResetToken{
		email:     email,
		tokenHash: tokenHash,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}, nil
}

func ReconstructPasswordResetToken(email, tokenHash string, createdAt, expiresAt time.Time) *PasswordResetToken {
	return &PasswordResetToken{
		email:     email,
		tokenHash: tokenHash,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}
}

func (t *PasswordResetToken) Email() string        { return t.email }
func (t *PasswordResetToken) TokenHash() string    { return t.tokenHash }
func (t *PasswordResetToken) CreatedAt() time.Time { return t.createdAt }
func (t *PasswordResetToken) ExpiresAt() time.Time { return t.expiresAt }

func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return now.After(t.expiresAt)
}
