package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/shared/authorization"
)

type mockUserRepo struct {
	user.UserRepository
	getByIDFn       func(ctx context.Context, userID uint) (*user.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*user.User, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
	saveFn          func(ctx context.Context, u *user.User) error
	updateFn        func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	return m.getByIDFn(ctx, userID)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.existsByEmailFn(ctx, email)
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error {
	return m.saveFn(ctx, u)
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return nil
}

type mockSessionRepo struct {
	user.SessionRepository
	saved   []*user.LoginSession
	getByID func(ctx context.Context, sessionID uint) (*user.LoginSession, error)
	updated []*user.LoginSession
}

func (m *mockSessionRepo) Save(ctx context.Context, s *user.LoginSession) error {
	s.SetID(uint(len(m.saved) + 1))
	m.saved = append(m.saved, s)
	return nil
}

func (m *mockSessionRepo) GetByID(ctx context.Context, sessionID uint) (*user.LoginSession, error) {
	return m.getByID(ctx, sessionID)
}

func (m *mockSessionRepo) Update(ctx context.Context, s *user.LoginSession) error {
	m.updated = append(m.updated, s)
	return nil
}

type mockTokenRepo struct {
	user.PasswordResetTokenRepository
	saved      []*user.PasswordResetToken
	getByEmail func(ctx context.Context, email string) (*user.PasswordResetToken, error)
	deleted    []string
}

func (m *mockTokenRepo) Save(ctx context.Context, t *user.PasswordResetToken) error {
	m.saved = append(m.saved, t)
	return nil
}

func (m *mockTokenRepo) GetByEmail(ctx context.Context, email string) (*user.PasswordResetToken, error) {
	return m.getByEmail(ctx, email)
}

func (m *mockTokenRepo) DeleteByEmail(ctx context.Context, email string) error {
	m.deleted = append(m.deleted, email)
	return nil
}

// mockHasher treats the hash as "hashed:" + password.
type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (mockHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockTokenIssuer struct{}

func (mockTokenIssuer) Generate(userID, sessionID uint, role authorization.UserRole) (*auth.TokenResult, error) {
	return &auth.TokenResult{
		AccessToken: fmt.Sprintf("token-%d-%d", userID, sessionID),
		ExpiresIn:   3600,
	}, nil
}

type mockRateLimiter struct {
	allowed bool
	resets  []string
}

func (m *mockRateLimiter) Allow(key string, config ratelimit.RateLimitConfig) (bool, error) {
	return m.allowed, nil
}

func (m *mockRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	return 0, nil
}

func (m *mockRateLimiter) Reset(key string) error {
	m.resets = append(m.resets, key)
	return nil
}

type recordedActivity struct {
	action string
	userID *uint
}

type mockRecorder struct {
	records []recordedActivity
}

func (m *mockRecorder) Record(ctx context.Context, userID *uint, action, description string, meta map[string]any, ipAddress, userAgent string) {
	m.records = append(m.records, recordedActivity{action: action, userID: userID})
}
