package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func existingUser(t *testing.T) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(42, "Alice", "alice@example.com", "hashed:secret-pw",
		authorization.RoleUser, nil, nil, nil, nil, user.NotificationPreferences{}, now, now)
	require.NoError(t, err)
	return u
}

func newLoginUseCase(userRepo *mockUserRepo, sessionRepo *mockSessionRepo, limiter *mockRateLimiter, recorder *mockRecorder) *LoginUseCase {
	return NewLoginUseCase(
		userRepo,
		sessionRepo,
		mockHasher{},
		mockTokenIssuer{},
		limiter,
		ratelimit.RateLimitConfig{RequestsPerMinute: 10, RequestsPerHour: 100},
		recorder,
		logger.NewLogger(),
	)
}

func TestLoginSuccess(t *testing.T) {
	u := existingUser(t)
	userRepo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return u, nil },
	}
	sessionRepo := &mockSessionRepo{}
	limiter := &mockRateLimiter{allowed: true}
	recorder := &mockRecorder{}
	uc := newLoginUseCase(userRepo, sessionRepo, limiter, recorder)

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:     "alice@example.com",
		Password:  "secret-pw",
		IPAddress: "203.0.113.10",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0)",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-42-1", result.AccessToken)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, uint(1), result.SessionID)

	require.Len(t, sessionRepo.saved, 1)
	assert.Equal(t, "Windows", sessionRepo.saved[0].DeviceName())
	assert.Equal(t, "203.0.113.10", sessionRepo.saved[0].IPAddress())

	require.NotNil(t, u.LastLoginIP())
	assert.Equal(t, "203.0.113.10", *u.LastLoginIP())

	require.Len(t, recorder.records, 1)
	assert.Equal(t, activitylog.ActionLogin, recorder.records[0].action)

	assert.Equal(t, []string{"login:203.0.113.10"}, limiter.resets)
}

func TestLoginWrongPassword(t *testing.T) {
	u := existingUser(t)
	userRepo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return u, nil },
	}
	uc := newLoginUseCase(userRepo, &mockSessionRepo{}, &mockRateLimiter{allowed: true}, &mockRecorder{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:     "alice@example.com",
		Password:  "wrong",
		IPAddress: "203.0.113.10",
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUnknownEmailIsIndistinguishable(t *testing.T) {
	userRepo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}
	uc := newLoginUseCase(userRepo, &mockSessionRepo{}, &mockRateLimiter{allowed: true}, &mockRecorder{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:     "nobody@example.com",
		Password:  "whatever",
		IPAddress: "203.0.113.10",
	})

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	assert.Equal(t, "Invalid email or password", appErr.Message)
}

func TestLoginRateLimited(t *testing.T) {
	uc := newLoginUseCase(&mockUserRepo{}, &mockSessionRepo{}, &mockRateLimiter{allowed: false}, &mockRecorder{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:     "alice@example.com",
		Password:  "secret-pw",
		IPAddress: "203.0.113.10",
	})

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeRateLimited, appErr.Type)
}
