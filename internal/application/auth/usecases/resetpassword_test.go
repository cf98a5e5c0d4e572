package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestResetPasswordSuccess(t *testing.T) {
	u := existingUser(t)
	token := "plain-reset-token"
	stored, err := user.NewPasswordResetToken(u.Email(), auth.HashResetToken(token), 30*time.Minute)
	require.NoError(t, err)

	tokenRepo := &mockTokenRepo{
		getByEmail: func(ctx context.Context, email string) (*user.PasswordResetToken, error) { return stored, nil },
	}
	userRepo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return u, nil },
	}
	uc := NewResetPasswordUseCase(userRepo, tokenRepo, mockHasher{}, logger.NewLogger())

	err = uc.Execute(context.Background(), ResetPasswordCommand{
		Email:       u.Email(),
		Token:       token,
		NewPassword: "brand-new-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "hashed:brand-new-password", u.PasswordHash())
	assert.Equal(t, []string{u.Email()}, tokenRepo.deleted, "used token must be consumed")
}

func TestResetPasswordWrongToken(t *testing.T) {
	u := existingUser(t)
	stored, err := user.NewPasswordResetToken(u.Email(), auth.HashResetToken("the-real-token"), 30*time.Minute)
	require.NoError(t, err)

	tokenRepo := &mockTokenRepo{
		getByEmail: func(ctx context.Context, email string) (*user.PasswordResetToken, error) { return stored, nil },
	}
	uc := NewResetPasswordUseCase(&mockUserRepo{}, tokenRepo, mockHasher{}, logger.NewLogger())

	err = uc.Execute(context.Background(), ResetPasswordCommand{
		Email:       u.Email(),
		Token:       "a-guess",
		NewPassword: "brand-new-password",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestResetPasswordExpiredToken(t *testing.T) {
	u := existingUser(t)
	token := "plain-reset-token"
	stored := user.ReconstructPasswordResetToken(u.Email(), auth.HashResetToken(token),
		time.Now().Add(-time.Hour), time.Now().Add(-30*time.Minute))

	tokenRepo := &mockTokenRepo{
		getByEmail: func(ctx context.Context, email string) (*user.PasswordResetToken, error) { return stored, nil },
	}
	uc := NewResetPasswordUseCase(&mockUserRepo{}, tokenRepo, mockHasher{}, logger.NewLogger())

	err := uc.Execute(context.Background(), ResetPasswordCommand{
		Email:       u.Email(),
		Token:       token,
		NewPassword: "brand-new-password",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, []string{u.Email()}, tokenRepo.deleted, "expired token must be purged")
}
