package usecases

import (
	"context"
	"crypto/subtle"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// ResetPasswordUseCase completes the password reset flow by consuming a
// previously issued token.
type ResetPasswordUseCase struct {
	userRepo  user.UserRepository
	tokenRepo user.PasswordResetTokenRepository
	hasher    PasswordHasher
	logger    logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.UserRepository,
	tokenRepo user.PasswordResetTokenRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		hasher:    hasher,
		logger:    logger,
	}
}

type ResetPasswordCommand struct {
	Email       string
	Token       string
	NewPassword string
}

var errInvalidResetToken = apperrors.NewValidationError("Invalid or expired reset token")

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	if err := uc.validateCommand(cmd); err != nil {
		return err
	}

	stored, err := uc.tokenRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return errInvalidResetToken
		}
		uc.logger.Errorw("failed to load reset token", "error", err)
		return err
	}

	hash := auth.HashResetToken(cmd.Token)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(stored.TokenHash())) != 1 {
		return errInvalidResetToken
	}

	if stored.IsExpired(time.Now()) {
		if err := uc.tokenRepo.DeleteByEmail(ctx, cmd.Email); err != nil {
			uc.logger.Warnw("failed to delete expired reset token", "error", err)
		}
		return errInvalidResetToken
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return errInvalidResetToken
		}
		return err
	}

	passwordHash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash new password", "error", err)
		return apperrors.NewInternalError("Failed to reset password")
	}

	if err := u.SetPasswordHash(passwordHash); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update password", "user_id", u.ID(), "error", err)
		return err
	}

	if err := uc.tokenRepo.DeleteByEmail(ctx, cmd.Email); err != nil {
		uc.logger.Warnw("failed to delete used reset token", "error", err)
	}

	uc.logger.Infow("password reset completed", "user_id", u.ID())
	return nil
}

func (uc *ResetPasswordUseCase) validateCommand(cmd ResetPasswordCommand) error {
	if cmd.Email == "" {
		return apperrors.NewValidationError("Email is required")
	}
	if cmd.Token == "" {
		return apperrors.NewValidationError("Reset token is required")
	}
	if len(cmd.NewPassword) < 8 {
		return apperrors.NewValidationError("New password must be at least 8 characters")
	}
	return nil
}
