package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

// ForgotPasswordUseCase starts the password reset flow. It answers success
// whether or not the email exists so account presence cannot be probed.
type ForgotPasswordUseCase struct {
	userRepo  user.UserRepository
	tokenRepo user.PasswordResetTokenRepository
	mailer    PasswordResetMailer
	tokenTTL  time.Duration
	logger    logger.Interface
}

func NewForgotPasswordUseCase(
	userRepo user.UserRepository,
	tokenRepo user.PasswordResetTokenRepository,
	mailer PasswordResetMailer,
	tokenTTL time.Duration,
	logger logger.Interface,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

type ForgotPasswordCommand struct {
	Email string
}

func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, cmd ForgotPasswordCommand) error {
	if cmd.Email == "" {
		return apperrors.NewValidationError("Email is required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			uc.logger.Infow("password reset requested for unknown email", "email", cmd.Email)
			return nil
		}
		uc.logger.Errorw("failed to look up user for password reset", "error", err)
		return err
	}

	token, tokenHash, err := auth.GenerateResetToken()
	if err != nil {
		uc.logger.Errorw("failed to generate reset token", "error", err)
		return apperrors.NewInternalError("Failed to start password reset")
	}

	resetToken, err := user.NewPasswordResetToken(u.Email(), tokenHash, uc.tokenTTL)
	if err != nil {
		return apperrors.NewInternalError("Failed to start password reset")
	}

	if err := uc.tokenRepo.Save(ctx, resetToken); err != nil {
		uc.logger.Errorw("failed to store reset token", "error", err)
		return err
	}

	to := u.Email()
	goroutine.SafeGo(uc.logger, "auth.resetemail", func() {
		if err := uc.mailer.SendPasswordResetEmail(to, token); err != nil {
			uc.logger.Errorw("failed to send password reset email", "error", err)
		}
	})

	uc.logger.Infow("password reset token issued", "user_id", u.ID())
	return nil
}
