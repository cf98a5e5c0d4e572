package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangePasswordUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(userRepo user.UserRepository, hasher PasswordHasher, logger logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := uc.validateCommand(cmd); err != nil {
		return err
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	if err := uc.hasher.Verify(cmd.CurrentPassword, u.PasswordHash()); err != nil {
		return apperrors.NewValidationError("Current password is incorrect")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash new password", "user_id", cmd.UserID, "error", err)
		return apperrors.NewInternalError("Failed to change password")
	}

	if err := u.SetPasswordHash(hash); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update password", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)
	return nil
}

func (uc *ChangePasswordUseCase) validateCommand(cmd ChangePasswordCommand) error {
	if cmd.UserID == 0 {
		return apperrors.NewValidationError("User ID is required")
	}
	if cmd.CurrentPassword == "" {
		return apperrors.NewValidationError("Current password is required")
	}
	if len(cmd.NewPassword) < 8 {
		return apperrors.NewValidationError("New password must be at least 8 characters")
	}
	return nil
}
