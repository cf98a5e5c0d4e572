package usecases

import (
	"context"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateUserUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	recorder ActivityRecorder
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.UserRepository, hasher PasswordHasher, recorder ActivityRecorder, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		recorder: recorder,
		logger:   logger,
	}
}

type UpdateUserCommand struct {
	Actor    authorization.Actor
	UserID   uint
	Name     string
	Email    string
	Role     string
	Division *string
	Position *string
	// Password is optional; nil keeps the current password.
	Password  *string
	IPAddress string
	UserAgent string
}

type UpdateUserResult struct {
	User *user.User
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UpdateUserResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Email != u.Email() {
		exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
		if err != nil {
			uc.logger.Errorw("failed to check email availability", "error", err)
			return nil, err
		}
		if exists {
			return nil, apperrors.NewConflictError("Email is already in use")
		}
	}

	if err := u.UpdateProfile(cmd.Name, cmd.Email, cmd.Division, cmd.Position); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := u.ChangeRole(authorization.UserRole(cmd.Role)); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.Password != nil {
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, apperrors.NewInternalError("Failed to update user")
		}
		if err := u.SetPasswordHash(hash); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	actorID := cmd.Actor.UserID
	uc.recorder.Record(ctx, &actorID, activitylog.ActionUserUpdated, "Updated user "+u.Email(),
		map[string]any{"target_user_id": u.ID()}, cmd.IPAddress, cmd.UserAgent)

	return &UpdateUserResult{User: u}, nil
}

func (uc *UpdateUserUseCase) validateCommand(cmd UpdateUserCommand) error {
	if cmd.UserID == 0 {
		return apperrors.NewValidationError("User ID is required")
	}
	if cmd.Name == "" {
		return apperrors.NewValidationError("Name is required")
	}
	if cmd.Email == "" {
		return apperrors.NewValidationError("Email is required")
	}
	if !authorization.UserRole(cmd.Role).IsValid() {
		return apperrors.NewValidationError("Role must be user or admin")
	}
	if cmd.Password != nil && len(*cmd.Password) < 8 {
		return apperrors.NewValidationError("Password must be at least 8 characters")
	}
	return nil
}
