package usecases

import (
	"context"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateUserUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	recorder ActivityRecorder
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.UserRepository, hasher PasswordHasher, recorder ActivityRecorder, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		recorder: recorder,
		logger:   logger,
	}
}

type CreateUserCommand struct {
	Actor     authorization.Actor
	Name      string
	Email     string
	Password  string
	Role      string
	Division  *string
	Position  *string
	IPAddress string
	UserAgent string
}

type CreateUserResult struct {
	User *user.User
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	role := authorization.UserRole(cmd.Role)

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email availability", "error", err)
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("Email is already in use")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("Failed to create user")
	}

	u, err := user.NewUser(cmd.Name, cmd.Email, hash, role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.Division != nil || cmd.Position != nil {
		if err := u.UpdateProfile(cmd.Name, cmd.Email, cmd.Division, cmd.Position); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	actorID := cmd.Actor.UserID
	uc.recorder.Record(ctx, &actorID, activitylog.ActionUserCreated, "Created user "+u.Email(),
		map[string]any{"target_user_id": u.ID(), "role": cmd.Role}, cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("user created by admin", "user_id", u.ID(), "role", cmd.Role)

	return &CreateUserResult{User: u}, nil
}

func (uc *CreateUserUseCase) validateCommand(cmd CreateUserCommand) error {
	if cmd.Name == "" {
		return apperrors.NewValidationError("Name is required")
	}
	if cmd.Email == "" {
		return apperrors.NewValidationError("Email is required")
	}
	if len(cmd.Password) < 8 {
		return apperrors.NewValidationError("Password must be at least 8 characters")
	}
	if !authorization.UserRole(cmd.Role).IsValid() {
		return apperrors.NewValidationError("Role must be user or admin")
	}
	return nil
}
