package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// RegisterUseCase creates a self-service account. Registration always yields
// a regular user; admin accounts are created through user management.
type RegisterUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.UserRepository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	Division *string
	Position *string
}

type RegisterResult struct {
	User *user.User
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

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
		return nil, apperrors.NewInternalError("Failed to create account")
	}

	u, err := user.NewUser(cmd.Name, cmd.Email, hash, authorization.RoleUser)
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

	uc.logger.Infow("user registered", "user_id", u.ID(), "email", u.Email())

	return &RegisterResult{User: u}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if cmd.Name == "" {
		return apperrors.NewValidationError("Name is required")
	}
	if cmd.Email == "" {
		return apperrors.NewValidationError("Email is required")
	}
	if len(cmd.Password) < 8 {
		return apperrors.NewValidationError("Password must be at least 8 characters")
	}
	return nil
}
