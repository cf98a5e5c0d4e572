package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetProfileUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.UserRepository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, logger: logger}
}

type GetProfileCommand struct {
	UserID uint
}

type GetProfileResult struct {
	User *user.User
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, cmd GetProfileCommand) (*GetProfileResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewValidationError("User ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if !apperrors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to load profile", "user_id", cmd.UserID, "error", err)
		}
		return nil, err
	}

	return &GetProfileResult{User: u}, nil
}
