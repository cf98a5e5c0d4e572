package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.UserRepository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

type GetUserCommand struct {
	UserID uint
}

type GetUserResult struct {
	User *user.User
}

func (uc *GetUserUseCase) Execute(ctx context.Context, cmd GetUserCommand) (*GetUserResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewValidationError("User ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	return &GetUserResult{User: u}, nil
}
