// Package usecases implements admin user management: CRUD, CSV import and
// cascading account removal.
package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.UserRepository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

type ListUsersCommand struct {
	Search   string
	Role     string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users []*user.User
	Total int64
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error) {
	filter := user.UserFilter{
		Search:   cmd.Search,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}

	if cmd.Role != "" {
		role := authorization.UserRole(cmd.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationError("Invalid role filter")
		}
		filter.Role = &role
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return &ListUsersResult{Users: users, Total: total}, nil
}
