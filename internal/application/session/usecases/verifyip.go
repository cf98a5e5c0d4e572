package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// VerifyIPUseCase tells the client whether the caller's current IP matches an
// active session, so the frontend can warn about sign-ins from new locations.
type VerifyIPUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewVerifyIPUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *VerifyIPUseCase {
	return &VerifyIPUseCase{sessionRepo: sessionRepo, logger: logger}
}

type VerifyIPCommand struct {
	UserID    uint
	IPAddress string
}

type VerifyIPResult struct {
	Known bool
}

func (uc *VerifyIPUseCase) Execute(ctx context.Context, cmd VerifyIPCommand) (*VerifyIPResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewValidationError("User ID is required")
	}
	if cmd.IPAddress == "" {
		return nil, apperrors.NewValidationError("IP address is required")
	}

	known, err := uc.sessionRepo.ExistsActiveByUserIP(ctx, cmd.UserID, cmd.IPAddress)
	if err != nil {
		uc.logger.Errorw("failed to verify session IP", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	return &VerifyIPResult{Known: known}, nil
}
