package usecases

import (
	"context"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/domain/user"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// RevokeAllOthersUseCase revokes every active session that did not originate
// from the caller's current IP address.
type RevokeAllOthersUseCase struct {
	sessionRepo user.SessionRepository
	recorder    ActivityRecorder
	logger      logger.Interface
}

func NewRevokeAllOthersUseCase(sessionRepo user.SessionRepository, recorder ActivityRecorder, logger logger.Interface) *RevokeAllOthersUseCase {
	return &RevokeAllOthersUseCase{
		sessionRepo: sessionRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

type RevokeAllOthersCommand struct {
	UserID    uint
	IPAddress string
	UserAgent string
}

type RevokeAllOthersResult struct {
	RevokedCount int64
}

func (uc *RevokeAllOthersUseCase) Execute(ctx context.Context, cmd RevokeAllOthersCommand) (*RevokeAllOthersResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewValidationError("User ID is required")
	}
	if cmd.IPAddress == "" {
		return nil, apperrors.NewValidationError("IP address is required")
	}

	count, err := uc.sessionRepo.RevokeAllExceptIP(ctx, cmd.UserID, cmd.IPAddress)
	if err != nil {
		uc.logger.Errorw("failed to revoke other sessions", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	if count > 0 {
		userID := cmd.UserID
		uc.recorder.Record(ctx, &userID, activitylog.ActionSessionRevoked, "Revoked all other sessions",
			map[string]any{"revoked_count": count}, cmd.IPAddress, cmd.UserAgent)
	}

	return &RevokeAllOthersResult{RevokedCount: count}, nil
}
