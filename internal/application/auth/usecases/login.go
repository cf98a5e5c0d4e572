package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/ratelimit"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// LoginUseCase authenticates a user, opens a login session and issues the
// access token for it.
type LoginUseCase struct {
	userRepo    user.UserRepository
	sessionRepo user.SessionRepository
	hasher      PasswordHasher
	tokens      TokenIssuer
	limiter     ratelimit.RateLimiter
	limitConfig ratelimit.RateLimitConfig
	recorder    ActivityRecorder
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	limiter ratelimit.RateLimiter,
	limitConfig ratelimit.RateLimitConfig,
	recorder ActivityRecorder,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokens:      tokens,
		limiter:     limiter,
		limitConfig: limitConfig,
		recorder:    recorder,
		logger:      logger,
	}
}

type LoginCommand struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	AccessToken string
	ExpiresIn   int64
	User        *user.User
	SessionID   uint
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	limitKey := fmt.Sprintf("login:%s", cmd.IPAddress)
	if uc.limiter != nil {
		allowed, err := uc.limiter.Allow(limitKey, uc.limitConfig)
		if err != nil {
			// Rate limiting is protective, not load-bearing; an unreachable
			// limiter must not lock everyone out.
			uc.logger.Warnw("rate limiter unavailable, allowing login attempt", "error", err)
		} else if !allowed {
			return nil, apperrors.NewRateLimitedError("Too many login attempts, please try again later")
		}
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewUnauthorizedError("Invalid email or password")
		}
		uc.logger.Errorw("failed to look up user for login", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Infow("login rejected", "email", cmd.Email, "ip", cmd.IPAddress)
		return nil, apperrors.NewUnauthorizedError("Invalid email or password")
	}

	session, err := user.NewLoginSession(u.ID(), cmd.IPAddress, cmd.UserAgent)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		uc.logger.Errorw("failed to create login session", "user_id", u.ID(), "error", err)
		return nil, err
	}

	tokenResult, err := uc.tokens.Generate(u.ID(), session.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("Failed to issue access token")
	}

	u.RecordLogin(cmd.IPAddress, time.Now())
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to record last login", "user_id", u.ID(), "error", err)
	}

	if uc.limiter != nil {
		if err := uc.limiter.Reset(limitKey); err != nil {
			uc.logger.Debugw("failed to reset login rate limit", "error", err)
		}
	}

	userID := u.ID()
	uc.recorder.Record(ctx, &userID, activitylog.ActionLogin, "Signed in",
		map[string]any{"device": session.DeviceName()}, cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("user logged in", "user_id", u.ID(), "ip", cmd.IPAddress)

	return &LoginResult{
		AccessToken: tokenResult.AccessToken,
		ExpiresIn:   tokenResult.ExpiresIn,
		User:        u,
		SessionID:   session.ID(),
	}, nil
}

func (uc *LoginUseCase) validateCommand(cmd LoginCommand) error {
	if cmd.Email == "" {
		return apperrors.NewValidationError("Email is required")
	}
	if cmd.Password == "" {
		return apperrors.NewValidationError("Password is required")
	}
	if cmd.IPAddress == "" {
		return apperrors.NewValidationError("IP address is required")
	}
	return nil
}
