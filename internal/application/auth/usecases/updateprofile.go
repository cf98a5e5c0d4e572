package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UpdateProfileUseCase lets a user change their own profile fields and email
// notification preferences.
type UpdateProfileUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.UserRepository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo, logger: logger}
}

// PreferencesInput mirrors the nullable preference flags. A nil field leaves
// the stored flag untouched only when the whole input is nil; a provided
// input replaces all four flags.
type PreferencesInput struct {
	EmailOnTicketCreated *bool
	EmailOnTicketReply   *bool
	EmailOnTicketClosed  *bool
	EmailOnTicketUpdated *bool
}

type UpdateProfileCommand struct {
	UserID      uint
	Name        string
	Email       string
	Division    *string
	Position    *string
	Preferences *PreferencesInput
}

type UpdateProfileResult struct {
	User *user.User
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
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

	if cmd.Preferences != nil {
		u.UpdatePreferences(user.NotificationPreferences{
			EmailOnTicketCreated: cmd.Preferences.EmailOnTicketCreated,
			EmailOnTicketReply:   cmd.Preferences.EmailOnTicketReply,
			EmailOnTicketClosed:  cmd.Preferences.EmailOnTicketClosed,
			EmailOnTicketUpdated: cmd.Preferences.EmailOnTicketUpdated,
		})
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update profile", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	return &UpdateProfileResult{User: u}, nil
}

func (uc *UpdateProfileUseCase) validateCommand(cmd UpdateProfileCommand) error {
	if cmd.UserID == 0 {
		return apperrors.NewValidationError("User ID is required")
	}
	if cmd.Name == "" {
		return apperrors.NewValidationError("Name is required")
	}
	if cmd.Email == "" {
		return apperrors.NewValidationError("Email is required")
	}
	return nil
}
