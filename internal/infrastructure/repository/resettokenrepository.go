package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

type ResetTokenRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewResetTokenRepository(db *gorm.DB) *ResetTokenRepository {
	return &ResetTokenRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

// Save replaces any existing token for the email so only the latest reset
// link is valid.
func (r *ResetTokenRepository) Save(ctx context.Context, token *user.PasswordResetToken) error {
	model := r.mapper.ResetTokenToModel(token)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", model.Email).Delete(&models.PasswordResetTokenModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear previous reset tokens: %w", err)
	}
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}
	return nil
}

func (r *ResetTokenRepository) GetByEmail(ctx context.Context, email string) (*user.PasswordResetToken, error) {
	var model models.PasswordResetTokenModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("reset token not found")
		}
		return nil, fmt.Errorf("failed to find reset token: %w", err)
	}

	return r.mapper.ResetTokenToDomain(&model), nil
}

func (r *ResetTokenRepository) DeleteByEmail(ctx context.Context, email string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("email = ?", email).Delete(&models.PasswordResetTokenModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete reset tokens: %w", err)
	}
	return nil
}
