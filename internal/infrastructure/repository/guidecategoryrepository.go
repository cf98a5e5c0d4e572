package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/guide"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

type GuideCategoryRepository struct {
	db     *gorm.DB
	mapper mappers.GuideMapper
}

func NewGuideCategoryRepository(db *gorm.DB) *GuideCategoryRepository {
	return &GuideCategoryRepository{
		db:     db,
		mapper: mappers.NewGuideMapper(),
	}
}

func (r *GuideCategoryRepository) Save(ctx context.Context, c *guide.Category) error {
	model := r.mapper.CategoryToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save guide category: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

func (r *GuideCategoryRepository) Update(ctx context.Context, c *guide.Category) error {
	model := r.mapper.CategoryToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.GuideCategoryModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update guide category: %w", result.Error)
	}
	return nil
}

func (r *GuideCategoryRepository) Delete(ctx context.Context, categoryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.GuideCategoryModel{}, categoryID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete guide category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("guide category not found")
	}
	return nil
}

func (r *GuideCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*guide.Category, error) {
	var model models.GuideCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("guide category not found")
		}
		return nil, fmt.Errorf("failed to find guide category: %w", err)
	}

	return r.mapper.CategoryToDomain(&model)
}

func (r *GuideCategoryRepository) ListOrdered(ctx context.Context) ([]*guide.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var categoryModels []models.GuideCategoryModel
	if err := tx.Order("sort_order ASC").Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list guide categories: %w", err)
	}

	categories := make([]*guide.Category, len(categoryModels))
	for i := range categoryModels {
		c, err := r.mapper.CategoryToDomain(&categoryModels[i])
		if err != nil {
			return nil, err
		}
		categories[i] = c
	}
	return categories, nil
}
