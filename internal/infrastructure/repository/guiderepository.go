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

type GuideRepository struct {
	db     *gorm.DB
	mapper mappers.GuideMapper
}

func NewGuideRepository(db *gorm.DB) *GuideRepository {
	return &GuideRepository{
		db:     db,
		mapper: mappers.NewGuideMapper(),
	}
}

func (r *GuideRepository) Save(ctx context.Context, g *guide.Guide) error {
	model, err := r.mapper.ToModel(g)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("guide slug already in use")
		}
		return fmt.Errorf("failed to save guide: %w", err)
	}

	g.SetID(model.ID)
	return nil
}

func (r *GuideRepository) Update(ctx context.Context, g *guide.Guide) error {
	model, err := r.mapper.ToModel(g)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.GuideModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("guide slug already in use")
		}
		return fmt.Errorf("failed to update guide: %w", result.Error)
	}
	return nil
}

func (r *GuideRepository) Delete(ctx context.Context, guideID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.GuideModel{}, guideID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete guide: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("guide not found")
	}
	return nil
}

func (r *GuideRepository) GetByID(ctx context.Context, guideID uint) (*guide.Guide, error) {
	var model models.GuideModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, guideID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("guide not found")
		}
		return nil, fmt.Errorf("failed to find guide: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *GuideRepository) GetBySlug(ctx context.Context, slug string) (*guide.Guide, error) {
	var model models.GuideModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("guide not found")
		}
		return nil, fmt.Errorf("failed to find guide: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *GuideRepository) List(ctx context.Context, filter guide.GuideFilter) ([]*guide.Guide, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.GuideModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR problem LIKE ?", pattern, pattern)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count guides: %w", err)
	}

	query = query.Order("sort_order ASC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var guideModels []models.GuideModel
	if err := query.Find(&guideModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list guides: %w", err)
	}

	guides := make([]*guide.Guide, len(guideModels))
	for i := range guideModels {
		g, err := r.mapper.ToDomain(&guideModels[i])
		if err != nil {
			return nil, 0, err
		}
		guides[i] = g
	}

	return guides, total, nil
}

func (r *GuideRepository) GetActiveByCategoryID(ctx context.Context, categoryID uint) ([]*guide.Guide, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var guideModels []models.GuideModel
	if err := tx.
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("sort_order ASC").
		Find(&guideModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list guides by category: %w", err)
	}

	guides := make([]*guide.Guide, len(guideModels))
	for i := range guideModels {
		g, err := r.mapper.ToDomain(&guideModels[i])
		if err != nil {
			return nil, err
		}
		guides[i] = g
	}
	return guides, nil
}
