package mappers

import (
	"encoding/json"
	"fmt"

	"helpdesk/internal/domain/guide"
	"helpdesk/internal/infrastructure/persistence/models"
)

type GuideMapper interface {
	ToModel(g *guide.Guide) (*models.GuideModel, error)
	ToDomain(model *models.GuideModel) (*guide.Guide, error)
	CategoryToModel(c *guide.Category) *models.GuideCategoryModel
	CategoryToDomain(model *models.GuideCategoryModel) (*guide.Category, error)
}

type GuideMapperImpl struct{}

func NewGuideMapper() GuideMapper {
	return &GuideMapperImpl{}
}

func (m *GuideMapperImpl) ToModel(g *guide.Guide) (*models.GuideModel, error) {
	var solutionsJSON []byte
	if len(g.Solutions()) > 0 {
		var err error
		solutionsJSON, err = json.Marshal(g.Solutions())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal guide solutions: %w", err)
		}
	}

	return &models.GuideModel{
		ID:         g.ID(),
		CategoryID: g.CategoryID(),
		Title:      g.Title(),
		Slug:       g.Slug(),
		Problem:    g.Problem(),
		Solutions:  solutionsJSON,
		IsActive:   g.IsActive(),
		SortOrder:  g.SortOrder(),
		CreatedAt:  timeToMillis(g.CreatedAt()),
		UpdatedAt:  timeToMillis(g.UpdatedAt()),
	}, nil
}

func (m *GuideMapperImpl) ToDomain(model *models.GuideModel) (*guide.Guide, error) {
	var solutions []string
	if len(model.Solutions) > 0 {
		if err := json.Unmarshal(model.Solutions, &solutions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal guide solutions (id=%d): %w", model.ID, err)
		}
	}

	return guide.ReconstructGuide(
		model.ID,
		model.CategoryID,
		model.Title,
		model.Slug,
		model.Problem,
		solutions,
		model.IsActive,
		model.SortOrder,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *GuideMapperImpl) CategoryToModel(c *guide.Category) *models.GuideCategoryModel {
	return &models.GuideCategoryModel{
		ID:        c.ID(),
		Title:     c.Title(),
		Icon:      c.Icon(),
		SortOrder: c.SortOrder(),
		CreatedAt: timeToMillis(c.CreatedAt()),
		UpdatedAt: timeToMillis(c.UpdatedAt()),
	}
}

func (m *GuideMapperImpl) CategoryToDomain(model *models.GuideCategoryModel) (*guide.Category, error) {
	return guide.ReconstructCategory(
		model.ID,
		model.Title,
		model.Icon,
		model.SortOrder,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
