package usecases

import (
	"context"

	"helpdesk/internal/domain/guide"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

// GetGuideUseCase resolves a guide by slug and renders its markdown content
// to sanitized HTML.
type GetGuideUseCase struct {
	guideRepo guide.GuideRepository
	renderer  markdown.Service
	logger    logger.Interface
}

func NewGetGuideUseCase(guideRepo guide.GuideRepository, renderer markdown.Service, logger logger.Interface) *GetGuideUseCase {
	return &GetGuideUseCase{
		guideRepo: guideRepo,
		renderer:  renderer,
		logger:    logger,
	}
}

type GetGuideCommand struct {
	Slug string
	// IncludeInactive lets admins preview guides that are not published.
	IncludeInactive bool
}

type GetGuideResult struct {
	Guide         *guide.Guide
	ProblemHTML   string
	SolutionsHTML []string
}

func (uc *GetGuideUseCase) Execute(ctx context.Context, cmd GetGuideCommand) (*GetGuideResult, error) {
	if cmd.Slug == "" {
		return nil, apperrors.NewValidationError("Slug is required")
	}

	g, err := uc.guideRepo.GetBySlug(ctx, cmd.Slug)
	if err != nil {
		return nil, err
	}

	if !g.IsActive() && !cmd.IncludeInactive {
		return nil, apperrors.NewNotFoundError("Guide not found")
	}

	problemHTML, err := uc.renderer.ToHTMLSanitized(g.Problem())
	if err != nil {
		uc.logger.Errorw("failed to render guide problem", "slug", cmd.Slug, "error", err)
		return nil, apperrors.NewInternalError("Failed to render guide")
	}

	solutionsHTML := make([]string, 0, len(g.Solutions()))
	for _, s := range g.Solutions() {
		html, err := uc.renderer.ToHTMLSanitized(s)
		if err != nil {
			uc.logger.Errorw("failed to render guide solution", "slug", cmd.Slug, "error", err)
			return nil, apperrors.NewInternalError("Failed to render guide")
		}
		solutionsHTML = append(solutionsHTML, html)
	}

	return &GetGuideResult{
		Guide:         g,
		ProblemHTML:   problemHTML,
		SolutionsHTML: solutionsHTML,
	}, nil
}
