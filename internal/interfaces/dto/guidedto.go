package dto

import (
	"time"

	"helpdesk/internal/application/guide/usecases"
	"helpdesk/internal/domain/guide"
)

type GuideCategoryResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Icon      string    `json:"icon"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func FromGuideCategory(c *guide.Category) GuideCategoryResponse {
	return GuideCategoryResponse{
		ID:        c.ID(),
		Title:     c.Title(),
		Icon:      c.Icon(),
		SortOrder: c.SortOrder(),
		CreatedAt: c.CreatedAt(),
	}
}

type GuideSummaryResponse struct {
	ID         uint   `json:"id"`
	CategoryID uint   `json:"category_id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Active     bool   `json:"active"`
	SortOrder  int    `json:"sort_order"`
}

func FromGuideSummary(g *guide.Guide) GuideSummaryResponse {
	return GuideSummaryResponse{
		ID:         g.ID(),
		CategoryID: g.CategoryID(),
		Title:      g.Title(),
		Slug:       g.Slug(),
		Active:     g.IsActive(),
		SortOrder:  g.SortOrder(),
	}
}

func FromGuideSummaries(guides []*guide.Guide) []GuideSummaryResponse {
	out := make([]GuideSummaryResponse, 0, len(guides))
	for _, g := range guides {
		out = append(out, FromGuideSummary(g))
	}
	return out
}

type CategoryWithGuidesResponse struct {
	GuideCategoryResponse
	Guides []GuideSummaryResponse `json:"guides"`
}

func FromCategoriesWithGuides(categories []usecases.CategoryWithGuides) []CategoryWithGuidesResponse {
	out := make([]CategoryWithGuidesResponse, 0, len(categories))
	for _, cw := range categories {
		out = append(out, CategoryWithGuidesResponse{
			GuideCategoryResponse: FromGuideCategory(cw.Category),
			Guides:                FromGuideSummaries(cw.Guides),
		})
	}
	return out
}

// GuideDetailResponse carries both the raw markdown (for the admin editor)
// and the sanitized HTML rendering (for display).
type GuideDetailResponse struct {
	ID            uint      `json:"id"`
	CategoryID    uint      `json:"category_id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Problem       string    `json:"problem"`
	Solutions     []string  `json:"solutions"`
	ProblemHTML   string    `json:"problem_html"`
	SolutionsHTML []string  `json:"solutions_html"`
	Active        bool      `json:"active"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromGuideDetail(result *usecases.GetGuideResult) GuideDetailResponse {
	g := result.Guide
	return GuideDetailResponse{
		ID:            g.ID(),
		CategoryID:    g.CategoryID(),
		Title:         g.Title(),
		Slug:          g.Slug(),
		Problem:       g.Problem(),
		Solutions:     g.Solutions(),
		ProblemHTML:   result.ProblemHTML,
		SolutionsHTML: result.SolutionsHTML,
		Active:        g.IsActive(),
		SortOrder:     g.SortOrder(),
		CreatedAt:     g.CreatedAt(),
		UpdatedAt:     g.UpdatedAt(),
	}
}
