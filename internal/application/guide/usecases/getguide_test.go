package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/guide"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type mockGuideRepo struct {
	guide.GuideRepository
	bySlug map[string]*guide.Guide
}

func (m *mockGuideRepo) GetBySlug(ctx context.Context, slug string) (*guide.Guide, error) {
	if g, ok := m.bySlug[slug]; ok {
		return g, nil
	}
	return nil, apperrors.NewNotFoundError("Guide not found")
}

func testGuide(t *testing.T, active bool) *guide.Guide {
	t.Helper()
	now := time.Now()
	g, err := guide.ReconstructGuide(1, 2, "VPN setup", "vpn-setup",
		"## Problem\nCannot reach the VPN.", []string{"Restart the client", "Check **credentials**"},
		active, 0, now, now)
	require.NoError(t, err)
	return g
}

func TestGetGuideRendersMarkdown(t *testing.T) {
	repo := &mockGuideRepo{bySlug: map[string]*guide.Guide{"vpn-setup": testGuide(t, true)}}
	uc := NewGetGuideUseCase(repo, markdown.NewService(), logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetGuideCommand{Slug: "vpn-setup"})

	require.NoError(t, err)
	assert.Contains(t, result.ProblemHTML, "<h2")
	assert.Contains(t, result.ProblemHTML, "Cannot reach the VPN.")
	require.Len(t, result.SolutionsHTML, 2)
	assert.Contains(t, result.SolutionsHTML[1], "<strong>credentials</strong>")
}

func TestGetGuideHidesInactiveFromPublic(t *testing.T) {
	repo := &mockGuideRepo{bySlug: map[string]*guide.Guide{"vpn-setup": testGuide(t, false)}}
	uc := NewGetGuideUseCase(repo, markdown.NewService(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetGuideCommand{Slug: "vpn-setup"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))

	result, err := uc.Execute(context.Background(), GetGuideCommand{Slug: "vpn-setup", IncludeInactive: true})
	require.NoError(t, err)
	assert.False(t, result.Guide.IsActive())
}

func TestGetGuideUnknownSlug(t *testing.T) {
	repo := &mockGuideRepo{bySlug: map[string]*guide.Guide{}}
	uc := NewGetGuideUseCase(repo, markdown.NewService(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetGuideCommand{Slug: "missing"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
