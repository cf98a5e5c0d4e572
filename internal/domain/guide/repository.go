package guide

import "context"

type GuideRepository interface {
	Save(ctx context.Context, g *Guide) error
	Update(ctx context.Context, g *Guide) error
	Delete(ctx context.Context, guideID uint) error
	GetByID(ctx context.Context, guideID uint) (*Guide, error)
	GetBySlug(ctx context.Context, slug string) (*Guide, error)
	List(ctx context.Context, filter GuideFilter) ([]*Guide, int64, error)
	GetActiveByCategoryID(ctx context.Context, categoryID uint) ([]*Guide, error)
}

type GuideFilter struct {
	Search     string
	CategoryID *uint
	Page       int
	PageSize   int
}

type CategoryRepository interface {
	Save(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, categoryID uint) error
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
	ListOrdered(ctx context.Context) ([]*Category, error)
}
