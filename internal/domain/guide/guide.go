// Package guide holds the self-service knowledge base shown to users before
// they open a ticket.
package guide

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Guide is one troubleshooting article: a problem statement in markdown plus
// an ordered list of solution steps. Visibility is an explicit flag.
type Guide struct {
	id         uint
	categoryID uint
	title      string
	slug       string
	problem    string
	solutions  []string
	active     bool
	sortOrder  int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewGuide(categoryID uint, title, slug, problem string, solutions []string, sortOrder int) (*Guide, error) {
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(problem) == 0 {
		return nil, fmt.Errorf("problem is required")
	}
	if slug == "" {
		slug = Slugify(title)
	}

	now := time.Now()
	return &Guide{
		categoryID: categoryID,
		title:      title,
		slug:       slug,
		problem:    problem,
		solutions:  solutions,
		active:     true,
		sortOrder:  sortOrder,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructGuide(
	id uint,
	categoryID uint,
	title string,
	slug string,
	problem string,
	solutions []string,
	active bool,
	sortOrder int,
	createdAt, updatedAt time.Time,
) (*Guide, error) {
	if id == 0 {
		return nil, fmt.Errorf("guide ID cannot be zero")
	}
	if len(slug) == 0 {
		return nil, fmt.Errorf("slug is required")
	}

	return &Guide{
		id:         id,
		categoryID: categoryID,
		title:      title,
		slug:       slug,
		problem:    problem,
		solutions:  solutions,
		active:     active,
		sortOrder:  sortOrder,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (g *Guide) ID() uint             { return g.id }
func (g *Guide) CategoryID() uint     { return g.categoryID }
func (g *Guide) Title() string        { return g.title }
func (g *Guide) Slug() string         { return g.slug }
func (g *Guide) Problem() string      { return g.problem }
func (g *Guide) Solutions() []string  { return g.solutions }
func (g *Guide) IsActive() bool       { return g.active }
func (g *Guide) SortOrder() int       { return g.sortOrder }
func (g *Guide) CreatedAt() time.Time { return g.createdAt }
func (g *Guide) UpdatedAt() time.Time { return g.updatedAt }

func (g *Guide) SetID(id uint) {
	g.id = id
}

// Update changes the guide content. When the title changes and no explicit
// slug is given, the slug is re-derived from the new title.
func (g *Guide) Update(categoryID uint, title, slug, problem string, solutions []string, active bool, sortOrder int) error {
	if categoryID == 0 {
		return fmt.Errorf("category ID is required")
	}
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(problem) == 0 {
		return fmt.Errorf("problem is required")
	}
	if slug == "" {
		if title != g.title {
			slug = Slugify(title)
		} else {
			slug = g.slug
		}
	}

	g.categoryID = categoryID
	g.title = title
	g.slug = slug
	g.problem = problem
	g.solutions = solutions
	g.active = active
	g.sortOrder = sortOrder
	g.updatedAt = time.Now()
	return nil
}

// Category groups guides in the knowledge base sidebar.
type Category struct {
	id        uint
	title     string
	icon      string
	sortOrder int
	createdAt time.Time
	updatedAt time.Time
}

func NewCategory(title, icon string, sortOrder int) (*Category, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	now := time.Now()
	return &Category{
		title:     title,
		icon:      icon,
		sortOrder: sortOrder,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCategory(id uint, title, icon string, sortOrder int, createdAt, updatedAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	return &Category{
		id:        id,
		title:     title,
		icon:      icon,
		sortOrder: sortOrder,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) Title() string        { return c.title }
func (c *Category) Icon() string         { return c.icon }
func (c *Category) SortOrder() int       { return c.sortOrder }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

func (c *Category) SetID(id uint) {
	c.id = id
}

func (c *Category) Update(title, icon string, sortOrder int) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	c.title = title
	c.icon = icon
	c.sortOrder = sortOrder
	c.updatedAt = time.Now()
	return nil
}

// Slugify turns a title into a URL-safe slug: lowercase alphanumerics with
// single hyphens between words.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
