// Package posts persists slug-addressed content entities. The slug
// column carries a unique index, which settles create and rename races
// at the database; losers receive common.ErrSlugTaken and the original
// row is left untouched.
package posts

import (
	"context"

	"github.com/dmaltsev/journal/internal/server/models"
)

type Repository interface {
	// GetBySlug returns the post stored under slug, or common.ErrorNotFound.
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)

	// List returns all posts in a stable order.
	List(ctx context.Context) ([]models.Post, error)

	// Create inserts the post and returns it with id and timestamps
	// filled in. A conflicting slug yields common.ErrSlugTaken.
	Create(ctx context.Context, post *models.Post) (*models.Post, error)

	// Update rewrites the post stored under currentSlug with post's
	// fields, including its slug. The rename and field update are one
	// atomic statement: common.ErrorNotFound when currentSlug is
	// absent, common.ErrSlugTaken when the target slug is owned by
	// another post; in either case the original row is unchanged.
	Update(ctx context.Context, currentSlug string, post *models.Post) (*models.Post, error)

	// Delete removes the post stored under slug, or reports
	// common.ErrorNotFound.
	Delete(ctx context.Context, slug string) error
}
