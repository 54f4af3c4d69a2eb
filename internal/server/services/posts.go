package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmaltsev/journal/internal/common"
	"github.com/dmaltsev/journal/internal/server/models"
	"github.com/dmaltsev/journal/internal/server/repositories/repomanager"
)

// PostService provides the authoring operations over slug-addressed
// posts. Uniqueness and rename atomicity are enforced by the posts
// repository; this layer only routes errors.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{db: db, repomanager: m}
}

// Get returns the post stored under slug or common.ErrorNotFound.
func (s *PostService) Get(ctx context.Context, slug string) (*models.Post, error) {
	repo := s.repomanager.Posts(s.db)
	return repo.GetBySlug(ctx, slug)
}

// List returns all posts in a stable order.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	repo := s.repomanager.Posts(s.db)
	return repo.List(ctx)
}

// Create inserts a new post. A slug already in use yields
// common.ErrSlugTaken and leaves the existing post untouched.
func (s *PostService) Create(ctx context.Context, title, slug, markdown string) (*models.Post, error) {
	post := &models.Post{Slug: slug, Title: title, Markdown: markdown}
	repo := s.repomanager.Posts(s.db)
	p, err := repo.Create(ctx, post)
	if err != nil {
		if errors.Is(err, common.ErrSlugTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return p, nil
}

// Update rewrites every field of the post stored under currentSlug,
// renaming it when newSlug differs. The rename is atomic with the
// uniqueness check: on common.ErrSlugTaken nothing was modified.
func (s *PostService) Update(ctx context.Context, currentSlug, title, newSlug, markdown string) (*models.Post, error) {
	post := &models.Post{Slug: newSlug, Title: title, Markdown: markdown}
	repo := s.repomanager.Posts(s.db)
	p, err := repo.Update(ctx, currentSlug, post)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrSlugTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	return p, nil
}

// Delete removes the post stored under slug, or reports
// common.ErrorNotFound.
func (s *PostService) Delete(ctx context.Context, slug string) error {
	repo := s.repomanager.Posts(s.db)
	if err := repo.Delete(ctx, slug); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error deleting post: %w", err)
	}
	return nil
}
