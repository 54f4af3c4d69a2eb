package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmaltsev/journal/internal/common"
	"github.com/dmaltsev/journal/internal/dbx"
	"github.com/dmaltsev/journal/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	query :=
		`SELECT id, slug, title, markdown, created_at, updated_at FROM posts
		 WHERE slug = $1
		 `

	post := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&post.ID, &post.Slug, &post.Title, &post.Markdown, &post.CreatedAt, &post.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Post, error) {
	query :=
		`SELECT id, slug, title, markdown, created_at, updated_at FROM posts
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Slug, &post.Title, &post.Markdown, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {

	query :=
		`INSERT INTO posts (id, slug, title, markdown)
         VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at
		 `

	post.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.Slug, post.Title, post.Markdown).Scan(&post.CreatedAt, &post.UpdatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrSlugTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

// Update relies on the posts_slug_idx unique index for rename atomicity:
// the single UPDATE either moves the row to the new slug with all fields
// rewritten, or fails without side effects.
func (r *PostgresRepository) Update(ctx context.Context, currentSlug string, post *models.Post) (*models.Post, error) {

	query :=
		`UPDATE posts SET slug = $2, title = $3, markdown = $4, updated_at = now()
		 WHERE slug = $1
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		currentSlug, post.Slug, post.Title, post.Markdown).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrSlugTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, slug string) error {

	query :=
		`DELETE FROM posts
		 WHERE slug = $1
		 `

	res, err := r.db.ExecContext(ctx, query, slug)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
