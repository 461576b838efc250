// Package posts provides the PostgreSQL-backed post repository. Ownership is
// enforced inside each statement's WHERE clause, never by a prior read.
package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/William0209/backend-last/internal/common"
	"github.com/William0209/backend-last/internal/dbx"
	"github.com/William0209/backend-last/internal/server/models"
)

// PostgresRepository implements post storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts post and fills in the store-generated id and timestamps.
func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	query := `
		INSERT INTO posts (author_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, post.AuthorID, post.Title, post.Content).
		Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return post, nil
}

// ListByAuthor returns the author's posts oldest first, ties broken by id.
func (r *PostgresRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	query := `
		SELECT id, author_id, title, content, created_at, updated_at FROM posts
		WHERE author_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to select posts: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Post, 0)
	for rows.Next() {
		var item models.Post
		if err := rows.Scan(
			&item.ID, &item.AuthorID, &item.Title, &item.Content, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	return result, nil
}

// UpdateByAuthor rewrites title and content of the post matching both
// post.ID and post.AuthorID in one statement.
func (r *PostgresRepository) UpdateByAuthor(ctx context.Context, post *models.Post) (*models.Post, error) {
	query := `
		UPDATE posts SET title = $1, content = $2, updated_at = now()
		WHERE id = $3 AND author_id = $4
		RETURNING id, author_id, title, content, created_at, updated_at
	`
	updated := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, post.Title, post.Content, post.ID, post.AuthorID).Scan(
		&updated.ID, &updated.AuthorID, &updated.Title, &updated.Content, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

// DeleteByAuthor removes the post matching both ids in one statement.
func (r *PostgresRepository) DeleteByAuthor(ctx context.Context, postID, authorID string) error {
	query := `DELETE FROM posts WHERE id = $1 AND author_id = $2`

	res, err := r.db.ExecContext(ctx, query, postID, authorID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
