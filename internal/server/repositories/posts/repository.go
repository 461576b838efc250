package posts

import (
	"context"

	"github.com/William0209/backend-last/internal/server/models"
)

// Repository persists posts. Every read and write except Create is scoped to
// an author; UpdateByAuthor and DeleteByAuthor return common.ErrorNotFound
// when no post with that id belongs to the author.
type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error)
	UpdateByAuthor(ctx context.Context, post *models.Post) (*models.Post, error)
	DeleteByAuthor(ctx context.Context, postID, authorID string) error
}
