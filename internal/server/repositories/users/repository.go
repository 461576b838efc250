package users

import (
	"context"

	"github.com/William0209/backend-last/internal/server/models"
)

// Repository persists user accounts. Create returns common.ErrorAlreadyExists
// for a duplicate email; GetUserByEmail returns common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
