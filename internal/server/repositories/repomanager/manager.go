// Package repomanager opens the configured store and vends its repositories.
package repomanager

import (
	"context"

	"github.com/William0209/backend-last/internal/server/config"
	"github.com/William0209/backend-last/internal/server/repositories/posts"
	"github.com/William0209/backend-last/internal/server/repositories/users"
)

// RepositoryManager owns the store connection for the lifetime of the process.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Users() users.Repository
	Posts() posts.Repository
	Close() error
}

// New returns the in-memory manager for config.MemoryDSN and a PostgreSQL
// manager for anything else.
func New(dsn string) (RepositoryManager, error) {
	if dsn == config.MemoryDSN {
		return NewMemoryRepositoryManager(), nil
	}
	return NewPostgresRepositoryManager(dsn)
}
