package repomanager

import (
	"context"

	"github.com/William0209/backend-last/internal/server/repositories/memory"
	"github.com/William0209/backend-last/internal/server/repositories/posts"
	"github.com/William0209/backend-last/internal/server/repositories/users"
)

type MemoryRepositoryManager struct {
	store *memory.Store
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{store: memory.NewStore()}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Ping(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Users() users.Repository { return m.store.Users() }

func (m *MemoryRepositoryManager) Posts() posts.Repository { return m.store.Posts() }

func (m *MemoryRepositoryManager) Close() error { return nil }
