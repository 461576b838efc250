// Package memory provides in-process implementations of the user and post
// repositories. They follow the same contracts as the PostgreSQL ones and
// are used for local runs (DSN "memory") and tests. Data is lost on exit.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/William0209/backend-last/internal/common"
	"github.com/William0209/backend-last/internal/server/models"
	"github.com/google/uuid"
)

// Store is the shared state behind UserRepository and PostRepository. A
// single RWMutex makes each conditional update or delete atomic.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
	byID    map[string]*models.User
	posts   map[string]*models.Post
	order   []string
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
		posts:   make(map[string]*models.Post),
		now:     time.Now,
	}
}

// Users returns a users repository view of the store.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Posts returns a posts repository view of the store.
func (s *Store) Posts() *PostRepository { return &PostRepository{s: s} }

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.byEmail[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = r.s.now().UTC()
	r.s.byEmail[stored.Email] = &stored
	r.s.byID[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

type PostRepository struct {
	s *Store
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.byID[post.AuthorID]; !ok {
		return nil, fmt.Errorf("db error: author %q does not exist", post.AuthorID)
	}

	stored := *post
	stored.ID = uuid.NewString()
	stored.CreatedAt = r.s.now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	r.s.posts[stored.ID] = &stored
	r.s.order = append(r.s.order, stored.ID)

	out := stored
	return &out, nil
}

// ListByAuthor returns posts in insertion order.
func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*models.Post, 0)
	for _, id := range r.s.order {
		p := r.s.posts[id]
		if p.AuthorID != authorID {
			continue
		}
		out := *p
		result = append(result, &out)
	}
	return result, nil
}

func (r *PostRepository) UpdateByAuthor(ctx context.Context, post *models.Post) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[post.ID]
	if !ok || p.AuthorID != post.AuthorID {
		return nil, common.ErrorNotFound
	}
	p.Title = post.Title
	p.Content = post.Content
	p.UpdatedAt = r.s.now().UTC()

	out := *p
	return &out, nil
}

func (r *PostRepository) DeleteByAuthor(ctx context.Context, postID, authorID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[postID]
	if !ok || p.AuthorID != authorID {
		return common.ErrorNotFound
	}
	delete(r.s.posts, postID)
	for i, id := range r.s.order {
		if id == postID {
			r.s.order = append(r.s.order[:i], r.s.order[i+1:]...)
			break
		}
	}
	return nil
}
