package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/William0209/backend-last/internal/common"
	"github.com/William0209/backend-last/internal/server/models"
	"github.com/William0209/backend-last/internal/server/repositories/posts"
	"github.com/google/uuid"
)

const maxTitleLen = 255

type PostService struct {
	posts posts.Repository
}

func NewPostService(repo posts.Repository) *PostService {
	return &PostService{posts: repo}
}

func (s *PostService) Create(ctx context.Context, userID, title, content string) (*models.Post, error) {
	if err := validatePost(title, content); err != nil {
		return nil, err
	}

	post, err := s.posts.Create(ctx, &models.Post{AuthorID: userID, Title: title, Content: content})
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return post, nil
}

// List returns the caller's posts, oldest first. It never returns nil on success.
func (s *PostService) List(ctx context.Context, userID string) ([]*models.Post, error) {
	list, err := s.posts.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	if list == nil {
		list = []*models.Post{}
	}
	return list, nil
}

// Update replaces title and content of a post owned by userID. Missing posts,
// posts owned by someone else and malformed ids all yield
// common.ErrNotFoundOrNotOwner.
func (s *PostService) Update(ctx context.Context, userID, postID, title, content string) (*models.Post, error) {
	postID, ok := canonicalPostID(postID)
	if !ok {
		return nil, common.ErrNotFoundOrNotOwner
	}
	if err := validatePost(title, content); err != nil {
		return nil, err
	}

	post, err := s.posts.UpdateByAuthor(ctx, &models.Post{ID: postID, AuthorID: userID, Title: title, Content: content})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNotFoundOrNotOwner
		}
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	postID, ok := canonicalPostID(postID)
	if !ok {
		return common.ErrNotFoundOrNotOwner
	}

	if err := s.posts.DeleteByAuthor(ctx, postID, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrNotFoundOrNotOwner
		}
		return fmt.Errorf("error deleting post: %w", err)
	}
	return nil
}

// canonicalPostID returns id in the hyphenated lower-case form the store uses.
func canonicalPostID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func validatePost(title, content string) error {
	switch {
	case title == "":
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	case len(title) > maxTitleLen:
		return fmt.Errorf("%w: title is too long", common.ErrValidation)
	case content == "":
		return fmt.Errorf("%w: content is required", common.ErrValidation)
	}
	return nil
}
