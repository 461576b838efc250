package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/William0209/backend-last/internal/common"
	"github.com/William0209/backend-last/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()
	u, err := s.Users().Create(context.Background(), &models.User{Email: email, PasswordHash: "h"})
	require.NoError(t, err)
	return u
}

func TestUsers_CreateAndGet(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	u := seedUser(t, s, "a@x.com")
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := s.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = s.Users().GetUserByEmail(ctx, "b@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUsers_DuplicateKeepsOriginal(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	orig := seedUser(t, s, "a@x.com")

	_, err := s.Users().Create(ctx, &models.User{Email: "a@x.com", PasswordHash: "other"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := s.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestPosts_OwnershipScoped(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	alice := seedUser(t, s, "alice@x.com")
	bob := seedUser(t, s, "bob@x.com")
	posts := s.Posts()

	p, err := posts.Create(ctx, &models.Post{AuthorID: alice.ID, Title: "T", Content: "C"})
	require.NoError(t, err)

	_, err = posts.UpdateByAuthor(ctx, &models.Post{ID: p.ID, AuthorID: bob.ID, Title: "X", Content: "X"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, posts.DeleteByAuthor(ctx, p.ID, bob.ID), common.ErrorNotFound)

	bobs, err := posts.ListByAuthor(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobs)

	alices, err := posts.ListByAuthor(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, alices, 1)
	assert.Equal(t, "T", alices[0].Title)

	updated, err := posts.UpdateByAuthor(ctx, &models.Post{ID: p.ID, AuthorID: alice.ID, Title: "T2", Content: "C2"})
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)

	require.NoError(t, posts.DeleteByAuthor(ctx, p.ID, alice.ID))
	assert.ErrorIs(t, posts.DeleteByAuthor(ctx, p.ID, alice.ID), common.ErrorNotFound)
}

func TestPosts_UnknownAuthor(t *testing.T) {
	_, err := NewStore().Posts().Create(context.Background(), &models.Post{AuthorID: "ghost", Title: "T", Content: "C"})
	assert.Error(t, err)
}

func TestPosts_ListKeepsCreationOrder(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := seedUser(t, s, "a@x.com")

	var ids []string
	for i := 0; i < 5; i++ {
		p, err := s.Posts().Create(ctx, &models.Post{AuthorID: u.ID, Title: fmt.Sprint(i), Content: "c"})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}
	require.NoError(t, s.Posts().DeleteByAuthor(ctx, ids[2], u.ID))

	got, err := s.Posts().ListByAuthor(ctx, u.ID)
	require.NoError(t, err)
	var gotIDs []string
	for _, p := range got {
		gotIDs = append(gotIDs, p.ID)
	}
	assert.Equal(t, []string{ids[0], ids[1], ids[3], ids[4]}, gotIDs)
}

func TestPosts_ReturnedValuesAreCopies(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := seedUser(t, s, "a@x.com")

	p, err := s.Posts().Create(ctx, &models.Post{AuthorID: u.ID, Title: "T", Content: "C"})
	require.NoError(t, err)
	p.Title = "mutated"

	got, err := s.Posts().ListByAuthor(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got[0].Title)
}

func TestUsers_ConcurrentDuplicateRegistration(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Users().Create(context.Background(), &models.User{Email: "same@x.com", PasswordHash: "h"})
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, common.ErrorAlreadyExists)
		}
	}
	assert.Equal(t, 1, ok)
}
