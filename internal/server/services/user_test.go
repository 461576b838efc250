package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/William0209/backend-last/internal/common"
	"github.com/William0209/backend-last/internal/server/auth"
	"github.com/William0209/backend-last/internal/server/models"
	"github.com/William0209/backend-last/internal/server/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUsersRepo struct {
	createOut *models.User
	createErr error
	created   *models.User

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + password, nil
}

func (f *fakeHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeIssuer struct {
	err error
}

func (f *fakeIssuer) Issue(userID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + userID, nil
}

func newIssuer(t *testing.T, now time.Time) *auth.TokenIssuer {
	t.Helper()
	issuer, err := auth.NewTokenIssuer([]byte("test-secret"), auth.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	return issuer
}

func TestRegisterLoginVerify_RoundTrip(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := newIssuer(t, now)
	svc := NewUserService(memory.NewStore().Users(), auth.NewPasswordHasher(bcrypt.MinCost), issuer)
	ctx := context.Background()

	user, err := svc.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, "pw1", user.PasswordHash)

	token, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestRegister_NormalizesEmail(t *testing.T) {
	repo := &fakeUsersRepo{createOut: &models.User{ID: "u1", Email: "a@x.com"}}
	svc := NewUserService(repo, &fakeHasher{}, &fakeIssuer{})

	_, err := svc.Register(context.Background(), "  A@X.com ", "pw1")
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "a@x.com", repo.created.Email)
	assert.Equal(t, "hashed:pw1", repo.created.PasswordHash)
}

func TestRegister_Duplicate(t *testing.T) {
	store := memory.NewStore()
	svc := NewUserService(store.Users(), auth.NewPasswordHasher(bcrypt.MinCost), &fakeIssuer{})
	ctx := context.Background()

	first, err := svc.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "a@x.com", "pw2")
	assert.ErrorIs(t, err, common.ErrIdentityTaken)

	stored, err := store.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, first.PasswordHash, stored.PasswordHash)

	_, err = svc.Login(ctx, "a@x.com", "pw1")
	assert.NoError(t, err)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "pw"},
		{"blank email", "   ", "pw"},
		{"no at sign", "ax.com", "pw"},
		{"long email", strings.Repeat("a", 250) + "@x.com", "pw"},
		{"empty password", "a@x.com", ""},
		{"long password", "a@x.com", strings.Repeat("p", 73)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeUsersRepo{}
			svc := NewUserService(repo, &fakeHasher{}, &fakeIssuer{})

			_, err := svc.Register(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.Nil(t, repo.created)
		})
	}
}

func TestRegister_HashError(t *testing.T) {
	repo := &fakeUsersRepo{}
	svc := NewUserService(repo, &fakeHasher{hashErr: errors.New("boom")}, &fakeIssuer{})

	_, err := svc.Register(context.Background(), "a@x.com", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error hashing password")
	assert.Nil(t, repo.created)
}

func TestRegister_StoreError(t *testing.T) {
	repo := &fakeUsersRepo{createErr: errors.New("db error: conn reset")}
	svc := NewUserService(repo, &fakeHasher{}, &fakeIssuer{})

	_, err := svc.Register(context.Background(), "a@x.com", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrIdentityTaken)
	assert.Contains(t, err.Error(), "error creating user")
}

func TestLogin_Errors(t *testing.T) {
	stored := &models.User{ID: "u1", Email: "a@x.com", PasswordHash: "hashed:pw1"}

	tests := []struct {
		name     string
		repo     *fakeUsersRepo
		issuer   *fakeIssuer
		password string
		wantErr  error
	}{
		{"unknown user", &fakeUsersRepo{getErr: common.ErrorNotFound}, &fakeIssuer{}, "pw1", common.ErrUserNotFound},
		{"wrong password", &fakeUsersRepo{getOut: stored}, &fakeIssuer{}, "nope", common.ErrInvalidCredentials},
		{"empty password", &fakeUsersRepo{getOut: stored}, &fakeIssuer{}, "", common.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(tt.repo, &fakeHasher{}, tt.issuer)
			token, err := svc.Login(context.Background(), "a@x.com", tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, token)
		})
	}
}

func TestLogin_StoreAndIssuerErrors(t *testing.T) {
	stored := &models.User{ID: "u1", Email: "a@x.com", PasswordHash: "hashed:pw1"}

	svc := NewUserService(&fakeUsersRepo{getErr: errors.New("db error: down")}, &fakeHasher{}, &fakeIssuer{})
	_, err := svc.Login(context.Background(), "a@x.com", "pw1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrUserNotFound)

	svc = NewUserService(&fakeUsersRepo{getOut: stored}, &fakeHasher{}, &fakeIssuer{err: errors.New("sign")})
	_, err = svc.Login(context.Background(), "a@x.com", "pw1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error issuing token")
}

func TestLogin_Success(t *testing.T) {
	stored := &models.User{ID: "u1", Email: "a@x.com", PasswordHash: "hashed:pw1"}
	svc := NewUserService(&fakeUsersRepo{getOut: stored}, &fakeHasher{}, &fakeIssuer{})

	token, err := svc.Login(context.Background(), "A@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "token-for-u1", token)
}
