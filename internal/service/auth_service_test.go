package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/civic-issue-service/internal/config"
	"github.com/spec-kit/civic-issue-service/internal/domain"
	apperrors "github.com/spec-kit/civic-issue-service/pkg/util"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = string(rune('0' + r.nextID))
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.nextID++
	stored := *user
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	found := *user
	return &found, nil
}

func newAuthService(repo *fakeUserRepo) *AuthService {
	// minimum cost keeps the hashing in tests fast
	return NewAuthService(config.Auth{BcryptCost: 4}, repo)
}

func TestRegister_FreshEmailSucceedsOnce(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	err := svc.Register(context.Background(), "Alice", "a@x.com", "secret")
	require.NoError(t, err)

	err = svc.Register(context.Background(), "Alice Again", "a@x.com", "other")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, "User already exists", domainErr.Message)
	assert.Equal(t, 400, domainErr.HTTPStatus)
}

func TestRegister_DefaultsToUserRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	require.NoError(t, svc.Register(context.Background(), "Alice", "a@x.com", "secret"))

	user, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "secret", user.PasswordHash, "password must not be stored in clear text")
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	require.NoError(t, svc.Register(context.Background(), "Alice", "a@x.com", "secret"))

	user, err := svc.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), "nobody@x.com", "secret")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	assert.Equal(t, "User not found", domainErr.Message)
	assert.Equal(t, 401, domainErr.HTTPStatus)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	require.NoError(t, svc.Register(context.Background(), "Alice", "a@x.com", "secret"))

	_, err := svc.Login(context.Background(), "a@x.com", "SECRET")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "Invalid password", domainErr.Message)
	assert.Equal(t, 401, domainErr.HTTPStatus)
}
