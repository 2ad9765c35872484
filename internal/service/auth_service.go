package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/civic-issue-service/internal/auth"
	"github.com/spec-kit/civic-issue-service/internal/config"
	"github.com/spec-kit/civic-issue-service/internal/domain"
	"github.com/spec-kit/civic-issue-service/internal/repository"
	apperrors "github.com/spec-kit/civic-issue-service/pkg/util"
)

const uniqueViolationCode = "23505"

// AuthService coordinates signup and login flows.
type AuthService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Auth, users repository.UserRepository) *AuthService {
	return &AuthService{users: users, bcryptCost: cfg.BcryptCost}
}

// Register creates a new account with the default user role. The lookup
// before insert reproduces the public "User already exists" behavior; the
// unique index on email closes the race the lookup alone would leave open.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return apperrors.NewConflict("User already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewStoreError("Signup failed", err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return apperrors.NewStoreError("Signup failed", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.NewConflict("User already exists")
		}
		return apperrors.NewStoreError("Signup failed", err)
	}
	return nil
}

// Login authenticates by email and password and returns the account so the
// handler can echo back email and role.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("User not found")
		}
		return nil, apperrors.NewStoreError("Login error", err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("Invalid password")
	}
	return user, nil
}
