package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/georgemunganga/marketplace-backend/internal/modules/user"
	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/password"
	"github.com/georgemunganga/marketplace-backend/internal/platform/token"
)

// RoleUser is the role claim carried by customer tokens.
const RoleUser = "user"

// UserFinder looks up a user by email. user.Repository satisfies it.
type UserFinder interface {
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
}

type service struct {
	users  UserFinder
	hasher *password.Hasher
	issuer *token.Issuer
	ttl    time.Duration
}

// NewService creates a new auth service. Tokens are valid for ttl.
func NewService(users UserFinder, hasher *password.Hasher, issuer *token.Issuer, ttl time.Duration) Service {
	return &service{users: users, hasher: hasher, issuer: issuer, ttl: ttl}
}

func (s *service) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	u, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, apperr.ErrNotFound) {
		return "", nil, apperr.Unauthorized("invalid email or password")
	}
	if err != nil {
		return "", nil, err
	}

	if !s.hasher.Matches(u.PasswordHash, password) {
		return "", nil, apperr.Unauthorized("invalid email or password")
	}

	tokenString, err := s.issuer.Issue(u.ID.String(), RoleUser, u.IsAdmin, s.ttl)
	if err != nil {
		return "", nil, apperr.Persistence(err, "sign token")
	}

	return tokenString, u, nil
}
