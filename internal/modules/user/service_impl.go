package user

import (
	"context"
	"strings"
	"time"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/password"
	"github.com/google/uuid"
)

type service struct {
	repo   Repository
	hasher *password.Hasher
	now    func() time.Time
}

// NewService creates a new user service.
func NewService(repo Repository, hasher *password.Hasher) Service {
	return &service{repo: repo, hasher: hasher, now: time.Now}
}

func (s *service) RegisterUser(ctx context.Context, req RegisterRequest) (*User, error) {
	email := normalizeEmail(req.Email)
	switch {
	case strings.TrimSpace(req.Name) == "":
		return nil, apperr.Validation("name is required")
	case email == "":
		return nil, apperr.Validation("email is required")
	case req.Password == "":
		return nil, apperr.Validation("password is required")
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperr.Persistence(err, "hash password")
	}

	user := &User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		IsAdmin:      req.IsAdmin,
		Street:       req.Street,
		Apartment:    req.Apartment,
		Zip:          req.Zip,
		City:         req.City,
		MedicalCode:  req.MedicalCode,
		Status:       StatusPending,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) GetUser(ctx context.Context, id string) (*User, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetUserByID(ctx, uid)
}

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *service) UpdateUser(ctx context.Context, id string, req UpdateRequest) (*User, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	u, err := s.repo.GetUserByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&u.Name, req.Name)
	set(&u.Phone, req.Phone)
	set(&u.Street, req.Street)
	set(&u.Apartment, req.Apartment)
	set(&u.Zip, req.Zip)
	set(&u.City, req.City)
	set(&u.MedicalCode, req.MedicalCode)
	if req.Email != nil {
		if u.Email = normalizeEmail(*req.Email); u.Email == "" {
			return nil, apperr.Validation("email must not be empty")
		}
	}
	if req.IsAdmin != nil {
		u.IsAdmin = *req.IsAdmin
	}
	if req.Password != nil && *req.Password != "" {
		if u.PasswordHash, err = s.hasher.Hash(*req.Password); err != nil {
			return nil, apperr.Persistence(err, "hash password")
		}
	}
	if strings.TrimSpace(u.Name) == "" {
		return nil, apperr.Validation("name must not be empty")
	}

	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) DeleteUser(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.DeleteUser(ctx, uid)
}

func (s *service) CountUsers(ctx context.Context) (int64, error) {
	return s.repo.CountUsers(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid user id %q", raw)
	}
	return id, nil
}
