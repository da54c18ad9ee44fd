package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/georgemunganga/marketplace-backend/internal/modules/supplier"
	"github.com/georgemunganga/marketplace-backend/internal/modules/user"
	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/password"
	"github.com/georgemunganga/marketplace-backend/internal/platform/token"
	"github.com/google/uuid"
)

// RoleAdmin is the role claim carried by admin tokens.
const RoleAdmin = "admin"

// validCredential is the value a trade register or medical code must hold
// for the account to be accepted.
const validCredential = "valid"

type Service interface {
	CreateAdmin(ctx context.Context, req CreateRequest) (*Admin, error)
	Login(ctx context.Context, email, password string) (string, *Admin, error)

	// AcceptSupplier accepts the supplier when its trade register is valid and refuses it otherwise.
	AcceptSupplier(ctx context.Context, id string) (*Decision, error)

	// AcceptUser accepts the user when its medical code is valid and refuses it otherwise.
	AcceptUser(ctx context.Context, id string) (*Decision, error)

	BanUser(ctx context.Context, id string) (*Decision, error)
}

type service struct {
	repo      Repository
	users     UserStore
	suppliers SupplierStore
	hasher    *password.Hasher
	issuer    *token.Issuer
	tokenTTL  time.Duration
}

func NewService(repo Repository, users UserStore, suppliers SupplierStore, hasher *password.Hasher, issuer *token.Issuer, tokenTTL time.Duration) Service {
	return &service{
		repo:      repo,
		users:     users,
		suppliers: suppliers,
		hasher:    hasher,
		issuer:    issuer,
		tokenTTL:  tokenTTL,
	}
}

func (s *service) CreateAdmin(ctx context.Context, req CreateRequest) (*Admin, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if strings.TrimSpace(req.Name) == "" || email == "" {
		return nil, apperr.Validation("name and email are required")
	}
	if req.Password == "" {
		return nil, apperr.Validation("password is required")
	}
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperr.Persistence(err, "hash password")
	}
	a := &Admin{ID: uuid.New(), Name: req.Name, Email: email, PasswordHash: hash, Phone: req.Phone}
	if err := s.repo.CreateAdmin(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *Admin, error) {
	a, err := s.repo.GetAdminByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, apperr.ErrNotFound) {
		return "", nil, apperr.Unauthorized("invalid email or password")
	}
	if err != nil {
		return "", nil, err
	}
	if !s.hasher.Matches(a.PasswordHash, password) {
		return "", nil, apperr.Unauthorized("invalid email or password")
	}
	tok, err := s.issuer.Issue(a.ID.String(), RoleAdmin, true, s.tokenTTL)
	if err != nil {
		return "", nil, apperr.Persistence(err, "sign token")
	}
	return tok, a, nil
}

func (s *service) AcceptSupplier(ctx context.Context, id string) (*Decision, error) {
	sid, err := parseID(id, "supplier")
	if err != nil {
		return nil, err
	}
	sup, err := s.suppliers.GetSupplierByID(ctx, sid)
	if err != nil {
		return nil, err
	}
	status := supplier.StatusRefused
	if sup.TradeRegister == validCredential {
		status = supplier.StatusAccepted
	}
	if err := s.suppliers.SetStatus(ctx, sid, status); err != nil {
		return nil, err
	}
	return &Decision{ID: sid, Status: status}, nil
}

func (s *service) AcceptUser(ctx context.Context, id string) (*Decision, error) {
	uid, err := parseID(id, "user")
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetUserByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	status := user.StatusRefused
	if u.MedicalCode == validCredential {
		status = user.StatusAccepted
	}
	if err := s.users.SetStatus(ctx, uid, status); err != nil {
		return nil, err
	}
	return &Decision{ID: uid, Status: status}, nil
}

func (s *service) BanUser(ctx context.Context, id string) (*Decision, error) {
	uid, err := parseID(id, "user")
	if err != nil {
		return nil, err
	}
	if err := s.users.SetStatus(ctx, uid, user.StatusBanned); err != nil {
		return nil, err
	}
	return &Decision{ID: uid, Status: user.StatusBanned}, nil
}

func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid %s id %q", what, raw)
	}
	return id, nil
}
