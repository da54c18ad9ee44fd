package supplier

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/password"
	"github.com/georgemunganga/marketplace-backend/internal/platform/token"
	"github.com/google/uuid"
)

// RoleSupplier is the role claim carried by supplier tokens.
const RoleSupplier = "supplier"

type Service interface {
	RegisterSupplier(ctx context.Context, req SupplierRequest) (*Supplier, error)
	// GetSupplier returns the supplier with its notes.
	GetSupplier(ctx context.Context, id string) (*Supplier, error)
	ListSuppliers(ctx context.Context) ([]*Supplier, error)
	UpdateSupplier(ctx context.Context, id string, req SupplierRequest) (*Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
	Login(ctx context.Context, email, password string) (string, *Supplier, error)
	// AddNote records a 0-5 note and returns the supplier with all its notes.
	AddNote(ctx context.Context, id string, req NoteRequest) (*Supplier, error)
	ListNotes(ctx context.Context, id string) ([]*Note, error)
}

type service struct {
	supplierRepo Repository
	noteRepo     NoteRepository
	hasher       *password.Hasher
	issuer       *token.Issuer
	tokenTTL     time.Duration
	now          func() time.Time
}

func NewService(supplierRepo Repository, noteRepo NoteRepository, hasher *password.Hasher, issuer *token.Issuer, tokenTTL time.Duration) Service {
	return &service{
		supplierRepo: supplierRepo,
		noteRepo:     noteRepo,
		hasher:       hasher,
		issuer:       issuer,
		tokenTTL:     tokenTTL,
		now:          time.Now,
	}
}

func (s *service) RegisterSupplier(ctx context.Context, req SupplierRequest) (*Supplier, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, apperr.Validation("password is required")
	}
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperr.Persistence(err, "hash password")
	}

	supplier := &Supplier{
		ID:            uuid.New(),
		Name:          req.Name,
		Email:         normalizeEmail(req.Email),
		PasswordHash:  hash,
		Phone:         req.Phone,
		TradeRegister: req.TradeRegister,
		Status:        StatusPending,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.supplierRepo.CreateSupplier(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *service) GetSupplier(ctx context.Context, id string) (*Supplier, error) {
	sid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	supplier, err := s.supplierRepo.GetSupplierByID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if supplier.Notes, err = s.noteRepo.ListNotes(ctx, sid); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *service) ListSuppliers(ctx context.Context) ([]*Supplier, error) {
	return s.supplierRepo.ListSuppliers(ctx)
}

func (s *service) UpdateSupplier(ctx context.Context, id string, req SupplierRequest) (*Supplier, error) {
	sid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}
	supplier, err := s.supplierRepo.GetSupplierByID(ctx, sid)
	if err != nil {
		return nil, err
	}

	supplier.Name = req.Name
	supplier.Email = normalizeEmail(req.Email)
	supplier.Phone = req.Phone
	supplier.TradeRegister = req.TradeRegister
	if req.Password != "" {
		if supplier.PasswordHash, err = s.hasher.Hash(req.Password); err != nil {
			return nil, apperr.Persistence(err, "hash password")
		}
	}

	if err := s.supplierRepo.UpdateSupplier(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *service) DeleteSupplier(ctx context.Context, id string) error {
	sid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.supplierRepo.DeleteSupplier(ctx, sid)
}

func (s *service) Login(ctx context.Context, email, password string) (string, *Supplier, error) {
	supplier, err := s.supplierRepo.GetSupplierByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, apperr.ErrNotFound) {
		return "", nil, apperr.Unauthorized("invalid email or password")
	}
	if err != nil {
		return "", nil, err
	}
	if !s.hasher.Matches(supplier.PasswordHash, password) {
		return "", nil, apperr.Unauthorized("invalid email or password")
	}

	tok, err := s.issuer.Issue(supplier.ID.String(), RoleSupplier, false, s.tokenTTL)
	if err != nil {
		return "", nil, apperr.Persistence(err, "sign token")
	}
	return tok, supplier, nil
}

func (s *service) AddNote(ctx context.Context, id string, req NoteRequest) (*Supplier, error) {
	sid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if req.Note == nil {
		return nil, apperr.Validation("note is required")
	}
	if *req.Note < MinNote || *req.Note > MaxNote {
		return nil, apperr.Validation("note must be between %d and %d", MinNote, MaxNote)
	}
	supplier, err := s.supplierRepo.GetSupplierByID(ctx, sid)
	if err != nil {
		return nil, err
	}

	note := &Note{
		ID:         uuid.New(),
		SupplierID: sid,
		Note:       *req.Note,
		Comment:    req.Comment,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.noteRepo.AddNote(ctx, note); err != nil {
		return nil, err
	}
	if supplier.Notes, err = s.noteRepo.ListNotes(ctx, sid); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *service) ListNotes(ctx context.Context, id string) ([]*Note, error) {
	sid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.supplierRepo.GetSupplierByID(ctx, sid); err != nil {
		return nil, err
	}
	return s.noteRepo.ListNotes(ctx, sid)
}

func validate(req SupplierRequest) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return apperr.Validation("name is required")
	case normalizeEmail(req.Email) == "":
		return apperr.Validation("email is required")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid supplier id %q", raw)
	}
	return id, nil
}
