package supplier

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/logging"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockService struct{ mock.Mock }

func (m *mockService) RegisterSupplier(ctx context.Context, req SupplierRequest) (*Supplier, error) {
	args := m.Called(ctx, req)
	s, _ := args.Get(0).(*Supplier)
	return s, args.Error(1)
}

func (m *mockService) GetSupplier(ctx context.Context, id string) (*Supplier, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*Supplier)
	return s, args.Error(1)
}

func (m *mockService) ListSuppliers(ctx context.Context) ([]*Supplier, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]*Supplier)
	return s, args.Error(1)
}

func (m *mockService) UpdateSupplier(ctx context.Context, id string, req SupplierRequest) (*Supplier, error) {
	args := m.Called(ctx, id, req)
	s, _ := args.Get(0).(*Supplier)
	return s, args.Error(1)
}

func (m *mockService) DeleteSupplier(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockService) Login(ctx context.Context, email, password string) (string, *Supplier, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(1).(*Supplier)
	return args.String(0), s, args.Error(2)
}

func (m *mockService) AddNote(ctx context.Context, id string, req NoteRequest) (*Supplier, error) {
	args := m.Called(ctx, id, req)
	s, _ := args.Get(0).(*Supplier)
	return s, args.Error(1)
}

func (m *mockService) ListNotes(ctx context.Context, id string) ([]*Note, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).([]*Note)
	return n, args.Error(1)
}

func serve(svc Service, method, path, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	NewHandler(svc, logging.NewWithWriter("test", io.Discard)).RegisterRoutes(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestSupplierLoginHandler(t *testing.T) {
	svc := &mockService{}
	svc.On("Login", mock.Anything, "a@b.c", "pw").Return("tok", &Supplier{Email: "a@b.c"}, nil)

	rec := serve(svc, http.MethodPost, "/supplier/login", `{"email":"a@b.c","password":"pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"supplier":"a@b.c","token":"tok"}`, rec.Body.String())
}

func TestAddNoteHandlerValidation(t *testing.T) {
	svc := &mockService{}
	id := uuid.NewString()
	svc.On("AddNote", mock.Anything, id, mock.Anything).Return(nil, apperr.Validation("note must be between 0 and 5"))

	rec := serve(svc, http.MethodPost, "/supplier/"+id+"/note", `{"note":9}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListNotesHandler(t *testing.T) {
	svc := &mockService{}
	id := uuid.New()
	svc.On("ListNotes", mock.Anything, id.String()).Return([]*Note{}, nil)

	rec := serve(svc, http.MethodGet, "/supplier/"+id.String()+"/notes", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"notes":[]}`, rec.Body.String())
}

func TestGetSupplierHidesPasswordHash(t *testing.T) {
	svc := &mockService{}
	id := uuid.New()
	svc.On("GetSupplier", mock.Anything, id.String()).Return(&Supplier{ID: id, PasswordHash: "secret-hash"}, nil)

	rec := serve(svc, http.MethodGet, "/supplier/"+id.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}
