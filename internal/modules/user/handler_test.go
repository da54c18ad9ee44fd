package user

import (
	"context"
	"encoding/json"
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
	"github.com/stretchr/testify/require"
)

type mockService struct{ mock.Mock }

func (m *mockService) RegisterUser(ctx context.Context, req RegisterRequest) (*User, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*User)
	return u, args.Error(1)
}

func (m *mockService) GetUser(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*User)
	return u, args.Error(1)
}

func (m *mockService) ListUsers(ctx context.Context) ([]*User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).([]*User)
	return u, args.Error(1)
}

func (m *mockService) UpdateUser(ctx context.Context, id string, req UpdateRequest) (*User, error) {
	args := m.Called(ctx, id, req)
	u, _ := args.Get(0).(*User)
	return u, args.Error(1)
}

func (m *mockService) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockService) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Login(ctx context.Context, email, password string) (string, *User, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(1).(*User)
	return args.String(0), u, args.Error(2)
}

func serve(h *Handler, method, path, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestRegisterUserHandler(t *testing.T) {
	svc := &mockService{}
	u := &User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", PasswordHash: "hash", Status: StatusPending}
	svc.On("RegisterUser", mock.Anything, RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "pw"}).Return(u, nil)
	h := NewHandler(svc, &mockAuth{}, logging.NewWithWriter("test", io.Discard))

	rec := serve(h, http.MethodPost, "/users/register", `{"name":"Ada","email":"ada@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")

	var out struct {
		Success bool `json:"success"`
		User    User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Equal(t, u.ID, out.User.ID)

	rec = serve(h, http.MethodPost, "/users", `{"name":"Ada","email":"ada@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterUserHandlerConflict(t *testing.T) {
	svc := &mockService{}
	svc.On("RegisterUser", mock.Anything, mock.Anything).Return(nil, apperr.Conflict("user with email a@b.c already exists"))
	h := NewHandler(svc, &mockAuth{}, logging.NewWithWriter("test", io.Discard))

	rec := serve(h, http.MethodPost, "/users/register", `{"name":"A","email":"a@b.c","password":"pw"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginHandler(t *testing.T) {
	auth := &mockAuth{}
	u := &User{ID: uuid.New(), Email: "ada@example.com"}
	auth.On("Login", mock.Anything, "ada@example.com", "pw").Return("signed.jwt.token", u, nil)
	auth.On("Login", mock.Anything, "ada@example.com", "bad").Return("", nil, apperr.Unauthorized("invalid email or password"))
	h := NewHandler(&mockService{}, auth, logging.NewWithWriter("test", io.Discard))

	rec := serve(h, http.MethodPost, "/users/login", `{"email":"ada@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "signed.jwt.token", out["token"])
	assert.Equal(t, true, out["success"])

	rec = serve(h, http.MethodPost, "/users/login", `{"email":"ada@example.com","password":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCountUsersHandler(t *testing.T) {
	svc := &mockService{}
	svc.On("CountUsers", mock.Anything).Return(int64(5), nil)
	h := NewHandler(svc, &mockAuth{}, logging.NewWithWriter("test", io.Discard))

	rec := serve(h, http.MethodGet, "/users/get/count", "")
	assert.JSONEq(t, `{"success":true,"count":5}`, rec.Body.String())
}
