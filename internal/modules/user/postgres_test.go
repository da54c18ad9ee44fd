package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{
	"id", "name", "email", "password_hash", "phone", "is_admin", "street", "apartment",
	"zip", "city", "medical_code", "status", "created_at",
}

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	err := repo.CreateUser(context.Background(), &User{ID: uuid.New(), Email: "ada@example.com"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Contains(t, err.Error(), "ada@example.com")
}

func TestGetUserByEmail(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	mock.ExpectQuery("FROM users WHERE email").WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(
			id.String(), "Ada", "ada@example.com", "hash", "+260", false, "", "", "", "Lusaka",
			"valid", "pending", time.Now()))

	u, err := repo.GetUserByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "hash", u.PasswordHash)
	assert.Equal(t, "valid", u.MedicalCode)
}

func TestGetUserByIDMissing(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	mock.ExpectQuery("FROM users WHERE id").WithArgs(id).WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.GetUserByID(context.Background(), id)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSetStatus(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	mock.ExpectExec("UPDATE users SET status").WithArgs(StatusBanned, id).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SetStatus(context.Background(), id, StatusBanned))

	mock.ExpectExec("UPDATE users SET status").WithArgs(StatusBanned, id).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SetStatus(context.Background(), id, StatusBanned), apperr.ErrNotFound)
}

func TestCountUsers(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	n, err := repo.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
