package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/database"
	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

const userColumns = `id, name, email, password_hash, phone, is_admin, street, apartment,
	zip, city, medical_code, status, created_at`

func (r *postgresRepository) CreateUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, phone, is_admin, street, apartment,
		                   zip, city, medical_code, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.Email, u.PasswordHash, u.Phone, u.IsAdmin,
		u.Street, u.Apartment, u.Zip, u.City, u.MedicalCode, u.Status, u.CreatedAt)
	return database.Classify(err, fmt.Sprintf("user with email %s", u.Email))
}

func scanUser(scan func(...interface{}) error) (*User, error) {
	u := &User{}
	err := scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Phone,
		&u.IsAdmin,
		&u.Street,
		&u.Apartment,
		&u.Zip,
		&u.City,
		&u.MedicalCode,
		&u.Status,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *postgresRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, email).Scan)
	if err != nil {
		return nil, database.Classify(err, "user")
	}
	return u, nil
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		return nil, database.Classify(err, fmt.Sprintf("user %s", id))
	}
	return u, nil
}

func (r *postgresRepository) ListUsers(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, apperr.Persistence(err, "list users")
	}
	defer rows.Close()

	users := []*User{}
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, apperr.Persistence(err, "scan user")
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence(err, "list users")
	}
	return users, nil
}

func (r *postgresRepository) UpdateUser(ctx context.Context, u *User) error {
	query := `
		UPDATE users
		SET name=$1, email=$2, password_hash=$3, phone=$4, is_admin=$5, street=$6,
		    apartment=$7, zip=$8, city=$9, medical_code=$10
		WHERE id=$11
	`
	res, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.Phone, u.IsAdmin,
		u.Street, u.Apartment, u.Zip, u.City, u.MedicalCode, u.ID)
	if err != nil {
		return database.Classify(err, fmt.Sprintf("user with email %s", u.Email))
	}
	return expectOne(res, u.ID)
}

func (r *postgresRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return database.Classify(err, "user")
	}
	return expectOne(res, id)
}

func (r *postgresRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, apperr.Persistence(err, "count users")
	}
	return n, nil
}

func (r *postgresRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return database.Classify(err, "user")
	}
	return expectOne(res, id)
}

func expectOne(res sql.Result, id uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence(err, "user rows affected")
	}
	if n == 0 {
		return apperr.NotFound("user %s not found", id)
	}
	return nil
}
