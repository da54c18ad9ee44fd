package admin

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/georgemunganga/marketplace-backend/internal/platform/database"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL admin repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateAdmin(ctx context.Context, a *Admin) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (id, name, email, password_hash, phone) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Name, a.Email, a.PasswordHash, a.Phone)
	return database.Classify(err, fmt.Sprintf("admin with email %s", a.Email))
}

func (r *postgresRepository) GetAdminByEmail(ctx context.Context, email string) (*Admin, error) {
	a := &Admin{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, phone FROM admins WHERE email = $1`, email).
		Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Phone)
	if err != nil {
		return nil, database.Classify(err, "admin")
	}
	return a, nil
}
