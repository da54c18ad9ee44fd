package supplier

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

// NewPostgresRepository creates a new PostgreSQL supplier repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

const supplierColumns = `id, name, email, password_hash, phone, trade_register, status, created_at`

func (r *postgresRepository) CreateSupplier(ctx context.Context, s *Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, email, password_hash, phone, trade_register, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Email, s.PasswordHash, s.Phone,
		s.TradeRegister, s.Status, s.CreatedAt)
	return database.Classify(err, fmt.Sprintf("supplier with email %s", s.Email))
}

func scanSupplier(scan func(...interface{}) error) (*Supplier, error) {
	s := &Supplier{}
	err := scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.PasswordHash,
		&s.Phone,
		&s.TradeRegister,
		&s.Status,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepository) GetSupplierByID(ctx context.Context, id uuid.UUID) (*Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	s, err := scanSupplier(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		return nil, database.Classify(err, fmt.Sprintf("supplier %s", id))
	}
	return s, nil
}

func (r *postgresRepository) GetSupplierByEmail(ctx context.Context, email string) (*Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE email = $1`
	s, err := scanSupplier(r.db.QueryRowContext(ctx, query, email).Scan)
	if err != nil {
		return nil, database.Classify(err, "supplier")
	}
	return s, nil
}

func (r *postgresRepository) ListSuppliers(ctx context.Context) ([]*Supplier, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY created_at DESC`)
	if err != nil {
		return nil, apperr.Persistence(err, "list suppliers")
	}
	defer rows.Close()

	suppliers := []*Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows.Scan)
		if err != nil {
			return nil, apperr.Persistence(err, "scan supplier")
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence(err, "list suppliers")
	}
	return suppliers, nil
}

func (r *postgresRepository) UpdateSupplier(ctx context.Context, s *Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $1, email = $2, password_hash = $3, phone = $4, trade_register = $5
		WHERE id = $6
	`
	res, err := r.db.ExecContext(ctx, query, s.Name, s.Email, s.PasswordHash, s.Phone, s.TradeRegister, s.ID)
	if err != nil {
		return database.Classify(err, fmt.Sprintf("supplier with email %s", s.Email))
	}
	return expectOne(res, s.ID)
}

func (r *postgresRepository) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return database.Classify(err, "supplier")
	}
	return expectOne(res, id)
}

func (r *postgresRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE suppliers SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return database.Classify(err, "supplier")
	}
	return expectOne(res, id)
}

func expectOne(res sql.Result, id uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence(err, "supplier rows affected")
	}
	if n == 0 {
		return apperr.NotFound("supplier %s not found", id)
	}
	return nil
}
