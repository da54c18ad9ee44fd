package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/database"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, c *Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, icon, color) VALUES ($1,$2,$3,$4)`,
		c.ID, c.Name, c.Icon, c.Color)
	return database.Classify(err, "category")
}

func scanCategory(scan func(...interface{}) error) (*Category, error) {
	c := &Category{}
	if err := scan(&c.ID, &c.Name, &c.Icon, &c.Color); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		`SELECT id, name, icon, color FROM categories WHERE id=$1`, id).Scan)
	if err != nil {
		return nil, database.Classify(err, fmt.Sprintf("category %s", id))
	}
	return c, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, icon, color FROM categories ORDER BY name`)
	if err != nil {
		return nil, apperr.Persistence(err, "list categories")
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		c, err := scanCategory(rows.Scan)
		if err != nil {
			return nil, apperr.Persistence(err, "scan category")
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence(err, "list categories")
	}
	return categories, nil
}

func (r *postgresRepo) Update(ctx context.Context, c *Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name=$1, icon=$2, color=$3 WHERE id=$4`,
		c.Name, c.Icon, c.Color, c.ID)
	if err != nil {
		return database.Classify(err, "category")
	}
	return expectOne(res, c.ID)
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id=$1`, id)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return apperr.Conflict("category %s still has products", id)
	}
	if err != nil {
		return database.Classify(err, "category")
	}
	return expectOne(res, id)
}

func expectOne(res sql.Result, id uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence(err, "category rows affected")
	}
	if n == 0 {
		return apperr.NotFound("category %s not found", id)
	}
	return nil
}
