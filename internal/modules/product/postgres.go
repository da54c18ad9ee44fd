package product

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/georgemunganga/marketplace-backend/internal/modules/category"
	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/database"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `p.id, p.name, p.description, p.rich_description, p.image, p.images, p.brand,
	p.price, p.count_in_stock, p.rating, p.num_reviews, p.is_featured, p.date_created,
	c.id, c.name, c.icon, c.color`

const productFrom = ` FROM products p LEFT JOIN categories c ON c.id = p.category_id`

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, name, description, rich_description, image, images, brand, price,
		   category_id, count_in_stock, rating, num_reviews, is_featured, date_created)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		p.ID, p.Name, p.Description, p.RichDescription, p.Image, pq.Array(p.Images), p.Brand, p.Price,
		p.Category.ID, p.CountInStock, p.Rating, p.NumReviews, p.IsFeatured, p.DateCreated)
	return database.Classify(err, "product")
}

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	var (
		categoryID                                uuid.NullUUID
		categoryName, categoryIcon, categoryColor sql.NullString
	)
	err := scan(&p.ID, &p.Name, &p.Description, &p.RichDescription, &p.Image, pq.Array(&p.Images), &p.Brand,
		&p.Price, &p.CountInStock, &p.Rating, &p.NumReviews, &p.IsFeatured, &p.DateCreated,
		&categoryID, &categoryName, &categoryIcon, &categoryColor)
	if err != nil {
		return nil, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if categoryID.Valid {
		p.Category = &category.Category{
			ID:    categoryID.UUID,
			Name:  categoryName.String,
			Icon:  categoryIcon.String,
			Color: categoryColor.String,
		}
	}
	return p, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+productFrom+` WHERE p.id=$1`, id).Scan)
	if err != nil {
		return nil, database.Classify(err, fmt.Sprintf("product %s", id))
	}
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context, categoryIDs []uuid.UUID) ([]*Product, error) {
	query := `SELECT ` + productColumns + productFrom
	args := []interface{}{}
	if len(categoryIDs) > 0 {
		ids := make([]string, len(categoryIDs))
		for i, id := range categoryIDs {
			ids[i] = id.String()
		}
		query += ` WHERE p.category_id = ANY($1)`
		args = append(args, pq.Array(ids))
	}
	query += ` ORDER BY p.date_created DESC`
	return r.queryProducts(ctx, query, args...)
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name=$1, description=$2, rich_description=$3, image=$4, brand=$5, price=$6,
		    category_id=$7, count_in_stock=$8, rating=$9, num_reviews=$10, is_featured=$11
		WHERE id=$12`,
		p.Name, p.Description, p.RichDescription, p.Image, p.Brand, p.Price,
		p.Category.ID, p.CountInStock, p.Rating, p.NumReviews, p.IsFeatured, p.ID)
	if err != nil {
		return database.Classify(err, "product")
	}
	return expectOne(res, p.ID)
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return database.Classify(err, "product")
	}
	return expectOne(res, id)
}

func (r *postgresRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, apperr.Persistence(err, "count products")
	}
	return n, nil
}

func (r *postgresRepo) Featured(ctx context.Context, limit int) ([]*Product, error) {
	query := `SELECT ` + productColumns + productFrom + ` WHERE p.is_featured ORDER BY p.date_created DESC`
	if limit > 0 {
		return r.queryProducts(ctx, query+` LIMIT $1`, limit)
	}
	return r.queryProducts(ctx, query)
}

func (r *postgresRepo) SetImages(ctx context.Context, id uuid.UUID, images []string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE products SET images=$1 WHERE id=$2`, pq.Array(images), id)
	if err != nil {
		return database.Classify(err, "product")
	}
	return expectOne(res, id)
}

func (r *postgresRepo) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Persistence(err, "list products")
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, apperr.Persistence(err, "scan product")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence(err, "list products")
	}
	return products, nil
}

func expectOne(res sql.Result, id uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence(err, "product rows affected")
	}
	if n == 0 {
		return apperr.NotFound("product %s not found", id)
	}
	return nil
}
