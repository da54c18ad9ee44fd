package product

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/georgemunganga/marketplace-backend/internal/modules/category"
	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{
	"id", "name", "description", "rich_description", "image", "images", "brand",
	"price", "count_in_stock", "rating", "num_reviews", "is_featured", "date_created",
	"id", "name", "icon", "color",
}

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestProductGetByIDPopulatesCategory(t *testing.T) {
	repo, mock := newMockRepo(t)
	id, catID := uuid.New(), uuid.New()
	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM products p LEFT JOIN categories c").WithArgs(id).
		WillReturnRows(sqlmock.NewRows(productRowColumns).AddRow(
			id.String(), "Paracetamol", "500mg", "", "http://h/public/uploads/p.png",
			[]byte("{http://h/public/uploads/a.png,http://h/public/uploads/b.png}"), "Acme",
			"10.00", int64(12), 4.5, int64(3), true, created,
			catID.String(), "Pain relief", "pill", "#f00"))

	p, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol", p.Name)
	assert.Len(t, p.Images, 2)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(10)))
	require.NotNil(t, p.Category)
	assert.Equal(t, catID, p.Category.ID)
	assert.Equal(t, created, p.DateCreated)
}

func TestProductGetByIDMissing(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	mock.ExpectQuery("FROM products p").WithArgs(id).WillReturnRows(sqlmock.NewRows(productRowColumns))

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestProductListFiltersByCategories(t *testing.T) {
	repo, mock := newMockRepo(t)
	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery(`WHERE p.category_id = ANY\(\$1\)`).
		WithArgs(pq.Array([]string{a.String(), b.String()})).
		WillReturnRows(sqlmock.NewRows(productRowColumns))

	products, err := repo.List(context.Background(), []uuid.UUID{a, b})
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductFeaturedLimit(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`WHERE p.is_featured .* LIMIT \$1`).WithArgs(5).
		WillReturnRows(sqlmock.NewRows(productRowColumns))

	_, err := repo.Featured(context.Background(), 5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCreateUnknownCategory(t *testing.T) {
	repo, mock := newMockRepo(t)
	p := &Product{ID: uuid.New(), Name: "x", Category: &category.Category{ID: uuid.New()}}
	mock.ExpectExec("INSERT INTO products").
		WillReturnError(&pq.Error{Code: "23503", Constraint: "products_category_id_fkey"})

	err := repo.Create(context.Background(), p)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestProductSetImagesMissing(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	mock.ExpectExec("UPDATE products SET images").
		WithArgs(pq.Array([]string{"http://h/a.png"}), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetImages(context.Background(), id, []string{"http://h/a.png"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestProductCount(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
