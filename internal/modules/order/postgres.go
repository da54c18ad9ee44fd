package order

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/database"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const orderColumns = `o.id, o.shipping_address1, COALESCE(o.shipping_address2, ''), o.city, o.zip, o.country,
	o.phone, o.status, o.total_price, o.user_id, COALESCE(u.name, ''), o.date_ordered`

func (r *postgresRepo) GetProductPrice(ctx context.Context, productID uuid.UUID) (decimal.Decimal, error) {
	var price decimal.Decimal
	err := r.db.QueryRowContext(ctx, `SELECT price FROM products WHERE id=$1`, productID).Scan(&price)
	if err != nil {
		return decimal.Zero, database.Classify(err, fmt.Sprintf("product %s", productID))
	}
	return price, nil
}

// CreateOrder inserts the lines, then the header, then attaches the lines to
// the header. All of it runs in one transaction.
func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Persistence(err, "begin order transaction")
	}
	defer tx.Rollback()

	ids := make([]string, 0, len(o.OrderItems))
	for pos, item := range o.OrderItems {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, product_id, quantity, unit_price, position)
			VALUES ($1,$2,$3,$4,$5)`,
			item.ID, item.Product.ID, item.Quantity, item.UnitPrice, pos)
		if err != nil {
			return database.Classify(err, "order item")
		}
		ids = append(ids, item.ID.String())
	}

	var userID interface{}
	if o.User != nil {
		userID = o.User.ID
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders
		  (id, shipping_address1, shipping_address2, city, zip, country, phone,
		   status, total_price, user_id, date_ordered)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		o.ID, o.ShippingAddress1, o.ShippingAddress2, o.City, o.Zip, o.Country, o.Phone,
		o.Status, o.TotalPrice, userID, o.DateOrdered)
	if err != nil {
		return database.Classify(err, "order")
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE order_items SET order_id=$1 WHERE id = ANY($2) AND order_id IS NULL`,
		o.ID, pq.Array(ids))
	if err != nil {
		return database.Classify(err, "order item")
	}
	if n, err := res.RowsAffected(); err != nil {
		return apperr.Persistence(err, "attach order items")
	} else if n != int64(len(ids)) {
		return apperr.Persistence(nil, fmt.Sprintf("attached %d of %d order items", n, len(ids)))
	}

	if err := tx.Commit(); err != nil {
		return apperr.Persistence(err, "commit order")
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o LEFT JOIN users u ON u.id = o.user_id
		WHERE o.id=$1`, id).Scan)
	if err != nil {
		return nil, database.Classify(err, fmt.Sprintf("order %s", id))
	}
	if err := r.populateItems(ctx, []*Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) ListOrders(ctx context.Context) ([]*Order, error) {
	orders, err := r.queryOrders(ctx, `
		SELECT `+orderColumns+`
		FROM orders o LEFT JOIN users u ON u.id = o.user_id
		ORDER BY o.date_ordered DESC`)
	if err != nil {
		return nil, err
	}
	return orders, r.populateItems(ctx, orders)
}

func (r *postgresRepo) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*Order, error) {
	orders, err := r.queryOrders(ctx, `
		SELECT `+orderColumns+`
		FROM orders o LEFT JOIN users u ON u.id = o.user_id
		WHERE o.user_id=$1
		ORDER BY o.date_ordered DESC`, userID)
	if err != nil {
		return nil, err
	}
	return orders, r.populateItems(ctx, orders)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return database.Classify(err, "order")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence(err, "update order status")
	}
	if n == 0 {
		return apperr.NotFound("order %s not found", id)
	}
	return nil
}

// DeleteOrder locks the header, bulk-deletes its lines and then the header.
// A short line delete rolls everything back and is reported.
func (r *postgresRepo) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Persistence(err, "begin delete transaction")
	}
	defer tx.Rollback()

	var locked uuid.UUID
	if err := tx.QueryRowContext(ctx, `SELECT id FROM orders WHERE id=$1 FOR UPDATE`, id).Scan(&locked); err != nil {
		return database.Classify(err, fmt.Sprintf("order %s", id))
	}

	var itemIDs []string
	if err := tx.QueryRowContext(ctx,
		`SELECT ARRAY(SELECT id::text FROM order_items WHERE order_id=$1)`, id).Scan(pq.Array(&itemIDs)); err != nil {
		return database.Classify(err, "order items")
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE id = ANY($1)`, pq.Array(itemIDs))
	if err != nil {
		return database.Classify(err, "order items")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence(err, "delete order items")
	}
	if n != int64(len(itemIDs)) {
		return apperr.Persistence(nil, fmt.Sprintf("deleted %d of %d order items", n, len(itemIDs)))
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id=$1`, id); err != nil {
		return database.Classify(err, "order")
	}
	if err := tx.Commit(); err != nil {
		return apperr.Persistence(err, "commit order delete")
	}
	return nil
}

func (r *postgresRepo) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(total_price), 0) FROM orders`).Scan(&total)
	if err != nil {
		return decimal.Zero, apperr.Persistence(err, "sum order totals")
	}
	return total, nil
}

func (r *postgresRepo) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, apperr.Persistence(err, "count orders")
	}
	return n, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanOrder(scan func(...interface{}) error) (*Order, error) {
	o := &Order{}
	var userID uuid.NullUUID
	var userName string
	err := scan(&o.ID, &o.ShippingAddress1, &o.ShippingAddress2, &o.City, &o.Zip, &o.Country,
		&o.Phone, &o.Status, &o.TotalPrice, &userID, &userName, &o.DateOrdered)
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		o.User = &UserRef{ID: userID.UUID, Name: userName}
	}
	o.OrderItems = []*OrderItem{}
	return o, nil
}

func (r *postgresRepo) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Persistence(err, "list orders")
	}
	defer rows.Close()
	orders := []*Order{}
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, apperr.Persistence(err, "scan order")
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence(err, "list orders")
	}
	return orders, nil
}

// populateItems loads the lines of every order in one query, with product and
// category joined in.
func (r *postgresRepo) populateItems(ctx context.Context, orders []*Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]*Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID.String())
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.order_id, oi.id, oi.quantity, oi.unit_price,
		       oi.product_id, p.name, p.price, p.image,
		       c.id, c.name, c.icon, c.color
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.position`, pq.Array(ids))
	if err != nil {
		return apperr.Persistence(err, "load order items")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID                                   uuid.UUID
			item                                      OrderItem
			productID, categoryID                     uuid.NullUUID
			productName, productImage                 sql.NullString
			productPrice                              decimal.NullDecimal
			categoryName, categoryIcon, categoryColor sql.NullString
		)
		if err := rows.Scan(&orderID, &item.ID, &item.Quantity, &item.UnitPrice,
			&productID, &productName, &productPrice, &productImage,
			&categoryID, &categoryName, &categoryIcon, &categoryColor); err != nil {
			return apperr.Persistence(err, "scan order item")
		}
		if productID.Valid {
			item.Product = &ProductRef{
				ID:    productID.UUID,
				Name:  productName.String,
				Image: productImage.String,
			}
			if productPrice.Valid {
				price := productPrice.Decimal
				item.Product.Price = &price
			}
			if categoryID.Valid {
				item.Product.Category = &CategoryRef{
					ID:    categoryID.UUID,
					Name:  categoryName.String,
					Icon:  categoryIcon.String,
					Color: categoryColor.String,
				}
			}
		}
		if o, ok := byID[orderID]; ok {
			o.OrderItems = append(o.OrderItems, &item)
		}
	}
	if err := rows.Err(); err != nil {
		return apperr.Persistence(err, "load order items")
	}
	return nil
}
