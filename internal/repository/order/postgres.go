package order

import (
	"context"
	"errors"
	"io"
	"log"

	"tshirtshop/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const orderColumns = `order_id, customer_id, total_amount::text, status, comments, auth_code, reference, created_on, shipped_on`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) FindOrCreateOpen(ctx context.Context, in CreateInput) (*domain.Order, bool, error) {
	// A partial unique index on (customer_id) WHERE status = 0 backs
	// the one-open-order invariant. The no-op DO UPDATE makes RETURNING
	// yield the existing open order; xmax = 0 flags a fresh insert.
	const q = `
INSERT INTO orders (customer_id, total_amount, status, comments, auth_code, reference)
VALUES ($1, $2, 0, $3, $4, $5)
ON CONFLICT (customer_id) WHERE status = 0
DO UPDATE SET customer_id = EXCLUDED.customer_id
RETURNING ` + orderColumns + `, (xmax = 0) AS created`
	var o domain.Order
	var total string
	var created bool
	err := r.pool.QueryRow(ctx, q,
		in.CustomerID, in.TotalAmount.String(), in.Comments, in.AuthCode, in.Reference,
	).Scan(
		&o.ID, &o.CustomerID, &total, &o.Status, &o.Comments, &o.AuthCode, &o.Reference,
		&o.CreatedOn, &o.ShippedOn, &created,
	)
	if err != nil {
		r.logger.Printf("order repo: find-or-create customer=%d err=%v", in.CustomerID, err)
		return nil, false, err
	}
	if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return nil, false, err
	}
	return &o, created, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, orderID int) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE order_id = $1
LIMIT 1`
	return r.scanOrder(r.pool.QueryRow(ctx, q, orderID))
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE customer_id = $1
ORDER BY created_on DESC`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) CreateDetails(ctx context.Context, details []DetailInput) ([]domain.OrderDetail, error) {
	if len(details) == 0 {
		return []domain.OrderDetail{}, nil
	}

	// One round trip for the whole batch.
	const insert = `
INSERT INTO order_detail (order_id, product_id, attributes, product_name, quantity, unit_cost)
VALUES ($1, $2, $3, $4, $5, $6)`
	batch := &pgx.Batch{}
	for _, d := range details {
		batch.Queue(insert, d.OrderID, d.ProductID, d.Attributes, d.ProductName, d.Quantity, d.UnitCost.String())
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		r.logger.Printf("order repo: bulk insert details order=%d err=%v", details[0].OrderID, err)
		return nil, err
	}

	return r.ListDetails(ctx, details[0].OrderID)
}

func (r *postgresRepo) ListDetails(ctx context.Context, orderID int) ([]domain.OrderDetail, error) {
	const q = `
SELECT item_id, order_id, product_id, attributes, product_name, quantity, unit_cost::text
FROM order_detail
WHERE order_id = $1
ORDER BY item_id ASC`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]domain.OrderDetail, 0)
	for rows.Next() {
		var d domain.OrderDetail
		var unitCost string
		if err := rows.Scan(&d.ItemID, &d.OrderID, &d.ProductID, &d.Attributes, &d.ProductName, &d.Quantity, &unitCost); err != nil {
			return nil, err
		}
		if d.UnitCost, err = decimal.NewFromString(unitCost); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *postgresRepo) SetStatus(ctx context.Context, orderID, status int) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE orders
SET status = $2,
    shipped_on = CASE WHEN $2 = 1 THEN now() ELSE shipped_on END
WHERE order_id = $1`, orderID, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var total string
	err := row.Scan(
		&o.ID, &o.CustomerID, &total, &o.Status, &o.Comments, &o.AuthCode, &o.Reference,
		&o.CreatedOn, &o.ShippedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return nil, err
	}
	return &o, nil
}
