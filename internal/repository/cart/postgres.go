package cart

import (
	"context"
	"errors"

	"tshirtshop/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) AddItem(ctx context.Context, in AddItemInput) (*domain.CartItem, bool, error) {
	// ON CONFLICT DO NOTHING keeps the insert atomic; when it inserts
	// nothing the existing line is fetched afterwards.
	const insert = `
INSERT INTO shopping_cart (cart_id, product_id, attributes, quantity)
VALUES ($1, $2, $3, $4)
ON CONFLICT (cart_id, product_id, attributes) DO NOTHING
RETURNING item_id, cart_id, product_id, attributes, quantity, added_on`
	var item domain.CartItem
	err := r.pool.QueryRow(ctx, insert, in.CartID, in.ProductID, in.Attributes, in.Quantity).Scan(
		&item.ItemID, &item.CartID, &item.ProductID, &item.Attributes, &item.Quantity, &item.AddedOn,
	)
	if err == nil {
		return &item, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	const existing = `
SELECT item_id, cart_id, product_id, attributes, quantity, added_on
FROM shopping_cart
WHERE cart_id = $1 AND product_id = $2 AND attributes = $3
LIMIT 1`
	err = r.pool.QueryRow(ctx, existing, in.CartID, in.ProductID, in.Attributes).Scan(
		&item.ItemID, &item.CartID, &item.ProductID, &item.Attributes, &item.Quantity, &item.AddedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, err
	}
	return &item, false, nil
}

func (r *postgresRepo) ListLines(ctx context.Context, cartID string) ([]domain.CartLine, error) {
	const q = `
SELECT sc.item_id, sc.cart_id, sc.product_id, sc.attributes, sc.quantity,
       p.name, p.image, p.price::text, p.discounted_price::text
FROM shopping_cart sc
JOIN product p ON p.product_id = sc.product_id
WHERE sc.cart_id = $1
ORDER BY sc.added_on ASC`
	rows, err := r.pool.Query(ctx, q, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]domain.CartLine, 0)
	for rows.Next() {
		var line domain.CartLine
		var price, discounted string
		if err := rows.Scan(
			&line.ItemID,
			&line.CartID,
			&line.ProductID,
			&line.Attributes,
			&line.Quantity,
			&line.Name,
			&line.Image,
			&price,
			&discounted,
		); err != nil {
			return nil, err
		}
		if line.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		if line.DiscountedPrice, err = decimal.NewFromString(discounted); err != nil {
			return nil, err
		}
		line.Subtotal = line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *postgresRepo) UpdateQuantity(ctx context.Context, itemID, quantity int) (*domain.CartItem, error) {
	const q = `
UPDATE shopping_cart
SET quantity = $2
WHERE item_id = $1
RETURNING item_id, cart_id, product_id, attributes, quantity, added_on`
	var item domain.CartItem
	err := r.pool.QueryRow(ctx, q, itemID, quantity).Scan(
		&item.ItemID, &item.CartID, &item.ProductID, &item.Attributes, &item.Quantity, &item.AddedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) RemoveItem(ctx context.Context, itemID int) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM shopping_cart WHERE item_id = $1`, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Empty(ctx context.Context, cartID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM shopping_cart WHERE cart_id = $1`, cartID)
	return err
}
