package product

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

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	const q = `
SELECT product_id, name, description, price::text, discounted_price::text, image, image_2, thumbnail, display
FROM product
WHERE product_id = $1
LIMIT 1`
	return r.scanProduct(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) List(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const q = `
SELECT product_id, name, description, price::text, discounted_price::text, image, image_2, thumbnail, display
FROM product
ORDER BY product_id
LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *postgresRepo) scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var price, discounted string
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&price,
		&discounted,
		&p.Image,
		&p.Image2,
		&p.Thumbnail,
		&p.DisplayFlag,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: scan error=%v", err)
		return nil, err
	}
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, err
	}
	if p.DiscountedPrice, err = decimal.NewFromString(discounted); err != nil {
		return nil, err
	}
	return &p, nil
}
