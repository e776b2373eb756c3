package review

import (
	"context"

	"tshirtshop/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Upsert(ctx context.Context, in UpsertInput) (*domain.Review, error) {
	const q = `
INSERT INTO review (customer_id, product_id, review, rating)
VALUES ($1, $2, $3, $4)
ON CONFLICT (customer_id, product_id) DO UPDATE
SET review     = EXCLUDED.review,
    rating     = EXCLUDED.rating,
    created_on = now()
RETURNING review_id, customer_id, product_id, review, rating, created_on`
	var rev domain.Review
	if err := r.pool.QueryRow(ctx, q, in.CustomerID, in.ProductID, in.Review, in.Rating).Scan(
		&rev.ID, &rev.CustomerID, &rev.ProductID, &rev.Review, &rev.Rating, &rev.CreatedOn,
	); err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID int) ([]domain.Review, error) {
	const q = `
SELECT review_id, customer_id, product_id, review, rating, created_on
FROM review
WHERE product_id = $1
ORDER BY created_on DESC`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.CustomerID, &rev.ProductID, &rev.Review, &rev.Rating, &rev.CreatedOn); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
