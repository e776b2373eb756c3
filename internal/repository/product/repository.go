package product

import (
	"context"

	"tshirtshop/internal/domain"
)

// Repository fetches catalog products.
type Repository interface {
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	List(ctx context.Context, limit, offset int) ([]domain.Product, error)
}
