package review

import (
	"context"

	"tshirtshop/internal/domain"
)

// UpsertInput carries a customer's review of a product.
type UpsertInput struct {
	CustomerID int
	ProductID  int
	Review     string
	Rating     int
}

// Repository persists reviews. One review per (customer, product); a
// later upsert replaces the earlier row.
type Repository interface {
	Upsert(ctx context.Context, in UpsertInput) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID int) ([]domain.Review, error)
}
