package review

import (
	"context"
	"errors"

	"tshirtshop/internal/domain"
	productrepo "tshirtshop/internal/repository/product"
	reviewrepo "tshirtshop/internal/repository/review"
)

var (
	// ErrInvalidRating is returned for ratings outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrProductNotFound is returned when the reviewed product does not
	// exist.
	ErrProductNotFound = errors.New("product not found")
)

// Service handles product reviews.
type Service struct {
	repo     reviewrepo.Repository
	products productrepo.Repository
}

func New(repo reviewrepo.Repository, products productrepo.Repository) *Service {
	return &Service{repo: repo, products: products}
}

// Input captures the review payload.
type Input struct {
	Review string `json:"review"`
	Rating int    `json:"rating"`
}

// Upsert stores the customer's review of a product; a repeat review for
// the same product replaces the earlier one.
func (s *Service) Upsert(ctx context.Context, customerID, productID int, in Input) (*domain.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	text := in.Review
	if text == "" {
		text = "No review"
	}
	return s.repo.Upsert(ctx, reviewrepo.UpsertInput{
		CustomerID: customerID,
		ProductID:  productID,
		Review:     text,
		Rating:     in.Rating,
	})
}

// ListByProduct returns all reviews of a product, newest first.
func (s *Service) ListByProduct(ctx context.Context, productID int) ([]domain.Review, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s.repo.ListByProduct(ctx, productID)
}
