package cart

import (
	"context"
	"errors"
	"strings"

	"tshirtshop/internal/domain"
	cartrepo "tshirtshop/internal/repository/cart"
	productrepo "tshirtshop/internal/repository/product"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when the product being added does
	// not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidQuantity is returned for non-positive quantities.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Service handles shopping cart operations.
type Service struct {
	repo     cartrepo.Repository
	products productrepo.Repository
}

func New(repo cartrepo.Repository, products productrepo.Repository) *Service {
	return &Service{repo: repo, products: products}
}

// AddInput captures the add-to-cart payload.
type AddInput struct {
	CartID     string `json:"cart_id"`
	ProductID  int    `json:"product_id"`
	Attributes string `json:"attributes"`
	Quantity   int    `json:"quantity"`
}

// GenerateCartID mints a fresh client-session cart identifier.
func (s *Service) GenerateCartID() string {
	return uuid.NewString()
}

// AddItem inserts the cart line unless an identical one exists. The
// returned flag reports whether a new line was created; repeating the
// call with the same key is not an error.
func (s *Service) AddItem(ctx context.Context, in AddInput) (*domain.CartItem, bool, error) {
	if strings.TrimSpace(in.CartID) == "" {
		return nil, false, errors.New("cart_id required")
	}
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, false, ErrInvalidQuantity
	}
	if _, err := s.products.GetByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, ErrProductNotFound
		}
		return nil, false, err
	}
	return s.repo.AddItem(ctx, cartrepo.AddItemInput{
		CartID:     in.CartID,
		ProductID:  in.ProductID,
		Attributes: in.Attributes,
		Quantity:   quantity,
	})
}

// ListItems returns the cart's lines joined with product data; each
// subtotal is quantity times the product price, computed at read time.
func (s *Service) ListItems(ctx context.Context, cartID string) ([]domain.CartLine, error) {
	return s.repo.ListLines(ctx, cartID)
}

// UpdateQuantity changes a line's quantity.
func (s *Service) UpdateQuantity(ctx context.Context, itemID, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return s.repo.UpdateQuantity(ctx, itemID, quantity)
}

// RemoveItem deletes one line; domain.ErrNotFound reports a miss
// distinctly from success.
func (s *Service) RemoveItem(ctx context.Context, itemID int) error {
	return s.repo.RemoveItem(ctx, itemID)
}

// Empty removes every line in the cart.
func (s *Service) Empty(ctx context.Context, cartID string) error {
	return s.repo.Empty(ctx, cartID)
}
