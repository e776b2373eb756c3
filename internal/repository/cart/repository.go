package cart

import (
	"context"

	"tshirtshop/internal/domain"
)

// AddItemInput identifies a cart line. (CartID, ProductID, Attributes)
// is the uniqueness key.
type AddItemInput struct {
	CartID     string
	ProductID  int
	Attributes string
	Quantity   int
}

// Repository persists shopping cart rows.
type Repository interface {
	// AddItem inserts the line unless an identical one exists. The
	// returned flag reports whether a new row was created; the insert
	// must be atomic under concurrent duplicate requests.
	AddItem(ctx context.Context, in AddItemInput) (*domain.CartItem, bool, error)
	// ListLines joins each item with its product and computes the
	// per-line subtotal at read time.
	ListLines(ctx context.Context, cartID string) ([]domain.CartLine, error)
	UpdateQuantity(ctx context.Context, itemID, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, itemID int) error
	Empty(ctx context.Context, cartID string) error
}
