package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a stored shopping cart row. Uniqueness over
// (cart_id, product_id, attributes) keeps duplicate lines out.
type CartItem struct {
	ItemID     int       `json:"item_id"`
	CartID     string    `json:"cart_id"`
	ProductID  int       `json:"product_id"`
	Attributes string    `json:"attributes"`
	Quantity   int       `json:"quantity"`
	AddedOn    time.Time `json:"added_on"`
}

// CartLine is a cart item joined with its product for listing. Subtotal
// is computed at read time, never stored.
type CartLine struct {
	ItemID          int             `json:"item_id"`
	CartID          string          `json:"cart_id"`
	ProductID       int             `json:"product_id"`
	Attributes      string          `json:"attributes"`
	Quantity        int             `json:"quantity"`
	Name            string          `json:"name"`
	Image           string          `json:"image,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}
