package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. A customer has at most one open order at a time; the
// open row is the find-or-create key for order creation.
const (
	OrderStatusOpen   = 0
	OrderStatusClosed = 1
)

type Order struct {
	ID          int             `json:"order_id"`
	CustomerID  int             `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      int             `json:"status"`
	Comments    string          `json:"comments,omitempty"`
	AuthCode    string          `json:"auth_code,omitempty"`
	Reference   string          `json:"reference,omitempty"`
	CreatedOn   time.Time       `json:"created_on"`
	ShippedOn   *time.Time      `json:"shipped_on"`
}

// OrderDetail is a line item owned by an order.
type OrderDetail struct {
	ItemID      int             `json:"item_id"`
	OrderID     int             `json:"order_id"`
	ProductID   int             `json:"product_id"`
	Attributes  string          `json:"attributes"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}
