package order

import (
	"context"

	"tshirtshop/internal/domain"

	"github.com/shopspring/decimal"
)

// CreateInput carries the fields accepted when opening an order.
type CreateInput struct {
	CustomerID  int
	TotalAmount decimal.Decimal
	Comments    string
	AuthCode    string
	Reference   string
}

// DetailInput is one line item for bulk insertion.
type DetailInput struct {
	OrderID     int
	ProductID   int
	Attributes  string
	ProductName string
	Quantity    int
	UnitCost    decimal.Decimal
}

// Repository persists orders and their detail rows.
type Repository interface {
	// FindOrCreateOpen returns the customer's single open order,
	// creating it atomically when none exists. The returned flag
	// reports whether a new order was created.
	FindOrCreateOpen(ctx context.Context, in CreateInput) (*domain.Order, bool, error)
	GetByID(ctx context.Context, orderID int) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int) ([]domain.Order, error)
	CreateDetails(ctx context.Context, details []DetailInput) ([]domain.OrderDetail, error)
	ListDetails(ctx context.Context, orderID int) ([]domain.OrderDetail, error)
	SetStatus(ctx context.Context, orderID, status int) error
}
