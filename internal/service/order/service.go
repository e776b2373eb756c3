package order

import (
	"context"
	"errors"

	"tshirtshop/internal/domain"
	orderrepo "tshirtshop/internal/repository/order"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidTotalAmount is returned when total_amount is missing or
	// negative.
	ErrInvalidTotalAmount = errors.New("total_amount is missing or invalid")
	// ErrInvalidUnitCost is returned when a detail row carries a
	// negative unit cost.
	ErrInvalidUnitCost = errors.New("unit_cost is invalid")
	// ErrNotOwner is returned when an order exists but belongs to a
	// different customer.
	ErrNotOwner = errors.New("order belongs to another customer")
)

// Service handles the cart-to-order transition and order reads.
type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures the create-order payload. TotalAmount decodes
// from both JSON numbers and quoted strings; nil means the field was
// absent.
type CreateInput struct {
	TotalAmount *decimal.Decimal `json:"total_amount"`
	Comments    string           `json:"comments"`
	AuthCode    string           `json:"auth_code"`
	Reference   string           `json:"reference"`
}

// DetailInput is one order line in a bulk-create request.
type DetailInput struct {
	ProductID   int             `json:"product_id"`
	Attributes  string          `json:"attributes"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// Summary is an order id together with its detail rows.
type Summary struct {
	OrderID    int                  `json:"order_id"`
	OrderItems []domain.OrderDetail `json:"order_items"`
}

// Create validates the total amount and find-or-creates the customer's
// single open order. Two calls while the order stays open return the
// same order.
func (s *Service) Create(ctx context.Context, customerID int, in CreateInput) (*domain.Order, error) {
	if in.TotalAmount == nil || in.TotalAmount.IsNegative() {
		return nil, ErrInvalidTotalAmount
	}

	order, _, err := s.repo.FindOrCreateOpen(ctx, orderrepo.CreateInput{
		CustomerID:  customerID,
		TotalAmount: *in.TotalAmount,
		Comments:    in.Comments,
		AuthCode:    in.AuthCode,
		Reference:   in.Reference,
	})
	return order, err
}

// CreateDetails bulk-inserts line items for an order the customer owns.
func (s *Service) CreateDetails(ctx context.Context, customerID, orderID int, lines []DetailInput) ([]domain.OrderDetail, error) {
	if _, err := s.ownedOrder(ctx, customerID, orderID); err != nil {
		return nil, err
	}
	details := make([]orderrepo.DetailInput, 0, len(lines))
	for _, l := range lines {
		if l.UnitCost.IsNegative() {
			return nil, ErrInvalidUnitCost
		}
		details = append(details, orderrepo.DetailInput{
			OrderID:     orderID,
			ProductID:   l.ProductID,
			Attributes:  l.Attributes,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitCost:    l.UnitCost,
		})
	}
	return s.repo.CreateDetails(ctx, details)
}

// ListForCustomer returns all orders of the authenticated customer.
func (s *Service) ListForCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

// GetSummary returns the detail rows for an order after verifying the
// requesting customer owns it.
func (s *Service) GetSummary(ctx context.Context, customerID, orderID int) (*Summary, error) {
	if _, err := s.ownedOrder(ctx, customerID, orderID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &Summary{OrderID: orderID, OrderItems: items}, nil
}

// Close marks the order closed, allowing a fresh open order to be
// created afterwards.
func (s *Service) Close(ctx context.Context, customerID, orderID int) error {
	if _, err := s.ownedOrder(ctx, customerID, orderID); err != nil {
		return err
	}
	return s.repo.SetStatus(ctx, orderID, domain.OrderStatusClosed)
}

func (s *Service) ownedOrder(ctx context.Context, customerID, orderID int) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, ErrNotOwner
	}
	return order, nil
}
