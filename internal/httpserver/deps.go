package httpserver

import (
	"context"

	"tshirtshop/internal/domain"
	"tshirtshop/internal/oauth"
	cartsvc "tshirtshop/internal/service/cart"
	customersvc "tshirtshop/internal/service/customer"
	ordersvc "tshirtshop/internal/service/order"
	reviewsvc "tshirtshop/internal/service/review"
	"tshirtshop/internal/token"
)

// CustomerService is the slice of the customer service the handlers need.
type CustomerService interface {
	Signup(ctx context.Context, in customersvc.SignupInput) (*domain.Customer, string, error)
	Login(ctx context.Context, email, password string) (*domain.Customer, string, error)
	OAuthLogin(ctx context.Context, profile customersvc.OAuthProfile) (*domain.Customer, string, error)
	GetProfile(ctx context.Context, customerID int) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, customerID int, in customersvc.ProfileInput) (*domain.Customer, error)
	UpdateAddress(ctx context.Context, customerID int, in customersvc.AddressInput) (*domain.Customer, error)
	UpdateCreditCard(ctx context.Context, customerID int, card string) (*domain.Customer, error)
}

// CartService exposes shopping cart operations to the handlers.
type CartService interface {
	GenerateCartID() string
	AddItem(ctx context.Context, in cartsvc.AddInput) (*domain.CartItem, bool, error)
	ListItems(ctx context.Context, cartID string) ([]domain.CartLine, error)
	UpdateQuantity(ctx context.Context, itemID, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, itemID int) error
	Empty(ctx context.Context, cartID string) error
}

// OrderService exposes order operations to the handlers.
type OrderService interface {
	Create(ctx context.Context, customerID int, in ordersvc.CreateInput) (*domain.Order, error)
	CreateDetails(ctx context.Context, customerID, orderID int, lines []ordersvc.DetailInput) ([]domain.OrderDetail, error)
	GetSummary(ctx context.Context, customerID, orderID int) (*ordersvc.Summary, error)
	ListForCustomer(ctx context.Context, customerID int) ([]domain.Order, error)
}

// ReviewService exposes product review operations to the handlers.
type ReviewService interface {
	Upsert(ctx context.Context, customerID, productID int, in reviewsvc.Input) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID int) ([]domain.Review, error)
}

// ProductCatalog exposes catalog reads to the handlers.
type ProductCatalog interface {
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	List(ctx context.Context, limit, offset int) ([]domain.Product, error)
}

// TokenVerifier checks access tokens issued at signup/login.
type TokenVerifier interface {
	Verify(raw string) (token.Claims, error)
}

// OAuthProvider is the slice of an oauth provider the handlers need.
type OAuthProvider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (oauth.Profile, error)
}

// Deps carries everything the router needs.
type Deps struct {
	Customers CustomerService
	Cart      CartService
	Orders    OrderService
	Reviews   ReviewService
	Products  ProductCatalog
	Tokens    TokenVerifier
	Providers []OAuthProvider

	CORSAllowOrigins []string
}
