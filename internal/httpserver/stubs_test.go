package httpserver

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/gin-gonic/gin"

	"tshirtshop/internal/domain"
	"tshirtshop/internal/oauth"
	cartsvc "tshirtshop/internal/service/cart"
	customersvc "tshirtshop/internal/service/customer"
	ordersvc "tshirtshop/internal/service/order"
	reviewsvc "tshirtshop/internal/service/review"
	"tshirtshop/internal/token"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubCustomerSvc struct {
	customer *domain.Customer
	token    string
	err      error
}

func (s *stubCustomerSvc) Signup(_ context.Context, _ customersvc.SignupInput) (*domain.Customer, string, error) {
	return s.customer, s.token, s.err
}

func (s *stubCustomerSvc) Login(_ context.Context, _, _ string) (*domain.Customer, string, error) {
	return s.customer, s.token, s.err
}

func (s *stubCustomerSvc) OAuthLogin(_ context.Context, _ customersvc.OAuthProfile) (*domain.Customer, string, error) {
	return s.customer, s.token, s.err
}

func (s *stubCustomerSvc) GetProfile(_ context.Context, _ int) (*domain.Customer, error) {
	return s.customer, s.err
}

func (s *stubCustomerSvc) UpdateProfile(_ context.Context, _ int, _ customersvc.ProfileInput) (*domain.Customer, error) {
	return s.customer, s.err
}

func (s *stubCustomerSvc) UpdateAddress(_ context.Context, _ int, _ customersvc.AddressInput) (*domain.Customer, error) {
	return s.customer, s.err
}

func (s *stubCustomerSvc) UpdateCreditCard(_ context.Context, _ int, card string) (*domain.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := *s.customer
	out.CreditCard = card
	return &out, nil
}

type stubCartSvc struct {
	item    *domain.CartItem
	lines   []domain.CartLine
	created bool
	err     error
}

func (s *stubCartSvc) GenerateCartID() string { return "stub-cart-id" }

func (s *stubCartSvc) AddItem(_ context.Context, _ cartsvc.AddInput) (*domain.CartItem, bool, error) {
	return s.item, s.created, s.err
}

func (s *stubCartSvc) ListItems(_ context.Context, _ string) ([]domain.CartLine, error) {
	return s.lines, s.err
}

func (s *stubCartSvc) UpdateQuantity(_ context.Context, _, _ int) (*domain.CartItem, error) {
	return s.item, s.err
}

func (s *stubCartSvc) RemoveItem(_ context.Context, _ int) error { return s.err }

func (s *stubCartSvc) Empty(_ context.Context, _ string) error { return s.err }

type stubOrderSvc struct {
	order   *domain.Order
	details []domain.OrderDetail
	summary *ordersvc.Summary
	orders  []domain.Order
	err     error
}

func (s *stubOrderSvc) Create(_ context.Context, _ int, _ ordersvc.CreateInput) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderSvc) CreateDetails(_ context.Context, _, _ int, _ []ordersvc.DetailInput) ([]domain.OrderDetail, error) {
	return s.details, s.err
}

func (s *stubOrderSvc) GetSummary(_ context.Context, _, _ int) (*ordersvc.Summary, error) {
	return s.summary, s.err
}

func (s *stubOrderSvc) ListForCustomer(_ context.Context, _ int) ([]domain.Order, error) {
	return s.orders, s.err
}

type stubReviewSvc struct {
	review  *domain.Review
	reviews []domain.Review
	err     error
}

func (s *stubReviewSvc) Upsert(_ context.Context, _, _ int, _ reviewsvc.Input) (*domain.Review, error) {
	return s.review, s.err
}

func (s *stubReviewSvc) ListByProduct(_ context.Context, _ int) ([]domain.Review, error) {
	return s.reviews, s.err
}

type stubCatalog struct {
	product  *domain.Product
	products []domain.Product
	err      error
}

func (s *stubCatalog) GetByID(_ context.Context, _ int) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubCatalog) List(_ context.Context, _, _ int) ([]domain.Product, error) {
	return s.products, s.err
}

type stubVerifier struct {
	claims token.Claims
	err    error
}

func (s *stubVerifier) Verify(_ string) (token.Claims, error) {
	return s.claims, s.err
}

type stubProvider struct {
	name    string
	profile oauth.Profile
	err     error
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) AuthCodeURL(state string) string {
	return "https://provider.test/auth?state=" + state
}

func (s *stubProvider) Exchange(_ context.Context, _ string) (oauth.Profile, error) {
	return s.profile, s.err
}

// testDeps returns a Deps with working stubs everywhere; tests swap in
// the stub under exercise.
func testDeps() Deps {
	return Deps{
		Customers: &stubCustomerSvc{customer: &domain.Customer{ID: 1, Name: "Test", Email: "t@example.com"}},
		Cart:      &stubCartSvc{},
		Orders:    &stubOrderSvc{},
		Reviews:   &stubReviewSvc{},
		Products:  &stubCatalog{},
		Tokens:    &stubVerifier{claims: token.Claims{CustomerID: 1, Email: "t@example.com"}},
	}
}

func testRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}
