package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"tshirtshop/internal/domain"
	cartsvc "tshirtshop/internal/service/cart"
	ordersvc "tshirtshop/internal/service/order"
)

func TestGenerateCartID(t *testing.T) {
	router := testRouter(t, testDeps())

	rec := doJSON(router, http.MethodGet, "/shoppingcart/generateUniqueId", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		CartID string `json:"cart_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.CartID == "" {
		t.Fatal("empty cart_id")
	}
}

func TestAddToCart_Created(t *testing.T) {
	deps := testDeps()
	deps.Cart = &stubCartSvc{
		item:    &domain.CartItem{ItemID: 3, CartID: "abc", ProductID: 5, Quantity: 1},
		created: true,
	}
	router := testRouter(t, deps)

	rec := doJSON(router, http.MethodPost, "/shoppingcart/add",
		`{"cart_id":"abc","product_id":5}`, "")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddToCart_DuplicateReported(t *testing.T) {
	deps := testDeps()
	deps.Cart = &stubCartSvc{
		item:    &domain.CartItem{ItemID: 3, CartID: "abc", ProductID: 5, Quantity: 1},
		created: false,
	}
	router := testRouter(t, deps)

	rec := doJSON(router, http.MethodPost, "/shoppingcart/add",
		`{"cart_id":"abc","product_id":5}`, "")

	if rec.Code != http.StatusAlreadyReported {
		t.Fatalf("expected 208, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	deps := testDeps()
	deps.Cart = &stubCartSvc{err: cartsvc.ErrProductNotFound}
	router := testRouter(t, deps)

	rec := doJSON(router, http.MethodPost, "/shoppingcart/add",
		`{"cart_id":"abc","product_id":999}`, "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListCart_ComputedSubtotal(t *testing.T) {
	deps := testDeps()
	deps.Cart = &stubCartSvc{lines: []domain.CartLine{{
		ItemID:    3,
		CartID:    "abc",
		ProductID: 5,
		Quantity:  2,
		Name:      "Test Tee",
		Price:     decimal.RequireFromString("19.99"),
		Subtotal:  decimal.RequireFromString("39.98"),
	}}}
	router := testRouter(t, deps)

	rec := doJSON(router, http.MethodGet, "/shoppingcart/abc", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(rec.Body.Bytes(), &lines); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(lines) != 1 || !lines[0].Subtotal.Equal(decimal.RequireFromString("39.98")) {
		t.Fatalf("unexpected lines: %s", rec.Body.String())
	}
}

func TestRemoveCartItem_Missing(t *testing.T) {
	deps := testDeps()
	deps.Cart = &stubCartSvc{err: domain.ErrNotFound}
	router := testRouter(t, deps)

	rec := doJSON(router, http.MethodDelete, "/shoppingcart/removeProduct/42", "", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error.Code != "CRT_01" {
		t.Fatalf("code = %q", env.Error.Code)
	}
}

func TestCreateOrder_RequiresToken(t *testing.T) {
	router := testRouter(t, testDeps())

	rec := doJSON(router, http.MethodPost, "/orders", `{"total_amount":"10.00"}`, "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCreateOrder_Created(t *testing.T) {
	deps := testDeps()
	deps.Orders = &stubOrderSvc{order: &domain.Order{ID: 12, CustomerID: 1}}
	router := testRouter(t, deps)

	rec := doJSON(router, http.MethodPost, "/orders", `{"total_amount":"10.00"}`, "valid")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp struct {
		OrderID int `json:"order_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OrderID != 12 {
		t.Fatalf("order_id = %d", resp.OrderID)
	}
}

func TestCreateOrder_NumericAmountAccepted(t *testing.T) {
	deps := testDeps()
	deps.Orders = &stubOrderSvc{order: &domain.Order{ID: 15, CustomerID: 1}}
	router := testRouter(t, deps)

	rec := doJSON(router, http.MethodPost, "/orders", `{"total_amount": 99.5}`, "valid")

	if rec.Code != http.StatusCreated {
		t.Fatalf("numeric total_amount rejected: got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateOrder_BadAmount(t *testing.T) {
	deps := testDeps()
	deps.Orders = &stubOrderSvc{err: ordersvc.ErrInvalidTotalAmount}
	router := testRouter(t, deps)

	rec := doJSON(router, http.MethodPost, "/orders", `{"total_amount":"abc"}`, "valid")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error.Code != "ORD_01" {
		t.Fatalf("code = %q", env.Error.Code)
	}
}

func TestOrderSummary_NotOwner(t *testing.T) {
	deps := testDeps()
	deps.Orders = &stubOrderSvc{err: ordersvc.ErrNotOwner}
	router := testRouter(t, deps)

	rec := doJSON(router, http.MethodGet, "/orders/12", "", "valid")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error.Code != "ORD_02" {
		t.Fatalf("code = %q", env.Error.Code)
	}
}

func TestPostReview_RequiresToken(t *testing.T) {
	router := testRouter(t, testDeps())

	rec := doJSON(router, http.MethodPost, "/products/5/reviews",
		`{"review":"great","rating":5}`, "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequestID_EchoedOrMinted(t *testing.T) {
	router := testRouter(t, testDeps())

	rec := doJSON(router, http.MethodGet, "/healthz", "", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("no X-Request-ID minted")
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-77")
	echo := httptest.NewRecorder()
	router.ServeHTTP(echo, req)
	if got := echo.Header().Get("X-Request-ID"); got != "req-77" {
		t.Fatalf("X-Request-ID = %q, want echo of client id", got)
	}
}

func TestPostReview_Created(t *testing.T) {
	deps := testDeps()
	deps.Reviews = &stubReviewSvc{review: &domain.Review{ID: 1, CustomerID: 1, ProductID: 5, Review: "great", Rating: 5}}
	router := testRouter(t, deps)

	rec := doJSON(router, http.MethodPost, "/products/5/reviews",
		`{"review":"great","rating":5}`, "valid")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
}
