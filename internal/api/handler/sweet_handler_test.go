package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

type stubSweetService struct {
	createFn   func(ctx context.Context, in ports.CreateSweetInput) (*domain.Sweet, error)
	listFn     func(ctx context.Context, filter ports.SweetFilter) ([]*domain.Sweet, error)
	getFn      func(ctx context.Context, id string) (*domain.Sweet, error)
	updateFn   func(ctx context.Context, id string, in ports.UpdateSweetInput) (*domain.Sweet, error)
	deleteFn   func(ctx context.Context, id string) (*domain.Sweet, error)
	purchaseFn func(ctx context.Context, id string, qty int64) (*domain.Sweet, error)
	restockFn  func(ctx context.Context, id string, qty int64) (*domain.Sweet, error)
}

func (s *stubSweetService) Create(ctx context.Context, in ports.CreateSweetInput) (*domain.Sweet, error) {
	return s.createFn(ctx, in)
}

func (s *stubSweetService) List(ctx context.Context, filter ports.SweetFilter) ([]*domain.Sweet, error) {
	return s.listFn(ctx, filter)
}

func (s *stubSweetService) Get(ctx context.Context, id string) (*domain.Sweet, error) {
	return s.getFn(ctx, id)
}

func (s *stubSweetService) Update(ctx context.Context, id string, in ports.UpdateSweetInput) (*domain.Sweet, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubSweetService) Delete(ctx context.Context, id string) (*domain.Sweet, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubSweetService) Purchase(ctx context.Context, id string, qty int64) (*domain.Sweet, error) {
	return s.purchaseFn(ctx, id, qty)
}

func (s *stubSweetService) Restock(ctx context.Context, id string, qty int64) (*domain.Sweet, error) {
	return s.restockFn(ctx, id, qty)
}

func sampleSweet() *domain.Sweet {
	return &domain.Sweet{
		ID:        "sweet_1",
		Name:      "Chocolate Bar",
		Category:  "Chocolate",
		Price:     50,
		Quantity:  100,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func newSweetContext(method, path, body string, pathID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if pathID != "" {
		c.SetParamNames("id")
		c.SetParamValues(pathID)
	}
	return c, rec
}

func TestSweetHandler_Create_Success(t *testing.T) {
	stub := &stubSweetService{
		createFn: func(ctx context.Context, in ports.CreateSweetInput) (*domain.Sweet, error) {
			if in.Name != "Chocolate Bar" || in.Price != 50 || in.Quantity != 100 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return sampleSweet(), nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newSweetContext(http.MethodPost, "/sweets",
		`{"name":"Chocolate Bar","category":"Chocolate","price":50,"quantity":100}`, "")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["name"] != "Chocolate Bar" {
		t.Fatalf("unexpected data payload: %+v", resp["data"])
	}
}

func TestSweetHandler_Create_ZeroPriceAllowed(t *testing.T) {
	stub := &stubSweetService{
		createFn: func(ctx context.Context, in ports.CreateSweetInput) (*domain.Sweet, error) {
			if in.Price != 0 {
				t.Fatalf("expected price 0, got %v", in.Price)
			}
			s := sampleSweet()
			s.Price = 0
			return s, nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newSweetContext(http.MethodPost, "/sweets",
		`{"name":"Free Sample","category":"Promo","price":0}`, "")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestSweetHandler_Create_ValidationFailure(t *testing.T) {
	stub := &stubSweetService{
		createFn: func(ctx context.Context, in ports.CreateSweetInput) (*domain.Sweet, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewSweetHandler(stub)

	// Missing name and price, negative quantity.
	c, rec := newSweetContext(http.MethodPost, "/sweets",
		`{"category":"Chocolate","quantity":-1}`, "")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["errors"].([]any); !ok {
		t.Fatalf("expected field errors, got %v", resp["errors"])
	}
}

func TestSweetHandler_List_Filters(t *testing.T) {
	stub := &stubSweetService{
		listFn: func(ctx context.Context, filter ports.SweetFilter) ([]*domain.Sweet, error) {
			if filter.Name != "choc" || filter.Category != "Chocolate" {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			if filter.MinPrice == nil || *filter.MinPrice != 10 {
				t.Fatalf("expected minPrice 10, got %v", filter.MinPrice)
			}
			if filter.MaxPrice == nil || *filter.MaxPrice != 60 {
				t.Fatalf("expected maxPrice 60, got %v", filter.MaxPrice)
			}
			return []*domain.Sweet{sampleSweet()}, nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newSweetContext(http.MethodGet,
		"/sweets?name=choc&category=Chocolate&minPrice=10&maxPrice=60", "", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != float64(1) {
		t.Fatalf("expected count 1, got %v", resp["count"])
	}
}

func TestSweetHandler_List_EmptyResult(t *testing.T) {
	stub := &stubSweetService{
		listFn: func(ctx context.Context, filter ports.SweetFilter) ([]*domain.Sweet, error) {
			return nil, nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newSweetContext(http.MethodGet, "/sweets", "", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// data must be an empty list, not null.
	if _, ok := resp["data"].([]any); !ok {
		t.Fatalf("expected data array, got %v", resp["data"])
	}
}

func TestSweetHandler_List_BadPriceBound(t *testing.T) {
	handler := NewSweetHandler(&stubSweetService{})

	c, _ := newSweetContext(http.MethodGet, "/sweets?minPrice=abc", "", "")

	err := handler.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestSweetHandler_Get_NotFound(t *testing.T) {
	stub := &stubSweetService{
		getFn: func(ctx context.Context, id string) (*domain.Sweet, error) {
			return nil, domain.ErrSweetNotFound
		},
	}
	handler := NewSweetHandler(stub)

	c, _ := newSweetContext(http.MethodGet, "/sweets/missing", "", "missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrSweetNotFound) {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
}

func TestSweetHandler_Update_PartialBody(t *testing.T) {
	stub := &stubSweetService{
		updateFn: func(ctx context.Context, id string, in ports.UpdateSweetInput) (*domain.Sweet, error) {
			if id != "sweet_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if in.Price == nil || *in.Price != 60 {
				t.Fatalf("expected price 60, got %v", in.Price)
			}
			if in.Name != nil || in.Category != nil || in.Quantity != nil {
				t.Fatalf("expected only price to be set: %+v", in)
			}
			s := sampleSweet()
			s.Price = 60
			return s, nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newSweetContext(http.MethodPut, "/sweets/sweet_1", `{"price":60}`, "sweet_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSweetHandler_Delete_Success(t *testing.T) {
	stub := &stubSweetService{
		deleteFn: func(ctx context.Context, id string) (*domain.Sweet, error) {
			return sampleSweet(), nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newSweetContext(http.MethodDelete, "/sweets/sweet_1", "", "sweet_1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["id"] != "sweet_1" {
		t.Fatalf("expected removed sweet in data, got %v", resp["data"])
	}
}

func TestSweetHandler_Purchase_Success(t *testing.T) {
	stub := &stubSweetService{
		purchaseFn: func(ctx context.Context, id string, qty int64) (*domain.Sweet, error) {
			if id != "sweet_1" || qty != 5 {
				t.Fatalf("unexpected args: %s %d", id, qty)
			}
			s := sampleSweet()
			s.Quantity = 95
			return s, nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newSweetContext(http.MethodPost, "/sweets/sweet_1/purchase", `{"quantity":5}`, "sweet_1")

	if err := handler.Purchase(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].(map[string]any)
	if data["quantity"] != float64(95) {
		t.Fatalf("expected quantity 95, got %v", data["quantity"])
	}
}

func TestSweetHandler_Purchase_InsufficientStock(t *testing.T) {
	stub := &stubSweetService{
		purchaseFn: func(ctx context.Context, id string, qty int64) (*domain.Sweet, error) {
			return nil, domain.ErrInsufficientStock
		},
	}
	handler := NewSweetHandler(stub)

	c, _ := newSweetContext(http.MethodPost, "/sweets/sweet_1/purchase", `{"quantity":150}`, "sweet_1")

	if err := handler.Purchase(c); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestSweetHandler_Purchase_QuantityValidation(t *testing.T) {
	handler := NewSweetHandler(&stubSweetService{
		purchaseFn: func(ctx context.Context, id string, qty int64) (*domain.Sweet, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	for _, body := range []string{`{}`, `{"quantity":0}`, `{"quantity":-2}`} {
		c, rec := newSweetContext(http.MethodPost, "/sweets/sweet_1/purchase", body, "sweet_1")
		if err := handler.Purchase(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestSweetHandler_Restock_Success(t *testing.T) {
	stub := &stubSweetService{
		restockFn: func(ctx context.Context, id string, qty int64) (*domain.Sweet, error) {
			if qty != 50 {
				t.Fatalf("unexpected quantity: %d", qty)
			}
			s := sampleSweet()
			s.Quantity = 145
			return s, nil
		},
	}
	handler := NewSweetHandler(stub)

	c, rec := newSweetContext(http.MethodPost, "/sweets/sweet_1/restock", `{"quantity":50}`, "sweet_1")

	if err := handler.Restock(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
