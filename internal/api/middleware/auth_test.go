package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/service"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func newAuthContext(t *testing.T, authHeader string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	users := &stubUserRepo{users: map[string]*domain.User{
		"user_1": {ID: "user_1", Name: "Alice", Role: domain.RoleAdmin},
	}}

	signed, err := tokens.Issue("user_1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, c, rec := newAuthContext(t, "Bearer "+signed)

	called := false
	mw := Auth(tokens, users)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "user_1" {
			t.Fatalf("user_id not set")
		}
		if c.Get("role") != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_RoleFromStoreNotToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	// The user was demoted after the token was issued; the context must
	// carry the store's current role.
	users := &stubUserRepo{users: map[string]*domain.User{
		"user_1": {ID: "user_1", Role: domain.RoleUser},
	}}

	signed, err := tokens.Issue("user_1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, c, _ := newAuthContext(t, "Bearer "+signed)

	mw := Auth(tokens, users)
	handler := mw(func(c echo.Context) error {
		if c.Get("role") != domain.RoleUser {
			t.Fatalf("expected role from store, got %v", c.Get("role"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func rejectsWith401(t *testing.T, authHeader string, tokens *service.TokenService, users *stubUserRepo) {
	t.Helper()
	e, c, rec := newAuthContext(t, authHeader)

	mw := Auth(tokens, users)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	rejectsWith401(t, "", tokens, &stubUserRepo{})
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	rejectsWith401(t, "Token abc", tokens, &stubUserRepo{})
}

func TestAuth_GarbageToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	rejectsWith401(t, "Bearer not-a-token", tokens, &stubUserRepo{})
}

func TestAuth_ExpiredToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user_1",
		"role": domain.RoleUser,
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rejectsWith401(t, "Bearer "+signed, tokens, &stubUserRepo{})
}

func TestAuth_DeletedSubject(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	signed, err := tokens.Issue("user_gone", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// Token verifies but the subject no longer exists.
	rejectsWith401(t, "Bearer "+signed, tokens, &stubUserRepo{users: map[string]*domain.User{}})
}
