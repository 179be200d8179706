package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// CreateSweetInput carries all data needed to create a new sweet.
type CreateSweetInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int64
}

// UpdateSweetInput describes a partial edit. Nil fields are left untouched;
// supplied fields are re-validated with the same constraints as creation.
type UpdateSweetInput struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int64
}

// SweetService defines use-case operations for the inventory.
type SweetService interface {
	Create(ctx context.Context, in CreateSweetInput) (*domain.Sweet, error)
	List(ctx context.Context, filter SweetFilter) ([]*domain.Sweet, error)
	Get(ctx context.Context, id string) (*domain.Sweet, error)
	Update(ctx context.Context, id string, in UpdateSweetInput) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) (*domain.Sweet, error)
	// Purchase decrements quantity by qty (qty >= 1), failing with
	// domain.ErrInsufficientStock when qty exceeds the quantity on hand.
	Purchase(ctx context.Context, id string, qty int64) (*domain.Sweet, error)
	// Restock increments quantity by qty (qty >= 1). No upper bound.
	Restock(ctx context.Context, id string, qty int64) (*domain.Sweet, error)
}
