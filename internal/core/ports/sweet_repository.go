package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// SweetFilter carries the optional query parameters for listing sweets.
// Name and Category are case-insensitive substring matches; the price
// bounds are inclusive.
type SweetFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// SweetFieldUpdate describes a partial update. Nil fields are left untouched.
type SweetFieldUpdate struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int64
}

// SweetRepository defines persistence operations for sweets.
//
// DecrementQuantity and IncrementQuantity are the store-level quantity
// mutations: each is a single conditional update so that concurrent
// purchases can never drive quantity below zero, regardless of interleaving.
type SweetRepository interface {
	Insert(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error)
	// Find returns sweets matching filter, newest first.
	Find(ctx context.Context, filter SweetFilter) ([]*domain.Sweet, error)
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	// UpdateFields applies a partial update and returns the updated document.
	UpdateFields(ctx context.Context, id string, fields SweetFieldUpdate) (*domain.Sweet, error)
	// Delete removes the sweet and returns the removed document.
	Delete(ctx context.Context, id string) (*domain.Sweet, error)
	// DecrementQuantity atomically decrements quantity by n, guarded by
	// quantity >= n. Fails with domain.ErrInsufficientStock when the guard
	// does not hold, leaving the document unchanged.
	DecrementQuantity(ctx context.Context, id string, n int64) (*domain.Sweet, error)
	// IncrementQuantity atomically increments quantity by n.
	IncrementQuantity(ctx context.Context, id string, n int64) (*domain.Sweet, error)
}
