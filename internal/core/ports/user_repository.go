package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// UserRepository defines the interface for user authentication persistence.
// Passwords cross this boundary already hashed; plaintext never reaches the store.
type UserRepository interface {
	// Create persists a new user. A duplicate email (case-insensitive)
	// fails with domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
