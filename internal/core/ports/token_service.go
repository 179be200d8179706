package ports

import "github.com/sweetshop/inventory-api/internal/core/domain"

// TokenService issues and verifies signed, time-limited identity tokens.
// Tokens are stateless: verification needs only the signing secret.
type TokenService interface {
	Issue(userID, role string) (string, error)
	// Verify fails with domain.ErrInvalidToken on a bad signature,
	// malformed input, or an expired token.
	Verify(token string) (*domain.TokenClaims, error)
}
