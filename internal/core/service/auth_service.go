package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sweetshop/inventory-api/internal/api/metrics"
	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

const minPasswordLength = 6

// LoginLimiter abstracts the brute-force guard (Redis). Failed attempts are
// counted per email; past the threshold the account is locked out until the
// counter expires.
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration and login.
type AuthService struct {
	repo    ports.UserRepository
	tokens  ports.TokenService
	limiter LoginLimiter
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, limiter LoginLimiter) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, limiter: limiter}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" || len(in.Password) < minPasswordLength {
		return "", nil, domain.ErrInvalidRegistration
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return "", nil, domain.ErrInvalidRegistration
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	locked, err := s.limiter.TooManyAttempts(ctx, email)
	if err == nil && locked {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown emails count against the limiter too, so the
			// lockout cannot be probed to enumerate accounts.
			_ = s.limiter.RecordFailure(ctx, email)
			metrics.LoginFailuresTotal.Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		_ = s.limiter.RecordFailure(ctx, email)
		metrics.LoginFailuresTotal.Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	_ = s.limiter.Reset(ctx, email)

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// normalizeEmail lowercases and trims an email so uniqueness and lookup are
// case-insensitive without relying on store collation.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
