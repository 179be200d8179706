package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-api/internal/api/metrics"
	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

// SweetService implements the inventory use cases. Quantity mutations are
// delegated to the repository's conditional updates so the quantity >= 0
// invariant holds under concurrent purchases.
type SweetService struct {
	repo   ports.SweetRepository
	logger zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, logger zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, logger: logger}
}

func (s *SweetService) Create(ctx context.Context, in ports.CreateSweetInput) (*domain.Sweet, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || category == "" || in.Price < 0 || in.Quantity < 0 {
		return nil, domain.ErrInvalidSweet
	}

	sweet := &domain.Sweet{
		Name:      name,
		Category:  category,
		Price:     in.Price,
		Quantity:  in.Quantity,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, sweet)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create sweet")
		return nil, err
	}

	metrics.SweetsCreatedTotal.WithLabelValues(category).Inc()
	s.logger.Info().Str("sweet_id", created.ID).Str("name", name).Msg("sweet created")
	return created, nil
}

func (s *SweetService) List(ctx context.Context, filter ports.SweetFilter) ([]*domain.Sweet, error) {
	return s.repo.Find(ctx, filter)
}

func (s *SweetService) Get(ctx context.Context, id string) (*domain.Sweet, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SweetService) Update(ctx context.Context, id string, in ports.UpdateSweetInput) (*domain.Sweet, error) {
	fields := ports.SweetFieldUpdate{}
	touched := false

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidSweet
		}
		fields.Name = &name
		touched = true
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			return nil, domain.ErrInvalidSweet
		}
		fields.Category = &category
		touched = true
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, domain.ErrInvalidSweet
		}
		fields.Price = in.Price
		touched = true
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidSweet
		}
		fields.Quantity = in.Quantity
		touched = true
	}

	if !touched {
		return nil, domain.ErrInvalidSweet
	}

	updated, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sweet_id", id).Msg("sweet updated")
	return updated, nil
}

func (s *SweetService) Delete(ctx context.Context, id string) (*domain.Sweet, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sweet_id", id).Str("name", removed.Name).Msg("sweet deleted")
	return removed, nil
}

// Purchase decrements quantity by qty. The decrement happens as a single
// conditional update at the store, never as a read-modify-write pair, so a
// losing concurrent purchase fails with ErrInsufficientStock instead of
// overselling.
func (s *SweetService) Purchase(ctx context.Context, id string, qty int64) (*domain.Sweet, error) {
	if qty < 1 {
		return nil, domain.ErrInvalidSweet
	}

	sweet, err := s.repo.DecrementQuantity(ctx, id, qty)
	if err != nil {
		switch err {
		case domain.ErrInsufficientStock:
			metrics.PurchaseRejectionsTotal.WithLabelValues("insufficient_stock").Inc()
		case domain.ErrSweetNotFound:
			metrics.PurchaseRejectionsTotal.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}

	metrics.PurchasesTotal.Inc()
	s.logger.Info().Str("sweet_id", id).Int64("quantity", qty).Int64("remaining", sweet.Quantity).Msg("purchase completed")
	return sweet, nil
}

// Restock increments quantity by qty. No upper bound on quantity on hand.
func (s *SweetService) Restock(ctx context.Context, id string, qty int64) (*domain.Sweet, error) {
	if qty < 1 {
		return nil, domain.ErrInvalidSweet
	}

	sweet, err := s.repo.IncrementQuantity(ctx, id, qty)
	if err != nil {
		return nil, err
	}

	metrics.RestocksTotal.Inc()
	s.logger.Info().Str("sweet_id", id).Int64("quantity", qty).Int64("on_hand", sweet.Quantity).Msg("restock completed")
	return sweet, nil
}
