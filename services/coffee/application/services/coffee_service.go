package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/coffeemarket/pkg/logger"
	coffeedomain "github.com/ghuser/coffeemarket/services/coffee/domain"
	"github.com/ghuser/coffeemarket/services/coffee/domain/models"
	"github.com/ghuser/coffeemarket/services/coffee/domain/repositories"
)

// CoffeeService orchestrates the coffee catalog. Writes go to the primary
// store, which publishes lifecycle events through the outbox; the projection
// worker applies those events to the read store. Single-record reads are
// served read-through from the read store with a primary fallback.
type CoffeeService struct {
	primary   repositories.CoffeeStore
	readStore repositories.CoffeeStore
	log       logger.Logger
}

// NewCoffeeService returns a CoffeeService wired with the given stores.
// readStore may be nil, in which case all reads hit the primary store.
func NewCoffeeService(primary, readStore repositories.CoffeeStore, log logger.Logger) *CoffeeService {
	return &CoffeeService{primary: primary, readStore: readStore, log: log}
}

// Create validates and persists a new coffee listing.
func (s *CoffeeService) Create(ctx context.Context, params models.NewCoffeeParams) (*models.Coffee, error) {
	coffee, err := models.NewCoffee(params)
	if err != nil {
		return nil, err
	}
	if err := s.primary.Create(ctx, coffee); err != nil {
		return nil, fmt.Errorf("create coffee: %w", err)
	}
	return coffee, nil
}

// GetByID retrieves a coffee read-through:
//  1. Check the Redis read store first.
//  2. On a miss or read-store error, query the primary store.
//
// A read-store miss is expected for records the projection has not caught up
// with yet; only unexpected errors are logged.
func (s *CoffeeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Coffee, error) {
	if s.readStore != nil {
		coffee, err := s.readStore.GetByID(ctx, id)
		if err == nil {
			return coffee, nil
		}
		if !errors.Is(err, coffeedomain.ErrCoffeeNotFound) {
			s.log.WarnContext(ctx, "read store lookup failed, falling back to primary",
				"coffee_id", id, "error", err)
		}
	}

	coffee, err := s.primary.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get coffee: %w", err)
	}
	return coffee, nil
}

// ListAll returns the full catalog from the primary store.
func (s *CoffeeService) ListAll(ctx context.Context) ([]*models.Coffee, error) {
	coffees, err := s.primary.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coffees: %w", err)
	}
	return coffees, nil
}

// Search returns the coffees matching the conjunction of all provided filters.
func (s *CoffeeService) Search(ctx context.Context, filters repositories.SearchFilters) ([]*models.Coffee, error) {
	coffees, err := s.primary.Search(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("search coffees: %w", err)
	}
	return coffees, nil
}

// FindByName retrieves the coffee whose name matches exactly.
func (s *CoffeeService) FindByName(ctx context.Context, name string) (*models.Coffee, error) {
	coffee, err := s.primary.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find coffee by name: %w", err)
	}
	return coffee, nil
}

// FindBySellerID retrieves every coffee listed by the given seller.
func (s *CoffeeService) FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*models.Coffee, error) {
	coffees, err := s.primary.FindBySellerID(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list seller coffees: %w", err)
	}
	return coffees, nil
}

// Update applies a partial update to a coffee. The read store catches up via
// the coffee.updated event.
func (s *CoffeeService) Update(ctx context.Context, id uuid.UUID, patch models.CoffeePatch) (*models.Coffee, error) {
	if patch.IsZero() {
		return nil, fmt.Errorf("%w: empty update", coffeedomain.ErrInvalidCoffee)
	}
	coffee, err := s.primary.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update coffee: %w", err)
	}
	return coffee, nil
}

// Delete removes a coffee from the primary store and best-effort evicts it
// from the read store so stale copies do not linger until the deletion event
// is projected.
func (s *CoffeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.primary.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete coffee: %w", err)
	}
	if s.readStore != nil {
		if err := s.readStore.Delete(ctx, id); err != nil {
			s.log.WarnContext(ctx, "read store eviction failed", "coffee_id", id, "error", err)
		}
	}
	return nil
}

// AdjustStock applies a relative stock change on the primary store.
func (s *CoffeeService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*models.Coffee, error) {
	coffee, err := s.primary.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	return coffee, nil
}

// reviewRecorder is implemented by stores that can fold a review into the
// stored aggregate under a lock.
type reviewRecorder interface {
	RecordReview(ctx context.Context, id uuid.UUID, rating int) (*models.Coffee, error)
}

// AddReview folds a review rating into the coffee's running average and
// persists the result. When the primary store implements reviewRecorder the
// review is applied atomically; otherwise the service falls back to
// get-modify-upsert, which can lose an increment under concurrent reviews.
func (s *CoffeeService) AddReview(ctx context.Context, id uuid.UUID, rating int) (*models.Coffee, error) {
	if recorder, ok := s.primary.(reviewRecorder); ok {
		return recorder.RecordReview(ctx, id, rating)
	}

	coffee, err := s.primary.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get coffee: %w", err)
	}
	if err := coffee.AddReview(rating); err != nil {
		return nil, err
	}
	if err := s.primary.Upsert(ctx, coffee); err != nil {
		return nil, fmt.Errorf("store review: %w", err)
	}
	return coffee, nil
}
