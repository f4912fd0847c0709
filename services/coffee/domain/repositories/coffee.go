package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/coffeemarket/services/coffee/domain/models"
)

// SearchFilters narrows a catalog search. Nil fields are not applied; the
// provided fields are combined as a conjunction with no implicit defaults.
type SearchFilters struct {
	RoastLevel  *models.RoastLevel
	BeanType    *models.BeanType
	Origin      *string
	MinPrice    *float64
	MaxPrice    *float64
	MinRating   *float64
	SellerID    *uuid.UUID
	IsAvailable *bool
}

// CoffeeStore is the persistence capability for the Coffee aggregate,
// implemented by both the primary PostgreSQL repository and the secondary
// Redis read store. The domain layer owns this interface; infrastructure
// implements it. Read semantics are identical across implementations; the
// read store rejects stock mutation with ErrReadOnlyStore.
type CoffeeStore interface {
	// GetByID returns the coffee with the given ID, or ErrCoffeeNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Coffee, error)

	// ListAll returns every stored coffee.
	ListAll(ctx context.Context) ([]*models.Coffee, error)

	// Create persists a new coffee. Returns ErrCoffeeAlreadyExists on
	// unique-constraint violations.
	Create(ctx context.Context, coffee *models.Coffee) error

	// Update applies a partial update to the stored coffee and returns the
	// updated record, or ErrCoffeeNotFound if the ID is absent.
	Update(ctx context.Context, id uuid.UUID, patch models.CoffeePatch) (*models.Coffee, error)

	// Delete removes a coffee. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// Upsert creates the coffee or replaces the stored copy wholesale.
	Upsert(ctx context.Context, coffee *models.Coffee) error

	// FindByName returns the coffee whose name matches exactly, or
	// ErrCoffeeNotFound.
	FindByName(ctx context.Context, name string) (*models.Coffee, error)

	// Search returns the coffees matching the conjunction of all provided
	// filters.
	Search(ctx context.Context, filters SearchFilters) ([]*models.Coffee, error)

	// FindBySellerID returns every coffee listed by the given seller.
	FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*models.Coffee, error)

	// AdjustStock applies a relative stock change and returns the updated
	// record. Fails with ErrCoffeeNotFound if the ID is absent,
	// ErrInsufficientStock if stock would go negative, and ErrReadOnlyStore
	// on the read store.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*models.Coffee, error)

	// FindTopRated returns up to limit coffees ordered by rating descending.
	FindTopRated(ctx context.Context, limit int) ([]*models.Coffee, error)

	// FindSimilar returns up to limit coffees sharing the reference's roast
	// level and bean type, excluding the reference itself. An absent
	// reference yields an empty list, not an error; ErrCoffeeNotFound is
	// reserved for direct lookups.
	FindSimilar(ctx context.Context, id uuid.UUID, limit int) ([]*models.Coffee, error)
}
