// Package services contains stateless domain services for the coffee bounded
// context. The Recommender composes the two CoffeeStore implementations and
// holds no mutable state, so a single instance is safe for concurrent use.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/ghuser/coffeemarket/services/coffee/domain"
	"github.com/ghuser/coffeemarket/services/coffee/domain/models"
	"github.com/ghuser/coffeemarket/services/coffee/domain/repositories"
)

// DefaultRecommendationLimit is the result budget used by every
// recommendation entry point when the caller does not supply one.
const DefaultRecommendationLimit = 5

// RecommendationFilters are the query refinements accepted by
// RecommendForUser. They are parsed at the HTTP boundary and carried here,
// but are not yet applied to the resolution queries; the intended filter
// semantics need product clarification before they can be wired in.
type RecommendationFilters struct {
	FlavorProfile string
	Acidity       *int
	Body          *int
}

// Recommender resolves "similar to X" and "recommended for user Y" queries
// across a primary store (source of truth) and a secondary store (cache /
// read replica), in that fixed priority order.
//
// Store calls are sequential: the secondary call's budget depends on how
// many results the primary returned.
type Recommender struct {
	primary   repositories.CoffeeStore
	secondary repositories.CoffeeStore
}

// NewRecommender returns a Recommender over the given primary and secondary
// stores.
func NewRecommender(primary, secondary repositories.CoffeeStore) *Recommender {
	return &Recommender{primary: primary, secondary: secondary}
}

// RecommendForUser returns personalized recommendations for a user.
//
// The user's seller history in the primary store serves as the preference
// anchor: when the user has listed coffees, recommendations are the coffees
// similar to their first listing. Without an anchor the resolver falls back
// to the secondary store's top-rated list, avoiding a cold-start failure.
func (r *Recommender) RecommendForUser(ctx context.Context, userID uuid.UUID, _ RecommendationFilters) ([]*models.Coffee, error) {
	anchors, err := r.primary.FindBySellerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: load preference anchor: %w", domain.ErrRecommendationFailed, err)
	}

	if len(anchors) > 0 {
		similar, err := r.primary.FindSimilar(ctx, anchors[0].ID, DefaultRecommendationLimit)
		if err != nil {
			return nil, fmt.Errorf("%w: find similar to anchor: %w", domain.ErrRecommendationFailed, err)
		}
		return similar, nil
	}

	top, err := r.secondary.FindTopRated(ctx, DefaultRecommendationLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: top-rated fallback: %w", domain.ErrRecommendationFailed, err)
	}
	return top, nil
}

// FindSimilarCoffees returns up to limit coffees similar to the reference,
// querying the primary store first and topping up from the secondary store
// only when the primary leaves budget unspent. Primary matches always
// precede secondary matches; within each source the store's own order is
// kept.
//
// Results are not deduplicated across sources: when the two stores are not
// perfectly partitioned the same coffee can appear once per source. This is
// an accepted property of the merge, not a defect to be fixed silently.
//
// A store failure aborts resolution and is wrapped in
// ErrRecommendationFailed — a primary-store error is never masked by falling
// back to the secondary. Only the intentional no-results shortfall triggers
// the secondary query.
func (r *Recommender) FindSimilarCoffees(ctx context.Context, coffeeID uuid.UUID, limit int) ([]*models.Coffee, error) {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	results, err := r.primary.FindSimilar(ctx, coffeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: find similar in primary store: %w", domain.ErrRecommendationFailed, err)
	}

	if len(results) >= limit {
		return results, nil
	}

	supplement, err := r.secondary.FindSimilar(ctx, coffeeID, limit-len(results))
	if err != nil {
		return nil, fmt.Errorf("%w: find similar in secondary store: %w", domain.ErrRecommendationFailed, err)
	}

	return append(results, supplement...), nil
}
