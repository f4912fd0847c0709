package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/coffeemarket/services/coffee/domain/models"
	"github.com/ghuser/coffeemarket/services/coffee/domain/repositories"
	domainsvcs "github.com/ghuser/coffeemarket/services/coffee/domain/services"
)

// RecommendationService exposes the dual-store recommendation resolver to the
// HTTP layer.
type RecommendationService struct {
	resolver *domainsvcs.Recommender
}

// NewRecommendationService wires a Recommender over the primary store and the
// Redis read store.
func NewRecommendationService(primary, secondary repositories.CoffeeStore) *RecommendationService {
	return &RecommendationService{
		resolver: domainsvcs.NewRecommender(primary, secondary),
	}
}

// RecommendForUser returns coffees recommended for the given user.
func (s *RecommendationService) RecommendForUser(ctx context.Context, userID uuid.UUID, filters domainsvcs.RecommendationFilters) ([]*models.Coffee, error) {
	return s.resolver.RecommendForUser(ctx, userID, filters)
}

// FindSimilar returns coffees similar to the given reference coffee, merging
// primary results with read-store results when the primary comes up short.
func (s *RecommendationService) FindSimilar(ctx context.Context, coffeeID uuid.UUID, limit int) ([]*models.Coffee, error) {
	return s.resolver.FindSimilarCoffees(ctx, coffeeID, limit)
}
