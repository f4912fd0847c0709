package services

import (
	"github.com/ghuser/coffeemarket/pkg/app"
	"github.com/ghuser/coffeemarket/services/coffee/infrastructure/persistence/postgres"
	redisstore "github.com/ghuser/coffeemarket/services/coffee/infrastructure/persistence/redis"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Coffee         *CoffeeService
	Recommendation *RecommendationService
}

// New wires all coffee application services with infrastructure from the
// Application container. PostgreSQL is the primary store; the Redis read store
// serves lookups and recommendation fallbacks.
func New(a *app.Application) *Services {
	primary := postgres.NewCoffeeRepository(a.Db, a.EventBus)
	readStore := redisstore.NewCoffeeReadStore(a.Redis)
	return &Services{
		Coffee:         NewCoffeeService(primary, readStore, a.Logger),
		Recommendation: NewRecommendationService(primary, readStore),
	}
}
