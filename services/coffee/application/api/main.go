package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/coffeemarket/pkg/app"
	"github.com/ghuser/coffeemarket/services/coffee/application/handlers"
	appsvcs "github.com/ghuser/coffeemarket/services/coffee/application/services"
)

// CoffeeRoutes registers catalog and recommendation endpoints on the provided
// chi router.
func CoffeeRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/coffees", func(r chi.Router) {
			r.Post("/", handlers.NewPostCoffeeHandler(svcs).Execute)
			r.Get("/", handlers.NewListCoffeesHandler(svcs).Execute)
			r.Get("/search", handlers.NewSearchCoffeesHandler(svcs).Execute)
			r.Get("/by-name/{name}", handlers.NewGetCoffeeByNameHandler(svcs).Execute)
			r.Get("/{coffeeId}", handlers.NewGetCoffeeHandler(svcs).Execute)
			r.Patch("/{coffeeId}", handlers.NewPatchCoffeeHandler(svcs).Execute)
			r.Delete("/{coffeeId}", handlers.NewDeleteCoffeeHandler(svcs).Execute)
			r.Post("/{coffeeId}/stock", handlers.NewPostStockHandler(svcs).Execute)
			r.Post("/{coffeeId}/reviews", handlers.NewPostReviewHandler(svcs).Execute)
		})
		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/similar/{coffeeId}", handlers.NewGetSimilarHandler(svcs).Execute)
			r.Get("/{userId}", handlers.NewGetRecommendationsHandler(svcs).Execute)
		})
	})
}
