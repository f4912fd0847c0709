package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/coffeemarket/pkg/app"
	"github.com/ghuser/coffeemarket/pkg/auth"
	"github.com/ghuser/coffeemarket/services/auth/application/handlers"
)

// AuthRoutes registers authentication endpoints on the provided chi router.
func AuthRoutes(r chi.Router, a *app.Application) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler().Execute)
		r.Post("/login", handlers.NewLoginHandler(a.SessionStore, a.Logger).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
			r.Get("/me", handlers.NewMeHandler().Execute)
		})
	})
}
