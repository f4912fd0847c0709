package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/coffeemarket/pkg/errhttp"
	"github.com/ghuser/coffeemarket/pkg/httpx"
	appsvcs "github.com/ghuser/coffeemarket/services/coffee/application/services"
	coffeedomain "github.com/ghuser/coffeemarket/services/coffee/domain"
)

// GetCoffeeByNameHandler handles GET /coffees/by-name/{name} requests.
type GetCoffeeByNameHandler struct {
	svc *appsvcs.Services
}

// NewGetCoffeeByNameHandler returns a GetCoffeeByNameHandler backed by the given services.
func NewGetCoffeeByNameHandler(svc *appsvcs.Services) *GetCoffeeByNameHandler {
	return &GetCoffeeByNameHandler{svc: svc}
}

// Execute retrieves a coffee by exact name.
//
//	@Summary		Get coffee by name
//	@Description	Retrieves the coffee whose name matches exactly
//	@Tags			coffees
//	@Produce		json
//	@Param			name	path		string	true	"Coffee name"
//	@Success		200		{object}	CoffeeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/coffees/by-name/{name} [get]
func (h *GetCoffeeByNameHandler) Execute(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		errhttp.WriteError(w, fmt.Errorf("%w: malformed name", coffeedomain.ErrInvalidCoffee))
		return
	}

	coffee, err := h.svc.Coffee.FindByName(r.Context(), name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCoffeeResponse(coffee))
}
