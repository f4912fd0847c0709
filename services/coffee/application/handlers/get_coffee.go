package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/coffeemarket/pkg/errhttp"
	"github.com/ghuser/coffeemarket/pkg/httpx"
	appsvcs "github.com/ghuser/coffeemarket/services/coffee/application/services"
)

// GetCoffeeHandler handles GET /coffees/{coffeeId} requests.
type GetCoffeeHandler struct {
	svc *appsvcs.Services
}

// NewGetCoffeeHandler returns a GetCoffeeHandler backed by the given services.
func NewGetCoffeeHandler(svc *appsvcs.Services) *GetCoffeeHandler {
	return &GetCoffeeHandler{svc: svc}
}

// Execute retrieves a single coffee by ID.
//
//	@Summary		Get coffee
//	@Description	Retrieves a coffee listing by ID
//	@Tags			coffees
//	@Produce		json
//	@Param			coffeeId	path		string	true	"Coffee ID"
//	@Success		200			{object}	CoffeeResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/coffees/{coffeeId} [get]
func (h *GetCoffeeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "coffeeId"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	coffee, err := h.svc.Coffee.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCoffeeResponse(coffee))
}
