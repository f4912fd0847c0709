package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/coffeemarket/pkg/errhttp"
	appsvcs "github.com/ghuser/coffeemarket/services/coffee/application/services"
)

// DeleteCoffeeHandler handles DELETE /coffees/{coffeeId} requests.
type DeleteCoffeeHandler struct {
	svc *appsvcs.Services
}

// NewDeleteCoffeeHandler returns a DeleteCoffeeHandler backed by the given services.
func NewDeleteCoffeeHandler(svc *appsvcs.Services) *DeleteCoffeeHandler {
	return &DeleteCoffeeHandler{svc: svc}
}

// Execute removes a coffee from the catalog. Deleting an already absent
// coffee succeeds.
//
//	@Summary		Delete coffee
//	@Description	Removes a coffee listing; deleting an absent ID succeeds
//	@Tags			coffees
//	@Param			coffeeId	path	string	true	"Coffee ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Router			/coffees/{coffeeId} [delete]
func (h *DeleteCoffeeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "coffeeId"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := h.svc.Coffee.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
