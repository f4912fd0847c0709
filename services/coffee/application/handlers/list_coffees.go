package handlers

import (
	"net/http"

	"github.com/ghuser/coffeemarket/pkg/errhttp"
	"github.com/ghuser/coffeemarket/pkg/httpx"
	appsvcs "github.com/ghuser/coffeemarket/services/coffee/application/services"
)

// ListCoffeesHandler handles GET /coffees requests.
type ListCoffeesHandler struct {
	svc *appsvcs.Services
}

// NewListCoffeesHandler returns a ListCoffeesHandler backed by the given services.
func NewListCoffeesHandler(svc *appsvcs.Services) *ListCoffeesHandler {
	return &ListCoffeesHandler{svc: svc}
}

// Execute lists the full coffee catalog.
//
//	@Summary		List coffees
//	@Description	Lists every coffee in the catalog, newest first
//	@Tags			coffees
//	@Produce		json
//	@Success		200	{array}		CoffeeResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/coffees [get]
func (h *ListCoffeesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	coffees, err := h.svc.Coffee.ListAll(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toCoffeeResponses(coffees))
}
