package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/coffeemarket/pkg/errhttp"
	"github.com/ghuser/coffeemarket/pkg/httpx"
	appsvcs "github.com/ghuser/coffeemarket/services/coffee/application/services"
	coffeedomain "github.com/ghuser/coffeemarket/services/coffee/domain"
)

// GetSimilarHandler handles GET /recommendations/similar/{coffeeId} requests.
type GetSimilarHandler struct {
	svc *appsvcs.Services
}

// NewGetSimilarHandler returns a GetSimilarHandler backed by the given services.
func NewGetSimilarHandler(svc *appsvcs.Services) *GetSimilarHandler {
	return &GetSimilarHandler{svc: svc}
}

// Execute resolves coffees similar to a reference coffee. An unknown
// reference yields an empty list.
//
//	@Summary		Similar coffees
//	@Description	Finds coffees sharing the reference coffee's roast level and bean type, merging both stores up to the limit
//	@Tags			recommendations
//	@Produce		json
//	@Param			coffeeId	path		string	true	"Reference coffee ID"
//	@Param			limit		query		integer	false	"Maximum results (default 5)"
//	@Success		200			{array}		CoffeeResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/recommendations/similar/{coffeeId} [get]
func (h *GetSimilarHandler) Execute(w http.ResponseWriter, r *http.Request) {
	coffeeID, err := parseIDParam(chi.URLParam(r, "coffeeId"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errhttp.WriteError(w, fmt.Errorf("%w: malformed limit %q", coffeedomain.ErrInvalidCoffee, v))
			return
		}
		limit = n
	}

	coffees, err := h.svc.Recommendation.FindSimilar(r.Context(), coffeeID, limit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCoffeeResponses(coffees))
}
