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
	domainsvcs "github.com/ghuser/coffeemarket/services/coffee/domain/services"
)

// GetRecommendationsHandler handles GET /recommendations/{userId} requests.
type GetRecommendationsHandler struct {
	svc *appsvcs.Services
}

// NewGetRecommendationsHandler returns a GetRecommendationsHandler backed by the given services.
func NewGetRecommendationsHandler(svc *appsvcs.Services) *GetRecommendationsHandler {
	return &GetRecommendationsHandler{svc: svc}
}

// Execute resolves personalized recommendations for a user.
//
//	@Summary		Recommend coffees
//	@Description	Recommends coffees based on the user's own listings, falling back to top-rated coffees for users without listings
//	@Tags			recommendations
//	@Produce		json
//	@Param			userId			path		string	true	"User ID"
//	@Param			flavorProfile	query		string	false	"Preferred flavor profile"
//	@Param			acidity			query		integer	false	"Preferred acidity (1-5)"
//	@Param			body			query		integer	false	"Preferred body (1-5)"
//	@Success		200				{array}		CoffeeResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/recommendations/{userId} [get]
func (h *GetRecommendationsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(chi.URLParam(r, "userId"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	filters, err := parseRecommendationFilters(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	coffees, err := h.svc.Recommendation.RecommendForUser(r.Context(), userID, filters)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCoffeeResponses(coffees))
}

func parseRecommendationFilters(r *http.Request) (domainsvcs.RecommendationFilters, error) {
	var filters domainsvcs.RecommendationFilters
	q := r.URL.Query()

	filters.FlavorProfile = q.Get("flavorProfile")
	if v := q.Get("acidity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 5 {
			return filters, fmt.Errorf("%w: malformed acidity %q", coffeedomain.ErrInvalidCoffee, v)
		}
		filters.Acidity = &n
	}
	if v := q.Get("body"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 5 {
			return filters, fmt.Errorf("%w: malformed body %q", coffeedomain.ErrInvalidCoffee, v)
		}
		filters.Body = &n
	}

	return filters, nil
}
