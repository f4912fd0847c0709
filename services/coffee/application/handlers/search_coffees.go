package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ghuser/coffeemarket/pkg/errhttp"
	"github.com/ghuser/coffeemarket/pkg/httpx"
	appsvcs "github.com/ghuser/coffeemarket/services/coffee/application/services"
	coffeedomain "github.com/ghuser/coffeemarket/services/coffee/domain"
	"github.com/ghuser/coffeemarket/services/coffee/domain/models"
	"github.com/ghuser/coffeemarket/services/coffee/domain/repositories"
)

// SearchCoffeesHandler handles GET /coffees/search requests.
type SearchCoffeesHandler struct {
	svc *appsvcs.Services
}

// NewSearchCoffeesHandler returns a SearchCoffeesHandler backed by the given services.
func NewSearchCoffeesHandler(svc *appsvcs.Services) *SearchCoffeesHandler {
	return &SearchCoffeesHandler{svc: svc}
}

// Execute searches the catalog with the conjunction of all provided filters.
//
//	@Summary		Search coffees
//	@Description	Searches the catalog; unset filters are not applied
//	@Tags			coffees
//	@Produce		json
//	@Param			roast_level		query		string	false	"Roast level"	Enums(LIGHT, MEDIUM, MEDIUM_DARK, DARK)
//	@Param			bean_type		query		string	false	"Bean type"		Enums(ARABICA, ROBUSTA, BLEND)
//	@Param			origin			query		string	false	"Origin country"
//	@Param			min_price		query		number	false	"Minimum price"
//	@Param			max_price		query		number	false	"Maximum price"
//	@Param			min_rating		query		number	false	"Minimum rating"
//	@Param			seller_id		query		string	false	"Seller ID"
//	@Param			is_available	query		boolean	false	"In stock only"
//	@Success		200				{array}		CoffeeResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/coffees/search [get]
func (h *SearchCoffeesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	filters, err := parseSearchFilters(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	coffees, err := h.svc.Coffee.Search(r.Context(), filters)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCoffeeResponses(coffees))
}

func parseSearchFilters(r *http.Request) (repositories.SearchFilters, error) {
	var filters repositories.SearchFilters
	q := r.URL.Query()

	if v := q.Get("roast_level"); v != "" {
		roast, err := models.ParseRoastLevel(v)
		if err != nil {
			return filters, fmt.Errorf("%w: %w", coffeedomain.ErrInvalidCoffee, err)
		}
		filters.RoastLevel = &roast
	}
	if v := q.Get("bean_type"); v != "" {
		bean, err := models.ParseBeanType(v)
		if err != nil {
			return filters, fmt.Errorf("%w: %w", coffeedomain.ErrInvalidCoffee, err)
		}
		filters.BeanType = &bean
	}
	if v := q.Get("origin"); v != "" {
		filters.Origin = &v
	}
	if v := q.Get("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, fmt.Errorf("%w: malformed min_price %q", coffeedomain.ErrInvalidCoffee, v)
		}
		filters.MinPrice = &f
	}
	if v := q.Get("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, fmt.Errorf("%w: malformed max_price %q", coffeedomain.ErrInvalidCoffee, v)
		}
		filters.MaxPrice = &f
	}
	if v := q.Get("min_rating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 5 {
			return filters, fmt.Errorf("%w: malformed min_rating %q", coffeedomain.ErrInvalidCoffee, v)
		}
		filters.MinRating = &f
	}
	if v := q.Get("seller_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filters, fmt.Errorf("%w: malformed seller_id %q", coffeedomain.ErrInvalidCoffee, v)
		}
		filters.SellerID = &id
	}
	if v := q.Get("is_available"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filters, fmt.Errorf("%w: malformed is_available %q", coffeedomain.ErrInvalidCoffee, v)
		}
		filters.IsAvailable = &b
	}

	return filters, nil
}
