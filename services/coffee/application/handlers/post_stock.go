package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/coffeemarket/pkg/errhttp"
	"github.com/ghuser/coffeemarket/pkg/httpx"
	pkgvalidator "github.com/ghuser/coffeemarket/pkg/validator"
	appsvcs "github.com/ghuser/coffeemarket/services/coffee/application/services"
)

// AdjustStockRequest is the request body for POST /coffees/{coffeeId}/stock.
// Delta is relative: positive restocks, negative records a sale.
type AdjustStockRequest struct {
	Delta *int `json:"delta" validate:"required" example:"-2"`
} // @name AdjustStockRequest

// PostStockHandler handles POST /coffees/{coffeeId}/stock requests.
type PostStockHandler struct {
	svc *appsvcs.Services
}

// NewPostStockHandler returns a PostStockHandler backed by the given services.
func NewPostStockHandler(svc *appsvcs.Services) *PostStockHandler {
	return &PostStockHandler{svc: svc}
}

// Execute applies a relative stock adjustment.
//
//	@Summary		Adjust stock
//	@Description	Applies a relative stock change; rejects adjustments that would drive stock negative
//	@Tags			coffees
//	@Accept			json
//	@Produce		json
//	@Param			coffeeId	path		string				true	"Coffee ID"
//	@Param			request		body		AdjustStockRequest	true	"Stock adjustment"
//	@Success		200			{object}	CoffeeResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/coffees/{coffeeId}/stock [post]
func (h *PostStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "coffeeId"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AdjustStockRequest](w, r)
	if !ok {
		return
	}

	coffee, err := h.svc.Coffee.AdjustStock(r.Context(), id, *req.Delta)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCoffeeResponse(coffee))
}
