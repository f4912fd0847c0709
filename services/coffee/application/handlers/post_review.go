package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/coffeemarket/pkg/errhttp"
	"github.com/ghuser/coffeemarket/pkg/httpx"
	pkgvalidator "github.com/ghuser/coffeemarket/pkg/validator"
	appsvcs "github.com/ghuser/coffeemarket/services/coffee/application/services"
)

// AddReviewRequest is the request body for POST /coffees/{coffeeId}/reviews.
type AddReviewRequest struct {
	Rating int `json:"rating" validate:"required,gte=1,lte=5" example:"4"`
} // @name AddReviewRequest

// PostReviewHandler handles POST /coffees/{coffeeId}/reviews requests.
type PostReviewHandler struct {
	svc *appsvcs.Services
}

// NewPostReviewHandler returns a PostReviewHandler backed by the given services.
func NewPostReviewHandler(svc *appsvcs.Services) *PostReviewHandler {
	return &PostReviewHandler{svc: svc}
}

// Execute folds a review rating into the coffee's running average.
//
//	@Summary		Add review
//	@Description	Adds a 1-5 rating to the coffee's running average, kept to one decimal place
//	@Tags			coffees
//	@Accept			json
//	@Produce		json
//	@Param			coffeeId	path		string				true	"Coffee ID"
//	@Param			request		body		AddReviewRequest	true	"Review rating"
//	@Success		200			{object}	CoffeeResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/coffees/{coffeeId}/reviews [post]
func (h *PostReviewHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "coffeeId"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AddReviewRequest](w, r)
	if !ok {
		return
	}

	coffee, err := h.svc.Coffee.AddReview(r.Context(), id, req.Rating)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCoffeeResponse(coffee))
}
