package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/coffeemarket/pkg/errhttp"
	"github.com/ghuser/coffeemarket/pkg/httpx"
	appsvcs "github.com/ghuser/coffeemarket/services/coffee/application/services"
	coffeedomain "github.com/ghuser/coffeemarket/services/coffee/domain"
	"github.com/ghuser/coffeemarket/services/coffee/domain/models"
)

// UpdateCoffeeRequest is the request body for PATCH /coffees/{coffeeId}.
// Absent fields are left unchanged. Identity fields (id, seller_id) are not
// part of the schema; the decoder rejects them along with any other unknown
// field.
type UpdateCoffeeRequest struct {
	Name             *string            `json:"name" example:"Huila Reserve"`
	Description      *string            `json:"description"`
	Origin           *string            `json:"origin" example:"Colombia"`
	Altitude         *float64           `json:"altitude" example:"1750"`
	Price            *float64           `json:"price" example:"15.00"`
	Stock            *int               `json:"stock" example:"25"`
	RoastLevel       *string            `json:"roast_level" example:"DARK"`
	BeanType         *string            `json:"bean_type" example:"BLEND"`
	ProcessingMethod *string            `json:"processing_method" example:"NATURAL"`
	Profile          *SensoryProfileDTO `json:"profile"`
	HarvestDate      *time.Time         `json:"harvest_date"`
	RoastDate        *time.Time         `json:"roast_date"`
	Images           *[]string          `json:"images"`
} // @name UpdateCoffeeRequest

// PatchCoffeeHandler handles PATCH /coffees/{coffeeId} requests.
type PatchCoffeeHandler struct {
	svc *appsvcs.Services
}

// NewPatchCoffeeHandler returns a PatchCoffeeHandler backed by the given services.
func NewPatchCoffeeHandler(svc *appsvcs.Services) *PatchCoffeeHandler {
	return &PatchCoffeeHandler{svc: svc}
}

// Execute applies a partial update to a coffee.
//
//	@Summary		Update coffee
//	@Description	Applies a partial update; absent fields are left unchanged
//	@Tags			coffees
//	@Accept			json
//	@Produce		json
//	@Param			coffeeId	path		string				true	"Coffee ID"
//	@Param			request		body		UpdateCoffeeRequest	true	"Fields to update"
//	@Success		200			{object}	CoffeeResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/coffees/{coffeeId} [patch]
func (h *PatchCoffeeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "coffeeId"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var req UpdateCoffeeRequest
	if err := dec.Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	patch, err := toPatch(req)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	coffee, err := h.svc.Coffee.Update(r.Context(), id, patch)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCoffeeResponse(coffee))
}

func toPatch(req UpdateCoffeeRequest) (models.CoffeePatch, error) {
	patch := models.CoffeePatch{
		Name:        req.Name,
		Description: req.Description,
		Origin:      req.Origin,
		Altitude:    req.Altitude,
		Price:       req.Price,
		Stock:       req.Stock,
		HarvestDate: req.HarvestDate,
		RoastDate:   req.RoastDate,
		Images:      req.Images,
	}

	if req.RoastLevel != nil {
		roast, err := models.ParseRoastLevel(*req.RoastLevel)
		if err != nil {
			return models.CoffeePatch{}, fmt.Errorf("%w: %w", coffeedomain.ErrInvalidCoffee, err)
		}
		patch.RoastLevel = &roast
	}
	if req.BeanType != nil {
		bean, err := models.ParseBeanType(*req.BeanType)
		if err != nil {
			return models.CoffeePatch{}, fmt.Errorf("%w: %w", coffeedomain.ErrInvalidCoffee, err)
		}
		patch.BeanType = &bean
	}
	if req.ProcessingMethod != nil {
		method, err := models.ParseProcessingMethod(*req.ProcessingMethod)
		if err != nil {
			return models.CoffeePatch{}, fmt.Errorf("%w: %w", coffeedomain.ErrInvalidCoffee, err)
		}
		patch.ProcessingMethod = &method
	}
	if req.Profile != nil {
		patch.Profile = &models.SensoryProfile{
			Acidity:    req.Profile.Acidity,
			Body:       req.Profile.Body,
			Sweetness:  req.Profile.Sweetness,
			Bitterness: req.Profile.Bitterness,
			Aroma:      req.Profile.Aroma,
		}
	}

	return patch, nil
}
