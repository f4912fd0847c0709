package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/coffeemarket/pkg/errhttp"
	"github.com/ghuser/coffeemarket/pkg/httpx"
	pkgvalidator "github.com/ghuser/coffeemarket/pkg/validator"
	appsvcs "github.com/ghuser/coffeemarket/services/coffee/application/services"
	coffeedomain "github.com/ghuser/coffeemarket/services/coffee/domain"
	"github.com/ghuser/coffeemarket/services/coffee/domain/models"
)

// CreateCoffeeRequest is the request body for POST /coffees.
type CreateCoffeeRequest struct {
	Name             string            `json:"name"              validate:"required,min=3,max=255" example:"Huila Reserve"`
	Description      string            `json:"description"       validate:"max=2000"`
	Origin           string            `json:"origin"            validate:"required,max=255" example:"Colombia"`
	Altitude         *float64          `json:"altitude"          validate:"omitempty,gte=0" example:"1750"`
	Price            float64           `json:"price"             validate:"required,gt=0" example:"14.50"`
	Stock            int               `json:"stock"             validate:"gte=0" example:"20"`
	SellerID         uuid.UUID         `json:"seller_id"         validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	RoastLevel       string            `json:"roast_level"       validate:"required" example:"MEDIUM"`
	BeanType         string            `json:"bean_type"         validate:"required" example:"ARABICA"`
	ProcessingMethod string            `json:"processing_method" validate:"required" example:"WASHED"`
	Profile          SensoryProfileDTO `json:"profile"           validate:"required"`
	HarvestDate      *time.Time        `json:"harvest_date"`
	RoastDate        *time.Time        `json:"roast_date"`
	Images           []string          `json:"images"            validate:"omitempty,dive,max=2048"`
} // @name CreateCoffeeRequest

// PostCoffeeHandler handles POST /coffees requests.
type PostCoffeeHandler struct {
	svc *appsvcs.Services
}

// NewPostCoffeeHandler returns a PostCoffeeHandler backed by the given services.
func NewPostCoffeeHandler(svc *appsvcs.Services) *PostCoffeeHandler {
	return &PostCoffeeHandler{svc: svc}
}

// Execute creates a new coffee listing.
//
//	@Summary		Create coffee
//	@Description	Creates a new coffee listing in the catalog
//	@Tags			coffees
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateCoffeeRequest	true	"Coffee creation request"
//	@Success		201		{object}	CoffeeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/coffees [post]
func (h *PostCoffeeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateCoffeeRequest](w, r)
	if !ok {
		return
	}

	roast, err := models.ParseRoastLevel(req.RoastLevel)
	if err != nil {
		errhttp.WriteError(w, fmt.Errorf("%w: %w", coffeedomain.ErrInvalidCoffee, err))
		return
	}
	bean, err := models.ParseBeanType(req.BeanType)
	if err != nil {
		errhttp.WriteError(w, fmt.Errorf("%w: %w", coffeedomain.ErrInvalidCoffee, err))
		return
	}
	method, err := models.ParseProcessingMethod(req.ProcessingMethod)
	if err != nil {
		errhttp.WriteError(w, fmt.Errorf("%w: %w", coffeedomain.ErrInvalidCoffee, err))
		return
	}

	coffee, err := h.svc.Coffee.Create(r.Context(), models.NewCoffeeParams{
		Name:             req.Name,
		Description:      req.Description,
		Origin:           req.Origin,
		Altitude:         req.Altitude,
		Price:            req.Price,
		Stock:            req.Stock,
		SellerID:         req.SellerID,
		RoastLevel:       roast,
		BeanType:         bean,
		ProcessingMethod: method,
		Profile: models.SensoryProfile{
			Acidity:    req.Profile.Acidity,
			Body:       req.Profile.Body,
			Sweetness:  req.Profile.Sweetness,
			Bitterness: req.Profile.Bitterness,
			Aroma:      req.Profile.Aroma,
		},
		HarvestDate: req.HarvestDate,
		RoastDate:   req.RoastDate,
		Images:      req.Images,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toCoffeeResponse(coffee))
}
