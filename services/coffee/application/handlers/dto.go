package handlers

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	coffeedomain "github.com/ghuser/coffeemarket/services/coffee/domain"
	"github.com/ghuser/coffeemarket/services/coffee/domain/models"
)

// SensoryProfileDTO carries the five sensory dimensions, each scored 1-5.
type SensoryProfileDTO struct {
	Acidity    int `json:"acidity"    validate:"required,gte=1,lte=5" example:"4"`
	Body       int `json:"body"       validate:"required,gte=1,lte=5" example:"3"`
	Sweetness  int `json:"sweetness"  validate:"required,gte=1,lte=5" example:"4"`
	Bitterness int `json:"bitterness" validate:"required,gte=1,lte=5" example:"2"`
	Aroma      int `json:"aroma"      validate:"required,gte=1,lte=5" example:"5"`
} // @name SensoryProfile

// CoffeeResponse is the wire representation of a coffee listing.
type CoffeeResponse struct {
	ID               uuid.UUID         `json:"id"                example:"123e4567-e89b-12d3-a456-426614174000"`
	Name             string            `json:"name"              example:"Huila Reserve"`
	Description      string            `json:"description"       example:"Bright single-origin lot"`
	Origin           string            `json:"origin"            example:"Colombia"`
	Altitude         *float64          `json:"altitude,omitempty" example:"1750"`
	Price            float64           `json:"price"             example:"14.50"`
	Stock            int               `json:"stock"             example:"20"`
	IsAvailable      bool              `json:"is_available"      example:"true"`
	SellerID         uuid.UUID         `json:"seller_id"         example:"550e8400-e29b-41d4-a716-446655440000"`
	RoastLevel       string            `json:"roast_level"       example:"MEDIUM"`
	BeanType         string            `json:"bean_type"         example:"ARABICA"`
	ProcessingMethod string            `json:"processing_method" example:"WASHED"`
	Profile          SensoryProfileDTO `json:"profile"`
	HarvestDate      *time.Time        `json:"harvest_date,omitempty"`
	RoastDate        *time.Time        `json:"roast_date,omitempty"`
	Images           []string          `json:"images"`
	Rating           float64           `json:"rating"            example:"4.2"`
	ReviewCount      int               `json:"review_count"      example:"17"`
	CreatedAt        time.Time         `json:"created_at"        example:"2024-01-15T10:30:00Z"`
	UpdatedAt        time.Time         `json:"updated_at"        example:"2024-01-15T10:30:00Z"`
} // @name Coffee

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"coffee not found"`
} // @name ErrorResponse

func toCoffeeResponse(c *models.Coffee) CoffeeResponse {
	s := c.Snapshot()
	return CoffeeResponse{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		Origin:           s.Origin,
		Altitude:         s.Altitude,
		Price:            s.Price,
		Stock:            s.Stock,
		IsAvailable:      s.IsAvailable,
		SellerID:         s.SellerID,
		RoastLevel:       s.RoastLevel.String(),
		BeanType:         s.BeanType.String(),
		ProcessingMethod: s.ProcessingMethod.String(),
		Profile: SensoryProfileDTO{
			Acidity:    s.Profile.Acidity,
			Body:       s.Profile.Body,
			Sweetness:  s.Profile.Sweetness,
			Bitterness: s.Profile.Bitterness,
			Aroma:      s.Profile.Aroma,
		},
		HarvestDate: s.HarvestDate,
		RoastDate:   s.RoastDate,
		Images:      s.Images,
		Rating:      s.Rating,
		ReviewCount: s.ReviewCount,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toCoffeeResponses(coffees []*models.Coffee) []CoffeeResponse {
	out := make([]CoffeeResponse, len(coffees))
	for i, c := range coffees {
		out[i] = toCoffeeResponse(c)
	}
	return out
}

// parseIDParam parses a UUID path parameter, returning ErrInvalidCoffee on
// malformed input so errhttp maps it to a 400.
func parseIDParam(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed id %q", coffeedomain.ErrInvalidCoffee, raw)
	}
	return id, nil
}
