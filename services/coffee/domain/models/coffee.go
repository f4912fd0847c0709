package models

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	domain "github.com/ghuser/coffeemarket/services/coffee/domain"
)

// Coffee is the core aggregate for this bounded context: a sellable coffee
// product with sensory attributes, price, and stock.
//
// ID, SellerID, and CreatedAt never change after construction. UpdatedAt
// advances on every mutation. IsAvailable is derived from Stock and is
// recomputed whenever Stock changes; it is never set directly.
type Coffee struct {
	ID               uuid.UUID
	Name             string
	Description      string
	Origin           string
	Altitude         *float64 // meters above sea level; optional
	Price            float64
	Stock            int
	IsAvailable      bool
	SellerID         uuid.UUID
	RoastLevel       RoastLevel
	BeanType         BeanType
	ProcessingMethod ProcessingMethod
	Profile          SensoryProfile
	HarvestDate      *time.Time
	RoastDate        *time.Time
	Images           []string
	Rating           float64 // running average in [0,5], one decimal place
	ReviewCount      int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewCoffeeParams holds the caller-supplied attributes for NewCoffee.
type NewCoffeeParams struct {
	Name             string
	Description      string
	Origin           string
	Altitude         *float64
	Price            float64
	Stock            int
	SellerID         uuid.UUID
	RoastLevel       RoastLevel
	BeanType         BeanType
	ProcessingMethod ProcessingMethod
	Profile          SensoryProfile
	HarvestDate      *time.Time
	RoastDate        *time.Time
	Images           []string
}

// NewCoffee constructs a valid Coffee aggregate, minting a fresh identity,
// creation and update timestamps, and a zero review aggregate. This is the
// create path; use RehydrateCoffee when loading a persisted record.
func NewCoffee(p NewCoffeeParams) (*Coffee, error) {
	now := time.Now().UTC()
	c := &Coffee{
		ID:               uuid.New(),
		Name:             p.Name,
		Description:      p.Description,
		Origin:           p.Origin,
		Altitude:         p.Altitude,
		Price:            p.Price,
		Stock:            p.Stock,
		IsAvailable:      p.Stock > 0,
		SellerID:         p.SellerID,
		RoastLevel:       p.RoastLevel,
		BeanType:         p.BeanType,
		ProcessingMethod: p.ProcessingMethod,
		Profile:          p.Profile,
		HarvestDate:      p.HarvestDate,
		RoastDate:        p.RoastDate,
		Images:           p.Images,
		Rating:           0,
		ReviewCount:      0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// RehydrateCoffee reconstructs a Coffee from a stored snapshot, preserving
// the original identity, timestamps, and review aggregate instead of minting
// new ones. Invariants are still enforced so a corrupted record cannot enter
// the domain.
func RehydrateCoffee(s CoffeeSnapshot) (*Coffee, error) {
	c := &Coffee{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		Origin:           s.Origin,
		Altitude:         s.Altitude,
		Price:            s.Price,
		Stock:            s.Stock,
		IsAvailable:      s.Stock > 0,
		SellerID:         s.SellerID,
		RoastLevel:       s.RoastLevel,
		BeanType:         s.BeanType,
		ProcessingMethod: s.ProcessingMethod,
		Profile:          s.Profile,
		HarvestDate:      s.HarvestDate,
		RoastDate:        s.RoastDate,
		Images:           s.Images,
		Rating:           s.Rating,
		ReviewCount:      s.ReviewCount,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// AdjustStock applies a relative stock change. Fails with ErrInsufficientStock
// if the adjustment would drive stock negative; availability is recomputed on
// success.
func (c *Coffee) AdjustStock(delta int) error {
	next := c.Stock + delta
	if next < 0 {
		return fmt.Errorf("%w: stock %d, adjustment %d", domain.ErrInsufficientStock, c.Stock, delta)
	}
	c.Stock = next
	c.IsAvailable = next > 0
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// SetPrice replaces the price. The price must be strictly positive.
func (c *Coffee) SetPrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("%w: price must be greater than 0, got %v", domain.ErrInvalidCoffee, price)
	}
	c.Price = price
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// AddReview folds a new review rating into the running average. The average
// is kept to one decimal place: round1((rating*count + new) / (count+1)).
func (c *Coffee) AddReview(rating int) error {
	if rating < MinSensoryScore || rating > MaxSensoryScore {
		return fmt.Errorf("%w: review rating must be between %d and %d, got %d",
			domain.ErrInvalidCoffee, MinSensoryScore, MaxSensoryScore, rating)
	}
	count := c.ReviewCount + 1
	c.Rating = round1((c.Rating*float64(c.ReviewCount) + float64(rating)) / float64(count))
	c.ReviewCount = count
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// CoffeePatch is a partial update: only non-nil fields are applied.
// ID and SellerID are immutable and cannot be expressed in a patch.
type CoffeePatch struct {
	Name             *string
	Description      *string
	Origin           *string
	Altitude         *float64
	Price            *float64
	Stock            *int
	RoastLevel       *RoastLevel
	BeanType         *BeanType
	ProcessingMethod *ProcessingMethod
	Profile          *SensoryProfile
	HarvestDate      *time.Time
	RoastDate        *time.Time
	Images           *[]string
}

// IsZero reports whether the patch carries no fields.
func (p CoffeePatch) IsZero() bool {
	return p == CoffeePatch{}
}

// ApplyPartialUpdate applies the provided patch fields. A price change routes
// through SetPrice, a stock change is converted to a delta and routes through
// AdjustStock, and a sensory profile fully replaces the existing one.
//
// All-or-nothing: the patch is applied to a copy and swapped in only after
// every invariant holds, so a failed update leaves the receiver untouched.
func (c *Coffee) ApplyPartialUpdate(p CoffeePatch) error {
	next := *c

	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.Origin != nil {
		next.Origin = *p.Origin
	}
	if p.Altitude != nil {
		next.Altitude = p.Altitude
	}
	if p.Price != nil {
		if err := next.SetPrice(*p.Price); err != nil {
			return err
		}
	}
	if p.Stock != nil {
		if err := next.AdjustStock(*p.Stock - next.Stock); err != nil {
			return err
		}
	}
	if p.RoastLevel != nil {
		next.RoastLevel = *p.RoastLevel
	}
	if p.BeanType != nil {
		next.BeanType = *p.BeanType
	}
	if p.ProcessingMethod != nil {
		next.ProcessingMethod = *p.ProcessingMethod
	}
	if p.Profile != nil {
		next.Profile = *p.Profile
	}
	if p.HarvestDate != nil {
		next.HarvestDate = p.HarvestDate
	}
	if p.RoastDate != nil {
		next.RoastDate = p.RoastDate
	}
	if p.Images != nil {
		next.Images = *p.Images
	}

	if err := next.validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now().UTC()
	*c = next
	return nil
}

// CoffeeSnapshot is a plain structured copy of every field, used at the
// storage and HTTP boundaries. It is read-only with respect to the aggregate,
// so it cannot bypass invariants.
type CoffeeSnapshot struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Origin           string           `json:"origin"`
	Altitude         *float64         `json:"altitude,omitempty"`
	Price            float64          `json:"price"`
	Stock            int              `json:"stock"`
	IsAvailable      bool             `json:"is_available"`
	SellerID         uuid.UUID        `json:"seller_id"`
	RoastLevel       RoastLevel       `json:"roast_level"`
	BeanType         BeanType         `json:"bean_type"`
	ProcessingMethod ProcessingMethod `json:"processing_method"`
	Profile          SensoryProfile   `json:"profile"`
	HarvestDate      *time.Time       `json:"harvest_date,omitempty"`
	RoastDate        *time.Time       `json:"roast_date,omitempty"`
	Images           []string         `json:"images"`
	Rating           float64          `json:"rating"`
	ReviewCount      int              `json:"review_count"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// Snapshot returns a plain structured copy of all fields.
func (c *Coffee) Snapshot() CoffeeSnapshot {
	return CoffeeSnapshot{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		Origin:           c.Origin,
		Altitude:         c.Altitude,
		Price:            c.Price,
		Stock:            c.Stock,
		IsAvailable:      c.IsAvailable,
		SellerID:         c.SellerID,
		RoastLevel:       c.RoastLevel,
		BeanType:         c.BeanType,
		ProcessingMethod: c.ProcessingMethod,
		Profile:          c.Profile,
		HarvestDate:      c.HarvestDate,
		RoastDate:        c.RoastDate,
		Images:           c.Images,
		Rating:           c.Rating,
		ReviewCount:      c.ReviewCount,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// IsOwnedBy reports whether the coffee is listed by the given seller.
func (c *Coffee) IsOwnedBy(sellerID uuid.UUID) bool {
	return c.SellerID == sellerID
}

// validate enforces every invariant. Called after construction, rehydration,
// and every mutating entry point so no path can bypass the checks.
func (c *Coffee) validate() error {
	if c.ID == uuid.Nil {
		return fmt.Errorf("%w: id must be set", domain.ErrInvalidCoffee)
	}
	if c.SellerID == uuid.Nil {
		return fmt.Errorf("%w: seller_id must be set", domain.ErrInvalidCoffee)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name must not be empty", domain.ErrInvalidCoffee)
	}
	if c.Price <= 0 {
		return fmt.Errorf("%w: price must be greater than 0, got %v", domain.ErrInvalidCoffee, c.Price)
	}
	if c.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative, got %d", domain.ErrInvalidCoffee, c.Stock)
	}
	if c.Altitude != nil && *c.Altitude < 0 {
		return fmt.Errorf("%w: altitude must not be negative, got %v", domain.ErrInvalidCoffee, *c.Altitude)
	}
	if _, err := ParseRoastLevel(string(c.RoastLevel)); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidCoffee, err)
	}
	if _, err := ParseBeanType(string(c.BeanType)); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidCoffee, err)
	}
	if _, err := ParseProcessingMethod(string(c.ProcessingMethod)); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidCoffee, err)
	}
	if err := c.Profile.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidCoffee, err)
	}
	if c.Rating < 0 || c.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5, got %v", domain.ErrInvalidCoffee, c.Rating)
	}
	if c.ReviewCount < 0 {
		return fmt.Errorf("%w: review count must not be negative, got %d", domain.ErrInvalidCoffee, c.ReviewCount)
	}
	return nil
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
