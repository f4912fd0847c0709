package domain

import "errors"

// Sentinel errors for the coffee domain. Use errors.Is() to check these.
var (
	// ErrCoffeeNotFound indicates the requested coffee does not exist.
	ErrCoffeeNotFound = errors.New("coffee not found")

	// ErrCoffeeAlreadyExists indicates a coffee with the same unique constraint already exists.
	ErrCoffeeAlreadyExists = errors.New("coffee already exists")

	// ErrInvalidCoffee indicates the coffee violates a domain invariant
	// (price, stock, sensory profile, review rating, or enum value).
	ErrInvalidCoffee = errors.New("invalid coffee")

	// ErrInsufficientStock indicates a stock adjustment would drive stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrReadOnlyStore indicates a write was attempted against the read-only
	// cache store, which is not authoritative for stock.
	ErrReadOnlyStore = errors.New("store is read-only")

	// ErrRecommendationFailed wraps any store failure surfaced during
	// recommendation resolution.
	ErrRecommendationFailed = errors.New("recommendation failed")
)
