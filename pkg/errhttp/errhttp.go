// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/coffeemarket/pkg/httpx"
	coffeedomain "github.com/ghuser/coffeemarket/services/coffee/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors, which also
// covers ErrRecommendationFailed and the store failures it wraps.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, coffeedomain.ErrCoffeeNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, coffeedomain.ErrInvalidCoffee):
		return http.StatusBadRequest // 400
	case errors.Is(err, coffeedomain.ErrCoffeeAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, coffeedomain.ErrInsufficientStock):
		return http.StatusConflict // 409
	case errors.Is(err, coffeedomain.ErrReadOnlyStore):
		return http.StatusNotImplemented // 501
	default:
		return http.StatusInternalServerError // 500
	}
}
