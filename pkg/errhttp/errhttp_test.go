package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	coffeedomain "github.com/ghuser/coffeemarket/services/coffee/domain"
)

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", coffeedomain.ErrCoffeeNotFound, http.StatusNotFound},
		{"invalid coffee", coffeedomain.ErrInvalidCoffee, http.StatusBadRequest},
		{"already exists", coffeedomain.ErrCoffeeAlreadyExists, http.StatusConflict},
		{"insufficient stock", coffeedomain.ErrInsufficientStock, http.StatusConflict},
		{"read-only store", coffeedomain.ErrReadOnlyStore, http.StatusNotImplemented},
		{"recommendation failure", coffeedomain.ErrRecommendationFailed, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tc.err)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestWriteError_MatchesWrappedSentinels(t *testing.T) {
	wrapped := fmt.Errorf("load coffee: %w", coffeedomain.ErrCoffeeNotFound)
	w := httptest.NewRecorder()
	WriteError(w, wrapped)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped sentinel, got %d", w.Code)
	}
}

func TestWriteError_RecommendationWrappingDoesNotLeakInnerStatus(t *testing.T) {
	// A store failure inside the resolver is a 500 even if the inner cause is
	// an unrecognized error; the resolver never maps to 404.
	inner := errors.New("connection reset")
	err := fmt.Errorf("%w: find similar in primary store: %w", coffeedomain.ErrRecommendationFailed, inner)

	w := httptest.NewRecorder()
	WriteError(w, err)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected error message in body")
	}
}
