package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domain "github.com/ghuser/coffeemarket/services/coffee/domain"
	"github.com/ghuser/coffeemarket/services/coffee/domain/models"
	"github.com/ghuser/coffeemarket/services/coffee/domain/repositories"
)

// fakeStore is an in-memory CoffeeStore with programmable responses and call
// recording, substituting for the Postgres and Redis adapters.
type fakeStore struct {
	bySeller     []*models.Coffee
	similar      []*models.Coffee
	topRated     []*models.Coffee
	err          error
	similarCalls []similarCall
	topCalls     int
}

type similarCall struct {
	id    uuid.UUID
	limit int
}

func (f *fakeStore) GetByID(context.Context, uuid.UUID) (*models.Coffee, error) {
	return nil, domain.ErrCoffeeNotFound
}
func (f *fakeStore) ListAll(context.Context) ([]*models.Coffee, error) { return nil, nil }
func (f *fakeStore) Create(context.Context, *models.Coffee) error      { return nil }
func (f *fakeStore) Update(context.Context, uuid.UUID, models.CoffeePatch) (*models.Coffee, error) {
	return nil, domain.ErrCoffeeNotFound
}
func (f *fakeStore) Delete(context.Context, uuid.UUID) error            { return nil }
func (f *fakeStore) Upsert(context.Context, *models.Coffee) error       { return nil }
func (f *fakeStore) FindByName(context.Context, string) (*models.Coffee, error) {
	return nil, domain.ErrCoffeeNotFound
}
func (f *fakeStore) Search(context.Context, repositories.SearchFilters) ([]*models.Coffee, error) {
	return nil, nil
}

func (f *fakeStore) FindBySellerID(_ context.Context, _ uuid.UUID) ([]*models.Coffee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bySeller, nil
}

func (f *fakeStore) AdjustStock(context.Context, uuid.UUID, int) (*models.Coffee, error) {
	return nil, domain.ErrReadOnlyStore
}

func (f *fakeStore) FindTopRated(_ context.Context, limit int) ([]*models.Coffee, error) {
	f.topCalls++
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.topRated) {
		return f.topRated[:limit], nil
	}
	return f.topRated, nil
}

func (f *fakeStore) FindSimilar(_ context.Context, id uuid.UUID, limit int) ([]*models.Coffee, error) {
	f.similarCalls = append(f.similarCalls, similarCall{id: id, limit: limit})
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.similar) {
		return f.similar[:limit], nil
	}
	return f.similar, nil
}

func makeCoffees(t *testing.T, n int) []*models.Coffee {
	t.Helper()
	out := make([]*models.Coffee, n)
	for i := range out {
		c, err := models.NewCoffee(models.NewCoffeeParams{
			Name:             uuid.NewString(),
			Origin:           "Colombia",
			Price:            12,
			Stock:            5,
			SellerID:         uuid.New(),
			RoastLevel:       models.RoastMedium,
			BeanType:         models.BeanArabica,
			ProcessingMethod: models.ProcessWashed,
			Profile:          models.SensoryProfile{Acidity: 3, Body: 3, Sweetness: 3, Bitterness: 3, Aroma: 3},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out[i] = c
	}
	return out
}

func TestFindSimilarCoffees(t *testing.T) {
	ref := uuid.New()

	t.Run("tops up from secondary keeping primary order first", func(t *testing.T) {
		primary := &fakeStore{similar: makeCoffees(t, 3)}
		secondary := &fakeStore{similar: makeCoffees(t, 4)}
		r := NewRecommender(primary, secondary)

		got, err := r.FindSimilarCoffees(context.Background(), ref, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 5 {
			t.Fatalf("expected 5 results, got %d", len(got))
		}
		for i := range 3 {
			if got[i] != primary.similar[i] {
				t.Fatalf("result %d: expected primary match in primary order", i)
			}
		}
		for i := range 2 {
			if got[3+i] != secondary.similar[i] {
				t.Fatalf("result %d: expected secondary match in secondary order", 3+i)
			}
		}
		if len(secondary.similarCalls) != 1 || secondary.similarCalls[0].limit != 2 {
			t.Fatalf("secondary should be asked for the remaining budget of 2, got %+v", secondary.similarCalls)
		}
	})

	t.Run("overlapping sources keep both copies", func(t *testing.T) {
		shared := &fakeStore{similar: makeCoffees(t, 1)}
		r := NewRecommender(shared, shared)

		got, err := r.FindSimilarCoffees(context.Background(), ref, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected the shared match once per source, got %d results", len(got))
		}
		if got[0] != shared.similar[0] || got[1] != shared.similar[0] {
			t.Fatal("expected the same coffee from both sources, primary first")
		}
	})

	t.Run("never queries secondary when primary fills the budget", func(t *testing.T) {
		primary := &fakeStore{similar: makeCoffees(t, 5)}
		secondary := &fakeStore{}
		r := NewRecommender(primary, secondary)

		got, err := r.FindSimilarCoffees(context.Background(), ref, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 5 {
			t.Fatalf("expected 5 results, got %d", len(got))
		}
		if len(secondary.similarCalls) != 0 {
			t.Fatalf("secondary must not be queried, got %d calls", len(secondary.similarCalls))
		}
	})

	t.Run("applies the default limit when none is given", func(t *testing.T) {
		primary := &fakeStore{similar: makeCoffees(t, 8)}
		r := NewRecommender(primary, &fakeStore{})

		got, err := r.FindSimilarCoffees(context.Background(), ref, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != DefaultRecommendationLimit {
			t.Fatalf("expected %d results, got %d", DefaultRecommendationLimit, len(got))
		}
	})

	t.Run("primary failure is wrapped and never falls back", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		primary := &fakeStore{err: storeErr}
		secondary := &fakeStore{similar: makeCoffees(t, 5)}
		r := NewRecommender(primary, secondary)

		_, err := r.FindSimilarCoffees(context.Background(), ref, 5)
		if !errors.Is(err, domain.ErrRecommendationFailed) {
			t.Fatalf("expected ErrRecommendationFailed, got %v", err)
		}
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected wrapped cause, got %v", err)
		}
		if len(secondary.similarCalls) != 0 {
			t.Fatal("an error must not trigger the secondary fallback")
		}
	})

	t.Run("secondary failure is wrapped", func(t *testing.T) {
		primary := &fakeStore{similar: makeCoffees(t, 1)}
		secondary := &fakeStore{err: errors.New("timeout")}
		r := NewRecommender(primary, secondary)

		if _, err := r.FindSimilarCoffees(context.Background(), ref, 5); !errors.Is(err, domain.ErrRecommendationFailed) {
			t.Fatalf("expected ErrRecommendationFailed, got %v", err)
		}
	})
}

func TestRecommendForUser(t *testing.T) {
	userID := uuid.New()

	t.Run("uses the first seller listing as similarity anchor", func(t *testing.T) {
		anchors := makeCoffees(t, 2)
		primary := &fakeStore{bySeller: anchors, similar: makeCoffees(t, 3)}
		secondary := &fakeStore{topRated: makeCoffees(t, 5)}
		r := NewRecommender(primary, secondary)

		got, err := r.RecommendForUser(context.Background(), userID, RecommendationFilters{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(primary.similarCalls) != 1 {
			t.Fatalf("expected one similarity query, got %d", len(primary.similarCalls))
		}
		call := primary.similarCalls[0]
		if call.id != anchors[0].ID {
			t.Fatalf("expected anchor %v, got %v", anchors[0].ID, call.id)
		}
		if call.limit != DefaultRecommendationLimit {
			t.Fatalf("expected default limit %d, got %d", DefaultRecommendationLimit, call.limit)
		}
		if secondary.topCalls != 0 {
			t.Fatal("top-rated fallback must not run when an anchor exists")
		}
		if len(got) != 3 {
			t.Fatalf("expected the primary similarity results, got %d", len(got))
		}
	})

	t.Run("falls back to secondary top-rated without an anchor", func(t *testing.T) {
		top := makeCoffees(t, 5)
		primary := &fakeStore{}
		secondary := &fakeStore{topRated: top}
		r := NewRecommender(primary, secondary)

		got, err := r.RecommendForUser(context.Background(), userID, RecommendationFilters{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != len(top) {
			t.Fatalf("expected %d results, got %d", len(top), len(got))
		}
		for i := range top {
			if got[i] != top[i] {
				t.Fatalf("result %d: top-rated list must be returned untouched", i)
			}
		}
	})

	t.Run("anchor lookup failure is wrapped", func(t *testing.T) {
		primary := &fakeStore{err: errors.New("down")}
		r := NewRecommender(primary, &fakeStore{})

		if _, err := r.RecommendForUser(context.Background(), userID, RecommendationFilters{}); !errors.Is(err, domain.ErrRecommendationFailed) {
			t.Fatalf("expected ErrRecommendationFailed, got %v", err)
		}
	})
}
