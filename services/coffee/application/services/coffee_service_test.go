package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/coffeemarket/pkg/logger"
	coffeedomain "github.com/ghuser/coffeemarket/services/coffee/domain"
	"github.com/ghuser/coffeemarket/services/coffee/domain/models"
	"github.com/ghuser/coffeemarket/services/coffee/domain/repositories"
)

// memStore is an in-memory CoffeeStore for exercising the service layer.
type memStore struct {
	coffees   map[uuid.UUID]*models.Coffee
	getErr    error
	createErr error

	deleteCalls int
	upserts     int
}

func newMemStore() *memStore {
	return &memStore{coffees: make(map[uuid.UUID]*models.Coffee)}
}

func (m *memStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Coffee, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	c, ok := m.coffees[id]
	if !ok {
		return nil, coffeedomain.ErrCoffeeNotFound
	}
	return c, nil
}

func (m *memStore) ListAll(ctx context.Context) ([]*models.Coffee, error) {
	out := []*models.Coffee{}
	for _, c := range m.coffees {
		out = append(out, c)
	}
	return out, nil
}

func (m *memStore) Create(ctx context.Context, coffee *models.Coffee) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.coffees[coffee.ID]; ok {
		return coffeedomain.ErrCoffeeAlreadyExists
	}
	m.coffees[coffee.ID] = coffee
	return nil
}

func (m *memStore) Update(ctx context.Context, id uuid.UUID, patch models.CoffeePatch) (*models.Coffee, error) {
	c, ok := m.coffees[id]
	if !ok {
		return nil, coffeedomain.ErrCoffeeNotFound
	}
	if err := c.ApplyPartialUpdate(patch); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *memStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls++
	delete(m.coffees, id)
	return nil
}

func (m *memStore) Upsert(ctx context.Context, coffee *models.Coffee) error {
	m.upserts++
	m.coffees[coffee.ID] = coffee
	return nil
}

func (m *memStore) FindByName(ctx context.Context, name string) (*models.Coffee, error) {
	for _, c := range m.coffees {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, coffeedomain.ErrCoffeeNotFound
}

func (m *memStore) Search(ctx context.Context, filters repositories.SearchFilters) ([]*models.Coffee, error) {
	return m.ListAll(ctx)
}

func (m *memStore) FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*models.Coffee, error) {
	out := []*models.Coffee{}
	for _, c := range m.coffees {
		if c.SellerID == sellerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*models.Coffee, error) {
	c, ok := m.coffees[id]
	if !ok {
		return nil, coffeedomain.ErrCoffeeNotFound
	}
	if err := c.AdjustStock(delta); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *memStore) FindTopRated(ctx context.Context, limit int) ([]*models.Coffee, error) {
	return m.ListAll(ctx)
}

func (m *memStore) FindSimilar(ctx context.Context, id uuid.UUID, limit int) ([]*models.Coffee, error) {
	return []*models.Coffee{}, nil
}

func mustCoffee(t *testing.T, name string) *models.Coffee {
	t.Helper()
	c, err := models.NewCoffee(models.NewCoffeeParams{
		Name:             name,
		Origin:           "Ethiopia",
		Price:            18.00,
		Stock:            12,
		SellerID:         uuid.New(),
		RoastLevel:       models.RoastLight,
		BeanType:         models.BeanArabica,
		ProcessingMethod: models.ProcessNatural,
		Profile:          models.SensoryProfile{Acidity: 5, Body: 2, Sweetness: 4, Bitterness: 1, Aroma: 5},
	})
	if err != nil {
		t.Fatalf("new coffee: %v", err)
	}
	return c
}

func TestCoffeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("served from read store when present", func(t *testing.T) {
		primary := newMemStore()
		readStore := newMemStore()
		coffee := mustCoffee(t, "Yirgacheffe Lot 4")
		readStore.coffees[coffee.ID] = coffee

		svc := NewCoffeeService(primary, readStore, logger.NewDiscard())
		got, err := svc.GetByID(ctx, coffee.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != coffee.ID {
			t.Fatalf("expected %s, got %s", coffee.ID, got.ID)
		}
	})

	t.Run("read store miss falls back to primary", func(t *testing.T) {
		primary := newMemStore()
		readStore := newMemStore()
		coffee := mustCoffee(t, "Yirgacheffe Lot 5")
		primary.coffees[coffee.ID] = coffee

		svc := NewCoffeeService(primary, readStore, logger.NewDiscard())
		got, err := svc.GetByID(ctx, coffee.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != coffee.ID {
			t.Fatalf("expected %s, got %s", coffee.ID, got.ID)
		}
	})

	t.Run("read store failure falls back to primary", func(t *testing.T) {
		primary := newMemStore()
		readStore := newMemStore()
		readStore.getErr = errors.New("connection refused")
		coffee := mustCoffee(t, "Yirgacheffe Lot 7")
		primary.coffees[coffee.ID] = coffee

		svc := NewCoffeeService(primary, readStore, logger.NewDiscard())
		got, err := svc.GetByID(ctx, coffee.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != coffee.ID {
			t.Fatalf("expected %s, got %s", coffee.ID, got.ID)
		}
	})

	t.Run("absent in both stores is not found", func(t *testing.T) {
		svc := NewCoffeeService(newMemStore(), newMemStore(), logger.NewDiscard())
		_, err := svc.GetByID(ctx, uuid.New())
		if !errors.Is(err, coffeedomain.ErrCoffeeNotFound) {
			t.Fatalf("expected ErrCoffeeNotFound, got %v", err)
		}
	})

	t.Run("nil read store goes straight to primary", func(t *testing.T) {
		primary := newMemStore()
		coffee := mustCoffee(t, "Yirgacheffe Lot 6")
		primary.coffees[coffee.ID] = coffee

		svc := NewCoffeeService(primary, nil, logger.NewDiscard())
		got, err := svc.GetByID(ctx, coffee.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != coffee.ID {
			t.Fatalf("expected %s, got %s", coffee.ID, got.ID)
		}
	})
}

func TestCoffeeService_Update_RejectsEmptyPatch(t *testing.T) {
	svc := NewCoffeeService(newMemStore(), nil, logger.NewDiscard())
	_, err := svc.Update(context.Background(), uuid.New(), models.CoffeePatch{})
	if !errors.Is(err, coffeedomain.ErrInvalidCoffee) {
		t.Fatalf("expected ErrInvalidCoffee for empty patch, got %v", err)
	}
}

func TestCoffeeService_Delete_EvictsReadStore(t *testing.T) {
	primary := newMemStore()
	readStore := newMemStore()
	coffee := mustCoffee(t, "Gesha Village")
	primary.coffees[coffee.ID] = coffee
	readStore.coffees[coffee.ID] = coffee

	svc := NewCoffeeService(primary, readStore, logger.NewDiscard())
	if err := svc.Delete(context.Background(), coffee.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if readStore.deleteCalls != 1 {
		t.Fatalf("expected read store eviction, got %d delete calls", readStore.deleteCalls)
	}
	if _, ok := primary.coffees[coffee.ID]; ok {
		t.Fatal("expected coffee removed from primary")
	}
}

func TestCoffeeService_AddReview(t *testing.T) {
	primary := newMemStore()
	coffee := mustCoffee(t, "Kona Estate")
	primary.coffees[coffee.ID] = coffee

	svc := NewCoffeeService(primary, nil, logger.NewDiscard())
	ctx := context.Background()

	got, err := svc.AddReview(ctx, coffee.ID, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Rating != 5.0 || got.ReviewCount != 1 {
		t.Fatalf("expected rating 5.0 count 1, got %v count %d", got.Rating, got.ReviewCount)
	}

	got, err = svc.AddReview(ctx, coffee.ID, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Rating != 3.5 || got.ReviewCount != 2 {
		t.Fatalf("expected rating 3.5 count 2, got %v count %d", got.Rating, got.ReviewCount)
	}
	if primary.upserts != 2 {
		t.Fatalf("expected 2 upserts, got %d", primary.upserts)
	}
}

// recordingStore is a memStore that also offers the locked review path.
type recordingStore struct {
	*memStore
	recordCalls int
}

func (r *recordingStore) RecordReview(ctx context.Context, id uuid.UUID, rating int) (*models.Coffee, error) {
	r.recordCalls++
	c, ok := r.coffees[id]
	if !ok {
		return nil, coffeedomain.ErrCoffeeNotFound
	}
	if err := c.AddReview(rating); err != nil {
		return nil, err
	}
	return c, nil
}

func TestCoffeeService_AddReview_PrefersAtomicRecorder(t *testing.T) {
	primary := &recordingStore{memStore: newMemStore()}
	coffee := mustCoffee(t, "Tarrazu Peaberry")
	primary.coffees[coffee.ID] = coffee

	svc := NewCoffeeService(primary, nil, logger.NewDiscard())
	got, err := svc.AddReview(context.Background(), coffee.ID, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Rating != 4.0 || got.ReviewCount != 1 {
		t.Fatalf("expected rating 4.0 count 1, got %v count %d", got.Rating, got.ReviewCount)
	}
	if primary.recordCalls != 1 {
		t.Fatalf("expected 1 RecordReview call, got %d", primary.recordCalls)
	}
	if primary.upserts != 0 {
		t.Fatal("recorder-capable store must not take the get-modify-upsert path")
	}
}

func TestCoffeeService_AddReview_OutOfRange(t *testing.T) {
	primary := newMemStore()
	coffee := mustCoffee(t, "Blue Mountain")
	primary.coffees[coffee.ID] = coffee

	svc := NewCoffeeService(primary, nil, logger.NewDiscard())
	_, err := svc.AddReview(context.Background(), coffee.ID, 6)
	if !errors.Is(err, coffeedomain.ErrInvalidCoffee) {
		t.Fatalf("expected ErrInvalidCoffee, got %v", err)
	}
	if primary.upserts != 0 {
		t.Fatal("rejected review must not be persisted")
	}
}

func TestCoffeeService_Create_PropagatesConflict(t *testing.T) {
	primary := newMemStore()
	primary.createErr = coffeedomain.ErrCoffeeAlreadyExists

	svc := NewCoffeeService(primary, nil, logger.NewDiscard())
	_, err := svc.Create(context.Background(), models.NewCoffeeParams{
		Name:             "Toraja Sapan",
		Origin:           "Indonesia",
		Price:            21.00,
		Stock:            5,
		SellerID:         uuid.New(),
		RoastLevel:       models.RoastMediumDark,
		BeanType:         models.BeanRobusta,
		ProcessingMethod: models.ProcessHoney,
		Profile:          models.SensoryProfile{Acidity: 2, Body: 5, Sweetness: 3, Bitterness: 4, Aroma: 3},
	})
	if !errors.Is(err, coffeedomain.ErrCoffeeAlreadyExists) {
		t.Fatalf("expected ErrCoffeeAlreadyExists, got %v", err)
	}
}

func TestCoffeeService_Create_RejectsInvalidParams(t *testing.T) {
	svc := NewCoffeeService(newMemStore(), nil, logger.NewDiscard())
	_, err := svc.Create(context.Background(), models.NewCoffeeParams{
		Name:             "Free Coffee",
		Origin:           "Nowhere",
		Price:            0,
		SellerID:         uuid.New(),
		RoastLevel:       models.RoastMedium,
		BeanType:         models.BeanArabica,
		ProcessingMethod: models.ProcessWashed,
		Profile:          models.SensoryProfile{Acidity: 3, Body: 3, Sweetness: 3, Bitterness: 3, Aroma: 3},
	})
	if !errors.Is(err, coffeedomain.ErrInvalidCoffee) {
		t.Fatalf("expected ErrInvalidCoffee, got %v", err)
	}
}
