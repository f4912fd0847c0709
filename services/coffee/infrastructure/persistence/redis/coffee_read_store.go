// Package redis implements the coffee store against Redis, the secondary read
// store. It holds a JSON document per coffee plus index structures (a rating
// sorted set, per-seller sets, and roast/bean similarity buckets) so the
// recommendation queries run without the primary database.
//
// The read store is populated by the projection worker from coffee lifecycle
// events. It serves reads only: stock mutation is rejected with
// ErrReadOnlyStore.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ghuser/coffeemarket/pkg/cache"
	coffeedomain "github.com/ghuser/coffeemarket/services/coffee/domain"
	"github.com/ghuser/coffeemarket/services/coffee/domain/models"
	"github.com/ghuser/coffeemarket/services/coffee/domain/repositories"
)

const (
	keyIDs    = "coffees:ids"
	keyRating = "coffees:rating"
	keyNames  = "coffees:names"
)

func keyCoffee(id uuid.UUID) string {
	return "coffee:" + id.String()
}

func keySeller(sellerID uuid.UUID) string {
	return "coffees:seller:" + sellerID.String()
}

func keyProfile(roast models.RoastLevel, bean models.BeanType) string {
	return "coffees:profile:" + roast.String() + ":" + bean.String()
}

// CoffeeReadStore implements repositories.CoffeeStore against Redis.
type CoffeeReadStore struct {
	client *goredis.Client
}

var _ repositories.CoffeeStore = (*CoffeeReadStore)(nil)

// NewCoffeeReadStore returns a CoffeeReadStore backed by the given Redis client.
func NewCoffeeReadStore(rc *cache.RedisClient) *CoffeeReadStore {
	return &CoffeeReadStore{client: rc.Client()}
}

// GetByID retrieves a coffee document by ID. Returns ErrCoffeeNotFound if absent.
func (s *CoffeeReadStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Coffee, error) {
	data, err := s.client.Get(ctx, keyCoffee(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, coffeedomain.ErrCoffeeNotFound
		}
		return nil, fmt.Errorf("get coffee: %w", err)
	}
	return decodeCoffee(data)
}

// ListAll retrieves every indexed coffee.
func (s *CoffeeReadStore) ListAll(ctx context.Context) ([]*models.Coffee, error) {
	ids, err := s.client.SMembers(ctx, keyIDs).Result()
	if err != nil {
		return nil, fmt.Errorf("list coffee ids: %w", err)
	}
	return s.fetchMany(ctx, ids)
}

// Create stores a new coffee document and its index entries. Returns
// ErrCoffeeAlreadyExists if the ID or name is already indexed.
func (s *CoffeeReadStore) Create(ctx context.Context, coffee *models.Coffee) error {
	snap := coffee.Snapshot()

	exists, err := s.client.Exists(ctx, keyCoffee(snap.ID)).Result()
	if err != nil {
		return fmt.Errorf("check coffee exists: %w", err)
	}
	if exists > 0 {
		return coffeedomain.ErrCoffeeAlreadyExists
	}
	taken, err := s.client.HExists(ctx, keyNames, snap.Name).Result()
	if err != nil {
		return fmt.Errorf("check coffee name: %w", err)
	}
	if taken {
		return coffeedomain.ErrCoffeeAlreadyExists
	}

	return s.write(ctx, snap)
}

// Update applies a partial update through the domain aggregate and stores the
// result. Returns ErrCoffeeNotFound if the ID is absent.
func (s *CoffeeReadStore) Update(ctx context.Context, id uuid.UUID, patch models.CoffeePatch) (*models.Coffee, error) {
	coffee, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := coffee.Snapshot()

	if err := coffee.ApplyPartialUpdate(patch); err != nil {
		return nil, err
	}

	if err := s.replace(ctx, prev, coffee.Snapshot()); err != nil {
		return nil, err
	}
	return coffee, nil
}

// Delete removes a coffee document and its index entries. Deleting an absent
// ID is not an error.
func (s *CoffeeReadStore) Delete(ctx context.Context, id uuid.UUID) error {
	coffee, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, coffeedomain.ErrCoffeeNotFound) {
			return nil
		}
		return err
	}
	snap := coffee.Snapshot()

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, keyCoffee(snap.ID))
	pipe.SRem(ctx, keyIDs, snap.ID.String())
	pipe.ZRem(ctx, keyRating, snap.ID.String())
	pipe.HDel(ctx, keyNames, snap.Name)
	pipe.SRem(ctx, keySeller(snap.SellerID), snap.ID.String())
	pipe.SRem(ctx, keyProfile(snap.RoastLevel, snap.BeanType), snap.ID.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete coffee: %w", err)
	}
	return nil
}

// Upsert stores the coffee document wholesale, replacing any existing copy and
// moving index entries that changed. This is the projection worker's write path.
func (s *CoffeeReadStore) Upsert(ctx context.Context, coffee *models.Coffee) error {
	next := coffee.Snapshot()

	existing, err := s.GetByID(ctx, next.ID)
	if err != nil {
		if errors.Is(err, coffeedomain.ErrCoffeeNotFound) {
			return s.write(ctx, next)
		}
		return err
	}
	return s.replace(ctx, existing.Snapshot(), next)
}

// FindByName retrieves the coffee whose name matches exactly. Returns
// ErrCoffeeNotFound if absent.
func (s *CoffeeReadStore) FindByName(ctx context.Context, name string) (*models.Coffee, error) {
	raw, err := s.client.HGet(ctx, keyNames, name).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, coffeedomain.ErrCoffeeNotFound
		}
		return nil, fmt.Errorf("resolve coffee name: %w", err)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse indexed coffee id: %w", err)
	}
	return s.GetByID(ctx, id)
}

// Search retrieves the coffees matching the conjunction of all provided
// filters. Filters are applied in memory over the indexed documents.
func (s *CoffeeReadStore) Search(ctx context.Context, filters repositories.SearchFilters) ([]*models.Coffee, error) {
	coffees, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := []*models.Coffee{}
	for _, c := range coffees {
		if matchesFilters(c, filters) {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Rating > matched[j].Rating
	})
	return matched, nil
}

// FindBySellerID retrieves every coffee listed by the given seller.
func (s *CoffeeReadStore) FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*models.Coffee, error) {
	ids, err := s.client.SMembers(ctx, keySeller(sellerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list seller coffees: %w", err)
	}
	return s.fetchMany(ctx, ids)
}

// AdjustStock always fails with ErrReadOnlyStore. Stock is owned by the
// primary store; the projection applies the resulting update event instead.
func (s *CoffeeReadStore) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*models.Coffee, error) {
	return nil, fmt.Errorf("%w: stock adjustments must go through the primary store", coffeedomain.ErrReadOnlyStore)
}

// FindTopRated retrieves up to limit coffees ordered by rating descending,
// straight off the rating sorted set.
func (s *CoffeeReadStore) FindTopRated(ctx context.Context, limit int) ([]*models.Coffee, error) {
	if limit <= 0 {
		return []*models.Coffee{}, nil
	}
	ids, err := s.client.ZRevRange(ctx, keyRating, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list top rated coffees: %w", err)
	}
	return s.fetchMany(ctx, ids)
}

// FindSimilar retrieves up to limit coffees from the reference coffee's
// roast/bean bucket, excluding the reference itself, highest rated first. An
// absent reference yields an empty list.
func (s *CoffeeReadStore) FindSimilar(ctx context.Context, id uuid.UUID, limit int) ([]*models.Coffee, error) {
	ref, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, coffeedomain.ErrCoffeeNotFound) {
			return []*models.Coffee{}, nil
		}
		return nil, err
	}

	ids, err := s.client.SMembers(ctx, keyProfile(ref.RoastLevel, ref.BeanType)).Result()
	if err != nil {
		return nil, fmt.Errorf("list similar coffees: %w", err)
	}

	coffees, err := s.fetchMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	similar := []*models.Coffee{}
	for _, c := range coffees {
		if c.ID != id {
			similar = append(similar, c)
		}
	}
	sort.Slice(similar, func(i, j int) bool {
		return similar[i].Rating > similar[j].Rating
	})
	if limit > 0 && len(similar) > limit {
		similar = similar[:limit]
	}
	return similar, nil
}

// write stores the document and all index entries in one transaction.
func (s *CoffeeReadStore) write(ctx context.Context, snap models.CoffeeSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal coffee: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, keyCoffee(snap.ID), data, 0)
	pipe.SAdd(ctx, keyIDs, snap.ID.String())
	pipe.ZAdd(ctx, keyRating, goredis.Z{Score: snap.Rating, Member: snap.ID.String()})
	pipe.HSet(ctx, keyNames, snap.Name, snap.ID.String())
	pipe.SAdd(ctx, keySeller(snap.SellerID), snap.ID.String())
	pipe.SAdd(ctx, keyProfile(snap.RoastLevel, snap.BeanType), snap.ID.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store coffee: %w", err)
	}
	return nil
}

// replace rewrites the document, dropping index entries the update moved the
// coffee out of.
func (s *CoffeeReadStore) replace(ctx context.Context, prev, next models.CoffeeSnapshot) error {
	pipe := s.client.TxPipeline()
	if prev.Name != next.Name {
		pipe.HDel(ctx, keyNames, prev.Name)
	}
	if prev.SellerID != next.SellerID {
		pipe.SRem(ctx, keySeller(prev.SellerID), prev.ID.String())
	}
	if prev.RoastLevel != next.RoastLevel || prev.BeanType != next.BeanType {
		pipe.SRem(ctx, keyProfile(prev.RoastLevel, prev.BeanType), prev.ID.String())
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("reindex coffee: %w", err)
	}
	return s.write(ctx, next)
}

func (s *CoffeeReadStore) fetchMany(ctx context.Context, rawIDs []string) ([]*models.Coffee, error) {
	coffees := []*models.Coffee{}
	if len(rawIDs) == 0 {
		return coffees, nil
	}

	keys := make([]string, len(rawIDs))
	for i, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse indexed coffee id: %w", err)
		}
		keys[i] = keyCoffee(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch coffees: %w", err)
	}
	for _, v := range values {
		// A nil value means the index outlived the document; skip it.
		raw, ok := v.(string)
		if !ok {
			continue
		}
		coffee, err := decodeCoffee([]byte(raw))
		if err != nil {
			return nil, err
		}
		coffees = append(coffees, coffee)
	}
	return coffees, nil
}

func decodeCoffee(data []byte) (*models.Coffee, error) {
	var snap models.CoffeeSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal coffee: %w", err)
	}
	return models.RehydrateCoffee(snap)
}

func matchesFilters(c *models.Coffee, f repositories.SearchFilters) bool {
	if f.RoastLevel != nil && c.RoastLevel != *f.RoastLevel {
		return false
	}
	if f.BeanType != nil && c.BeanType != *f.BeanType {
		return false
	}
	if f.Origin != nil && c.Origin != *f.Origin {
		return false
	}
	if f.MinPrice != nil && c.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && c.Price > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && c.Rating < *f.MinRating {
		return false
	}
	if f.SellerID != nil && c.SellerID != *f.SellerID {
		return false
	}
	if f.IsAvailable != nil && c.IsAvailable != *f.IsAvailable {
		return false
	}
	return true
}
