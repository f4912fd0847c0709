// Package postgres implements the coffee store against PostgreSQL, the
// primary source of truth. Writes publish lifecycle events through the
// Watermill SQL outbox inside the same transaction as the row change.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/coffeemarket/pkg/database"
	"github.com/ghuser/coffeemarket/pkg/events"
	coffeedomain "github.com/ghuser/coffeemarket/services/coffee/domain"
	domainevents "github.com/ghuser/coffeemarket/services/coffee/domain/events"
	"github.com/ghuser/coffeemarket/services/coffee/domain/models"
	"github.com/ghuser/coffeemarket/services/coffee/domain/repositories"
)

const coffeeColumns = `id, name, description, origin, altitude, price, stock, seller_id,
	roast_level, bean_type, processing_method,
	acidity, body, sweetness, bitterness, aroma,
	harvest_date, roast_date, images, rating, review_count, created_at, updated_at`

// CoffeeRepository implements repositories.CoffeeStore against PostgreSQL.
type CoffeeRepository struct {
	db  *database.Database
	bus *events.EventBus
}

var _ repositories.CoffeeStore = (*CoffeeRepository)(nil)

// NewCoffeeRepository returns a CoffeeRepository backed by the given connection
// pool and event bus. The bus is used to publish lifecycle events in the same
// transaction as each write; a nil bus disables publishing.
func NewCoffeeRepository(db *database.Database, bus *events.EventBus) *CoffeeRepository {
	return &CoffeeRepository{db: db, bus: bus}
}

// GetByID retrieves a coffee by ID. Returns ErrCoffeeNotFound if absent.
func (r *CoffeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Coffee, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+coffeeColumns+` FROM coffees WHERE id = $1`, id)
	coffee, err := scanCoffee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, coffeedomain.ErrCoffeeNotFound
		}
		return nil, fmt.Errorf("query coffee: %w", err)
	}
	return coffee, nil
}

// ListAll retrieves every coffee, newest first.
func (r *CoffeeRepository) ListAll(ctx context.Context) ([]*models.Coffee, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+coffeeColumns+` FROM coffees ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query coffees: %w", err)
	}
	return collectCoffees(rows)
}

// Create persists a new coffee and publishes a coffee.created event within the
// same transaction. Returns ErrCoffeeAlreadyExists on unique constraint
// violations.
func (r *CoffeeRepository) Create(ctx context.Context, coffee *models.Coffee) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := insertCoffee(ctx, tx, coffee, false); err != nil {
			return err
		}
		return r.publishChanged(tx, domainevents.TopicCoffeeCreated, coffee)
	})
}

// Update loads the coffee under a row lock, applies the patch through the
// domain aggregate, and persists the result. Publishes coffee.updated in the
// same transaction. Returns ErrCoffeeNotFound if the ID is absent.
func (r *CoffeeRepository) Update(ctx context.Context, id uuid.UUID, patch models.CoffeePatch) (*models.Coffee, error) {
	var updated *models.Coffee
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`SELECT `+coffeeColumns+` FROM coffees WHERE id = $1 FOR UPDATE`, id)
		coffee, err := scanCoffee(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return coffeedomain.ErrCoffeeNotFound
			}
			return fmt.Errorf("lock coffee: %w", err)
		}

		if err := coffee.ApplyPartialUpdate(patch); err != nil {
			return err
		}

		if err := updateCoffee(ctx, tx, coffee); err != nil {
			return err
		}
		if err := r.publishChanged(tx, domainevents.TopicCoffeeUpdated, coffee); err != nil {
			return err
		}
		updated = coffee
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RecordReview folds a review rating into the coffee's running average under
// a row lock, so concurrent reviews cannot lose an increment.
func (r *CoffeeRepository) RecordReview(ctx context.Context, id uuid.UUID, rating int) (*models.Coffee, error) {
	var reviewed *models.Coffee
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`SELECT `+coffeeColumns+` FROM coffees WHERE id = $1 FOR UPDATE`, id)
		coffee, err := scanCoffee(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return coffeedomain.ErrCoffeeNotFound
			}
			return fmt.Errorf("lock coffee: %w", err)
		}

		if err := coffee.AddReview(rating); err != nil {
			return err
		}

		if err := updateCoffee(ctx, tx, coffee); err != nil {
			return err
		}
		if err := r.publishChanged(tx, domainevents.TopicCoffeeUpdated, coffee); err != nil {
			return err
		}
		reviewed = coffee
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviewed, nil
}

// Delete removes a coffee by ID. Deleting an absent ID is not an error; the
// coffee.deleted event is only published when a row was actually removed.
func (r *CoffeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM coffees WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete coffee: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete coffee: %w", err)
		}
		if affected == 0 {
			return nil
		}
		return r.publishDeleted(tx, id)
	})
}

// Upsert creates the coffee or replaces the stored copy wholesale, publishing
// coffee.updated either way.
func (r *CoffeeRepository) Upsert(ctx context.Context, coffee *models.Coffee) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := insertCoffee(ctx, tx, coffee, true); err != nil {
			return err
		}
		return r.publishChanged(tx, domainevents.TopicCoffeeUpdated, coffee)
	})
}

// FindByName retrieves the coffee whose name matches exactly. Returns
// ErrCoffeeNotFound if absent.
func (r *CoffeeRepository) FindByName(ctx context.Context, name string) (*models.Coffee, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+coffeeColumns+` FROM coffees WHERE name = $1`, name)
	coffee, err := scanCoffee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, coffeedomain.ErrCoffeeNotFound
		}
		return nil, fmt.Errorf("query coffee by name: %w", err)
	}
	return coffee, nil
}

// Search retrieves the coffees matching the conjunction of all provided
// filters, highest rated first.
func (r *CoffeeRepository) Search(ctx context.Context, filters repositories.SearchFilters) ([]*models.Coffee, error) {
	query := `SELECT ` + coffeeColumns + ` FROM coffees WHERE 1=1`
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filters.RoastLevel != nil {
		query += ` AND roast_level = ` + arg(filters.RoastLevel.String())
	}
	if filters.BeanType != nil {
		query += ` AND bean_type = ` + arg(filters.BeanType.String())
	}
	if filters.Origin != nil {
		query += ` AND origin = ` + arg(*filters.Origin)
	}
	if filters.MinPrice != nil {
		query += ` AND price >= ` + arg(*filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query += ` AND price <= ` + arg(*filters.MaxPrice)
	}
	if filters.MinRating != nil {
		query += ` AND rating >= ` + arg(*filters.MinRating)
	}
	if filters.SellerID != nil {
		query += ` AND seller_id = ` + arg(*filters.SellerID)
	}
	if filters.IsAvailable != nil {
		if *filters.IsAvailable {
			query += ` AND stock > 0`
		} else {
			query += ` AND stock = 0`
		}
	}
	query += ` ORDER BY rating DESC, created_at DESC`

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search coffees: %w", err)
	}
	return collectCoffees(rows)
}

// FindBySellerID retrieves every coffee listed by the given seller, newest
// first.
func (r *CoffeeRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*models.Coffee, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+coffeeColumns+` FROM coffees WHERE seller_id = $1 ORDER BY created_at DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("query coffees by seller: %w", err)
	}
	return collectCoffees(rows)
}

// AdjustStock applies a relative stock change as a single conditional UPDATE,
// so concurrent adjustments cannot drive stock negative. Publishes
// coffee.updated in the same transaction.
func (r *CoffeeRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*models.Coffee, error) {
	var updated *models.Coffee
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`UPDATE coffees
			 SET stock = stock + $2, updated_at = $3
			 WHERE id = $1 AND stock + $2 >= 0
			 RETURNING `+coffeeColumns, id, delta, time.Now().UTC())
		coffee, err := scanCoffee(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return r.classifyStockFailure(ctx, tx, id, delta)
			}
			return fmt.Errorf("adjust stock: %w", err)
		}
		if err := r.publishChanged(tx, domainevents.TopicCoffeeUpdated, coffee); err != nil {
			return err
		}
		updated = coffee
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// classifyStockFailure distinguishes a missing coffee from a rejected
// adjustment after the conditional UPDATE matched no row.
func (r *CoffeeRepository) classifyStockFailure(ctx context.Context, tx *sql.Tx, id uuid.UUID, delta int) error {
	var stock int
	err := tx.QueryRowContext(ctx, `SELECT stock FROM coffees WHERE id = $1`, id).Scan(&stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return coffeedomain.ErrCoffeeNotFound
		}
		return fmt.Errorf("check stock: %w", err)
	}
	return fmt.Errorf("%w: stock %d, adjustment %d", coffeedomain.ErrInsufficientStock, stock, delta)
}

// FindTopRated retrieves up to limit coffees ordered by rating descending.
func (r *CoffeeRepository) FindTopRated(ctx context.Context, limit int) ([]*models.Coffee, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+coffeeColumns+` FROM coffees ORDER BY rating DESC, review_count DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top rated coffees: %w", err)
	}
	return collectCoffees(rows)
}

// FindSimilar retrieves up to limit coffees sharing the reference coffee's
// roast level and bean type, excluding the reference itself. An absent
// reference yields an empty list.
func (r *CoffeeRepository) FindSimilar(ctx context.Context, id uuid.UUID, limit int) ([]*models.Coffee, error) {
	var roast, bean string
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT roast_level, bean_type FROM coffees WHERE id = $1`, id).Scan(&roast, &bean)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Coffee{}, nil
		}
		return nil, fmt.Errorf("query reference coffee: %w", err)
	}

	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+coffeeColumns+` FROM coffees
		 WHERE roast_level = $1 AND bean_type = $2 AND id != $3
		 ORDER BY rating DESC, created_at DESC
		 LIMIT $4`, roast, bean, id, limit)
	if err != nil {
		return nil, fmt.Errorf("query similar coffees: %w", err)
	}
	return collectCoffees(rows)
}

func insertCoffee(ctx context.Context, tx *sql.Tx, coffee *models.Coffee, upsert bool) error {
	s := coffee.Snapshot()
	images, err := json.Marshal(s.Images)
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}

	query := `INSERT INTO coffees (` + coffeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	if upsert {
		query += ` ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, description = EXCLUDED.description,
			origin = EXCLUDED.origin, altitude = EXCLUDED.altitude,
			price = EXCLUDED.price, stock = EXCLUDED.stock,
			seller_id = EXCLUDED.seller_id, roast_level = EXCLUDED.roast_level,
			bean_type = EXCLUDED.bean_type, processing_method = EXCLUDED.processing_method,
			acidity = EXCLUDED.acidity, body = EXCLUDED.body,
			sweetness = EXCLUDED.sweetness, bitterness = EXCLUDED.bitterness,
			aroma = EXCLUDED.aroma, harvest_date = EXCLUDED.harvest_date,
			roast_date = EXCLUDED.roast_date, images = EXCLUDED.images,
			rating = EXCLUDED.rating, review_count = EXCLUDED.review_count,
			updated_at = EXCLUDED.updated_at`
	}

	if _, err := tx.ExecContext(ctx, query,
		s.ID, s.Name, s.Description, s.Origin, s.Altitude, s.Price, s.Stock, s.SellerID,
		s.RoastLevel.String(), s.BeanType.String(), s.ProcessingMethod.String(),
		s.Profile.Acidity, s.Profile.Body, s.Profile.Sweetness, s.Profile.Bitterness, s.Profile.Aroma,
		s.HarvestDate, s.RoastDate, images, s.Rating, s.ReviewCount, s.CreatedAt, s.UpdatedAt,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return coffeedomain.ErrCoffeeAlreadyExists
		}
		return fmt.Errorf("insert coffee: %w", err)
	}
	return nil
}

func updateCoffee(ctx context.Context, tx *sql.Tx, coffee *models.Coffee) error {
	s := coffee.Snapshot()
	images, err := json.Marshal(s.Images)
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE coffees SET
			name = $2, description = $3, origin = $4, altitude = $5,
			price = $6, stock = $7, roast_level = $8, bean_type = $9,
			processing_method = $10, acidity = $11, body = $12, sweetness = $13,
			bitterness = $14, aroma = $15, harvest_date = $16, roast_date = $17,
			images = $18, rating = $19, review_count = $20, updated_at = $21
		 WHERE id = $1`,
		s.ID, s.Name, s.Description, s.Origin, s.Altitude,
		s.Price, s.Stock, s.RoastLevel.String(), s.BeanType.String(),
		s.ProcessingMethod.String(), s.Profile.Acidity, s.Profile.Body, s.Profile.Sweetness,
		s.Profile.Bitterness, s.Profile.Aroma, s.HarvestDate, s.RoastDate,
		images, s.Rating, s.ReviewCount, s.UpdatedAt,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return coffeedomain.ErrCoffeeAlreadyExists
		}
		return fmt.Errorf("update coffee: %w", err)
	}
	return nil
}

func (r *CoffeeRepository) publishChanged(tx *sql.Tx, topic string, coffee *models.Coffee) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.CoffeeChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Coffee:     coffee.Snapshot(),
		OccurredAt: coffee.UpdatedAt,
	}
	return r.publish(tx, topic, event, event.EventID)
}

func (r *CoffeeRepository) publishDeleted(tx *sql.Tx, id uuid.UUID) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.CoffeeDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		CoffeeID:   id,
		OccurredAt: time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicCoffeeDeleted, event, event.EventID)
}

func (r *CoffeeRepository) publish(tx *sql.Tx, topic string, event any, eventID uuid.UUID) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCoffee(row scanner) (*models.Coffee, error) {
	var (
		s        models.CoffeeSnapshot
		roast    string
		bean     string
		method   string
		altitude sql.NullFloat64
		harvest  sql.NullTime
		roasted  sql.NullTime
		images   []byte
	)
	if err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.Origin, &altitude, &s.Price, &s.Stock, &s.SellerID,
		&roast, &bean, &method,
		&s.Profile.Acidity, &s.Profile.Body, &s.Profile.Sweetness, &s.Profile.Bitterness, &s.Profile.Aroma,
		&harvest, &roasted, &images, &s.Rating, &s.ReviewCount, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if altitude.Valid {
		s.Altitude = &altitude.Float64
	}
	if harvest.Valid {
		s.HarvestDate = &harvest.Time
	}
	if roasted.Valid {
		s.RoastDate = &roasted.Time
	}
	s.RoastLevel = models.RoastLevel(roast)
	s.BeanType = models.BeanType(bean)
	s.ProcessingMethod = models.ProcessingMethod(method)
	if len(images) > 0 {
		if err := json.Unmarshal(images, &s.Images); err != nil {
			return nil, fmt.Errorf("unmarshal images: %w", err)
		}
	}

	return models.RehydrateCoffee(s)
}

func collectCoffees(rows *sql.Rows) ([]*models.Coffee, error) {
	defer rows.Close()

	coffees := []*models.Coffee{}
	for rows.Next() {
		coffee, err := scanCoffee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coffee: %w", err)
		}
		coffees = append(coffees, coffee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coffees: %w", err)
	}
	return coffees, nil
}
