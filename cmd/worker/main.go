package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/coffeemarket/pkg/app"
	"github.com/ghuser/coffeemarket/pkg/cache"
	"github.com/ghuser/coffeemarket/pkg/config"
	"github.com/ghuser/coffeemarket/pkg/database"
	"github.com/ghuser/coffeemarket/pkg/events"
	"github.com/ghuser/coffeemarket/pkg/logger"
	"github.com/ghuser/coffeemarket/pkg/telemetry"
	coffeeEvents "github.com/ghuser/coffeemarket/services/coffee/domain/events"
	"github.com/ghuser/coffeemarket/services/coffee/domain/models"
	"github.com/ghuser/coffeemarket/services/coffee/domain/repositories"
	redisstore "github.com/ghuser/coffeemarket/services/coffee/infrastructure/persistence/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires the coffee lifecycle projection. coffee.created
// and coffee.updated upsert the full snapshot into the Redis read store;
// coffee.deleted evicts it.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	readStore := redisstore.NewCoffeeReadStore(a.Redis)

	topics := map[string]func(context.Context, *message.Message) error{
		coffeeEvents.TopicCoffeeCreated: handleCoffeeChanged(a, readStore),
		coffeeEvents.TopicCoffeeUpdated: handleCoffeeChanged(a, readStore),
		coffeeEvents.TopicCoffeeDeleted: handleCoffeeDeleted(a, readStore),
	}

	names := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		names = append(names, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", names)
	return nil
}

// handleCoffeeChanged returns the projection handler for coffee.created and
// coffee.updated events. Handlers must be idempotent — EventBus retries up to
// 3× on failure, and Upsert replaces the document wholesale either way.
func handleCoffeeChanged(a *app.Application, readStore repositories.CoffeeStore) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt coffeeEvents.CoffeeChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		coffee, err := models.RehydrateCoffee(evt.Coffee)
		if err != nil {
			// A snapshot that fails invariants can never project; retrying
			// will not help, so drop it with an error log.
			a.Logger.ErrorContext(ctx, "dropping unprojectable coffee event",
				"coffee_id", evt.Coffee.ID, "event_id", evt.EventID, "error", err)
			return nil
		}

		if err := readStore.Upsert(ctx, coffee); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "read store projected",
			"coffee_id", coffee.ID, "event_id", evt.EventID)
		return nil
	}
}

// handleCoffeeDeleted returns the projection handler for coffee.deleted
// events. Eviction is idempotent.
func handleCoffeeDeleted(a *app.Application, readStore repositories.CoffeeStore) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt coffeeEvents.CoffeeDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := readStore.Delete(ctx, evt.CoffeeID); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "read store evicted",
			"coffee_id", evt.CoffeeID, "event_id", evt.EventID)
		return nil
	}
}
