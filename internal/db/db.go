package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/domain/document"
	"github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
)

// Closer releases whatever NewStore opened.
type Closer func(ctx context.Context) error

func noopCloser(context.Context) error { return nil }

// NewStore builds the document store selected by cfg. A nil Store with a nil
// error means the database is not configured; the API still starts.
func NewStore(ctx context.Context, cfg *config.Config) (document.Store, Closer, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		name := cfg.DBName
		if name == "" {
			name = "memory"
		}
		log.Warn().Str("database", name).Msg("using in-memory document store, data is lost on restart")
		return repository.NewDocumentMemoryRepository(name), noopCloser, nil
	}

	if cfg.StoreDriver != config.StoreDriverMongo {
		return nil, noopCloser, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if !cfg.DatabaseConfigured() {
		log.Warn().
			Bool("database_url_set", cfg.DBUrl != "").
			Bool("database_name_set", cfg.DBName != "").
			Msg("database not configured, store-backed routes will fail")
		return nil, noopCloser, nil
	}

	client, err := NewMongoClient(ctx, cfg)
	if err != nil {
		return nil, noopCloser, err
	}

	log.Info().Str("database", cfg.DBName).Msg("mongodb client ready")

	return repository.NewDocumentMongoRepository(client.Database(cfg.DBName)), client.Disconnect, nil
}

// NewMongoClient does not wait for the server: an unreachable MongoDB
// surfaces on the first operation, not at startup.
func NewMongoClient(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.DBUrl).
		SetAppName("barbershop-api").
		SetMaxPoolSize(10).
		SetMinPoolSize(0).
		SetConnectTimeout(cfg.DBTimeout).
		SetServerSelectionTimeout(cfg.DBTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongodb client: %w", err)
	}
	return client, nil
}
