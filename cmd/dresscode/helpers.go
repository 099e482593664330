package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/fernwood/dresscode/internal/config"
	"github.com/fernwood/dresscode/internal/engine"
	"github.com/fernwood/dresscode/internal/gaps"
	"github.com/fernwood/dresscode/internal/llm"
	"github.com/fernwood/dresscode/internal/outfit"
	"github.com/fernwood/dresscode/internal/service"
	"github.com/fernwood/dresscode/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/dresscode/dresscode.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newOracle builds the oracle client from configuration. An unconfigured
// oracle is not an error; gap identification degrades to empty results.
func newOracle() llm.Client {
	cfg := llm.Config{
		Provider:    viper.GetString("oracle.provider"),
		APIKey:      viper.GetString("oracle.api_key"),
		Model:       viper.GetString("oracle.model"),
		MaxTokens:   viper.GetInt("oracle.max_tokens"),
		Temperature: viper.GetFloat64("oracle.temperature"),
		RateLimit:   viper.GetInt("oracle.rate_limit"),
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			slog.Warn("oracle misconfigured, gap identification disabled", "error", err)
		}
		return nil
	}
	return client
}

// initStylist wires storage, the generator, and the gap identifier into
// the engine.
func initStylist(ctx context.Context) (*engine.Stylist, service.Storage, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	generator := outfit.NewGenerator(outfit.NewShuffler())
	identifier := gaps.NewIdentifier(newOracle(), slog.Default())

	stylist, err := engine.New(store, generator, identifier, slog.Default())
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	return stylist, store, nil
}

func currentUser() string {
	return viper.GetString("user")
}
