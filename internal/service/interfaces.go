// Package service defines the interfaces for the engine's collaborators.
package service

import (
	"context"
	"time"

	"github.com/fernwood/dresscode/internal/model"
)

// Storage defines the contract for the persistence layer. The engine
// never owns a schema; it consumes whatever store satisfies this.
type Storage interface {
	// Garment operations
	SaveGarment(ctx context.Context, garment *model.Garment) error
	GetGarments(ctx context.Context, userID string) ([]model.Garment, error)
	GetGarmentByID(ctx context.Context, id string) (*model.Garment, error)
	DeleteGarment(ctx context.Context, id string) error

	// Preference operations
	GetPreferences(ctx context.Context, userID string) (*model.PreferenceProfile, error)
	SavePreferences(ctx context.Context, prefs *model.PreferenceProfile) error

	// Gap cache operations, keyed by the lower-cased search term
	UpsertGapItem(ctx context.Context, item *model.CachedGapItem) error
	GetGapItems(ctx context.Context, terms []string) ([]model.CachedGapItem, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for collaborator calls.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
