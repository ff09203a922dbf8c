// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
)

// PreferenceStore defines the interface for per-user display preferences.
// A user with no saved preferences resolves to entity.DefaultPreferences.
type PreferenceStore interface {
	// Get returns the user's preferences, or the defaults when none are saved.
	Get(ctx context.Context, userID uuid.UUID) (*entity.Preferences, error)

	// Save persists the user's preferences, replacing any previous value.
	Save(ctx context.Context, userID uuid.UUID, prefs entity.Preferences) error
}
