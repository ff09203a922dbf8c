// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// preferenceKeyPrefix namespaces preference keys in Redis.
const preferenceKeyPrefix = "fintrack:preferences:"

// preferenceStore implements the adapter.PreferenceStore interface on Redis.
// Preferences are a tiny per-user JSON blob with no relational ties, so the
// cache is their system of record.
type preferenceStore struct {
	client *redis.Client
}

// NewPreferenceStore creates a new Redis-backed preference store.
func NewPreferenceStore(client *redis.Client) adapter.PreferenceStore {
	return &preferenceStore{
		client: client,
	}
}

// Get retrieves the user's preferences, returning defaults when none were saved.
func (s *preferenceStore) Get(ctx context.Context, userID uuid.UUID) (*entity.Preferences, error) {
	payload, err := s.client.Get(ctx, preferenceKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.DefaultPreferences(), nil
		}
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var prefs entity.Preferences
	if err := json.Unmarshal([]byte(payload), &prefs); err != nil {
		return nil, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return &prefs, nil
}

// Save stores the user's preferences. The key carries no TTL, preferences
// live until overwritten.
func (s *preferenceStore) Save(ctx context.Context, userID uuid.UUID, prefs entity.Preferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err := s.client.Set(ctx, preferenceKey(userID), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

func preferenceKey(userID uuid.UUID) string {
	return preferenceKeyPrefix + userID.String()
}
