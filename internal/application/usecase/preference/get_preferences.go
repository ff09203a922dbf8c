// Package preference contains display preference use cases.
package preference

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// GetPreferencesInput represents the input for reading display preferences.
type GetPreferencesInput struct {
	UserID uuid.UUID
}

// GetPreferencesOutput represents the output of reading display preferences.
type GetPreferencesOutput struct {
	Preferences *entity.Preferences
}

// GetPreferencesUseCase reads the user's display preferences, falling back
// to the defaults when none were ever saved.
type GetPreferencesUseCase struct {
	preferenceStore adapter.PreferenceStore
}

// NewGetPreferencesUseCase creates a new GetPreferencesUseCase instance.
func NewGetPreferencesUseCase(preferenceStore adapter.PreferenceStore) *GetPreferencesUseCase {
	return &GetPreferencesUseCase{
		preferenceStore: preferenceStore,
	}
}

// Execute retrieves the user's display preferences.
func (uc *GetPreferencesUseCase) Execute(ctx context.Context, input GetPreferencesInput) (*GetPreferencesOutput, error) {
	prefs, err := uc.preferenceStore.Get(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	return &GetPreferencesOutput{Preferences: prefs}, nil
}
