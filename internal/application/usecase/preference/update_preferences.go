// Package preference contains display preference use cases.
package preference

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// UpdatePreferencesInput represents the input for a preference update.
// A nil field keeps the stored value, so partial updates are safe.
type UpdatePreferencesInput struct {
	UserID     uuid.UUID
	Currency   *entity.Currency
	DateFormat *entity.DateFormat
}

// UpdatePreferencesOutput represents the output of a preference update.
type UpdatePreferencesOutput struct {
	Preferences *entity.Preferences
}

// UpdatePreferencesUseCase merges a partial update into the stored preferences.
type UpdatePreferencesUseCase struct {
	preferenceStore adapter.PreferenceStore
}

// NewUpdatePreferencesUseCase creates a new UpdatePreferencesUseCase instance.
func NewUpdatePreferencesUseCase(preferenceStore adapter.PreferenceStore) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{
		preferenceStore: preferenceStore,
	}
}

// Execute performs the preference update.
func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, input UpdatePreferencesInput) (*UpdatePreferencesOutput, error) {
	if input.Currency != nil && !entity.ValidCurrency(*input.Currency) {
		return nil, domainerror.NewPreferenceError(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be INR, USD, EUR or GBP",
			domainerror.ErrInvalidCurrency,
		)
	}
	if input.DateFormat != nil && !entity.ValidDateFormat(*input.DateFormat) {
		return nil, domainerror.NewPreferenceError(
			domainerror.ErrCodeInvalidDateFormat,
			"unknown date format",
			domainerror.ErrInvalidDateFormat,
		)
	}

	prefs, err := uc.preferenceStore.Get(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	if input.Currency != nil {
		prefs.Currency = *input.Currency
	}
	if input.DateFormat != nil {
		prefs.DateFormat = *input.DateFormat
	}

	if err := uc.preferenceStore.Save(ctx, input.UserID, *prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	return &UpdatePreferencesOutput{Preferences: prefs}, nil
}
