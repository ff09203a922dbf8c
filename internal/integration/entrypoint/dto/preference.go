package dto

import (
	"github.com/fintrack/backend/internal/domain/entity"
)

// UpdatePreferencesRequest represents the payload for a preferences update.
// Omitted fields keep their current value.
type UpdatePreferencesRequest struct {
	Currency   *string `json:"currency"`
	DateFormat *string `json:"dateFormat"`
}

// PreferencesResponse represents a user's display preferences.
type PreferencesResponse struct {
	Currency   string `json:"currency"`
	DateFormat string `json:"dateFormat"`
}

// ToPreferencesResponse converts a preferences entity to its API representation.
func ToPreferencesResponse(prefs *entity.Preferences) PreferencesResponse {
	return PreferencesResponse{
		Currency:   string(prefs.Currency),
		DateFormat: string(prefs.DateFormat),
	}
}
