package preference

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

type fakePreferenceStore struct {
	saved map[uuid.UUID]entity.Preferences
}

func newFakePreferenceStore() *fakePreferenceStore {
	return &fakePreferenceStore{saved: make(map[uuid.UUID]entity.Preferences)}
}

func (s *fakePreferenceStore) Get(_ context.Context, userID uuid.UUID) (*entity.Preferences, error) {
	if prefs, ok := s.saved[userID]; ok {
		return &prefs, nil
	}
	return entity.DefaultPreferences(), nil
}

func (s *fakePreferenceStore) Save(_ context.Context, userID uuid.UUID, prefs entity.Preferences) error {
	s.saved[userID] = prefs
	return nil
}

func TestGetPreferencesDefaults(t *testing.T) {
	store := newFakePreferenceStore()
	uc := NewGetPreferencesUseCase(store)

	output, err := uc.Execute(context.Background(), GetPreferencesInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Preferences.Currency != entity.CurrencyINR {
		t.Errorf("Currency = %s, want INR", output.Preferences.Currency)
	}
	if output.Preferences.DateFormat != entity.DateFormatDMY {
		t.Errorf("DateFormat = %s, want DD/MM/YYYY", output.Preferences.DateFormat)
	}
}

func TestUpdatePreferencesPartial(t *testing.T) {
	store := newFakePreferenceStore()
	userID := uuid.New()
	usd := entity.CurrencyUSD

	uc := NewUpdatePreferencesUseCase(store)
	output, err := uc.Execute(context.Background(), UpdatePreferencesInput{
		UserID:   userID,
		Currency: &usd,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Preferences.Currency != entity.CurrencyUSD {
		t.Errorf("Currency = %s, want USD", output.Preferences.Currency)
	}
	// The untouched field keeps its stored value.
	if output.Preferences.DateFormat != entity.DateFormatDMY {
		t.Errorf("DateFormat = %s, want DD/MM/YYYY", output.Preferences.DateFormat)
	}

	saved := store.saved[userID]
	if saved.Currency != entity.CurrencyUSD {
		t.Errorf("stored Currency = %s, want USD", saved.Currency)
	}
}

func TestUpdatePreferencesValidation(t *testing.T) {
	badCurrency := entity.Currency("JPY")
	badFormat := entity.DateFormat("DD.MM.YYYY")

	tests := []struct {
		name    string
		input   UpdatePreferencesInput
		wantErr error
	}{
		{
			name:    "unsupported currency",
			input:   UpdatePreferencesInput{UserID: uuid.New(), Currency: &badCurrency},
			wantErr: domainerror.ErrInvalidCurrency,
		},
		{
			name:    "unsupported date format",
			input:   UpdatePreferencesInput{UserID: uuid.New(), DateFormat: &badFormat},
			wantErr: domainerror.ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakePreferenceStore()
			uc := NewUpdatePreferencesUseCase(store)

			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
			if len(store.saved) != 0 {
				t.Error("invalid preferences must not be saved")
			}
		})
	}
}
