package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fintrack/backend/internal/domain/entity"
)

func newTestStore(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestPreferenceStoreDefaults(t *testing.T) {
	_, client := newTestStore(t)
	store := NewPreferenceStore(client)

	prefs, err := store.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if prefs.Currency != entity.CurrencyINR {
		t.Errorf("Currency = %s, want INR", prefs.Currency)
	}
	if prefs.DateFormat != entity.DateFormatDMY {
		t.Errorf("DateFormat = %s, want DD/MM/YYYY", prefs.DateFormat)
	}
}

func TestPreferenceStoreRoundTrip(t *testing.T) {
	_, client := newTestStore(t)
	store := NewPreferenceStore(client)
	userID := uuid.New()

	saved := entity.Preferences{
		Currency:   entity.CurrencyEUR,
		DateFormat: entity.DateFormatYMD,
	}
	if err := store.Save(context.Background(), userID, saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Currency != entity.CurrencyEUR {
		t.Errorf("Currency = %s, want EUR", got.Currency)
	}
	if got.DateFormat != entity.DateFormatYMD {
		t.Errorf("DateFormat = %s, want YYYY-MM-DD", got.DateFormat)
	}
}

func TestPreferenceStoreIsolatedPerUser(t *testing.T) {
	_, client := newTestStore(t)
	store := NewPreferenceStore(client)
	first := uuid.New()
	second := uuid.New()

	if err := store.Save(context.Background(), first, entity.Preferences{
		Currency:   entity.CurrencyGBP,
		DateFormat: entity.DateFormatMDY,
	}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	prefs, err := store.Get(context.Background(), second)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if prefs.Currency != entity.CurrencyINR {
		t.Errorf("second user's Currency = %s, want default INR", prefs.Currency)
	}
}

func TestPreferenceStoreKeyNamespace(t *testing.T) {
	mr, client := newTestStore(t)
	store := NewPreferenceStore(client)
	userID := uuid.New()

	if err := store.Save(context.Background(), userID, *entity.DefaultPreferences()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if !mr.Exists("fintrack:preferences:" + userID.String()) {
		t.Error("expected the preference key to be namespaced under fintrack:preferences:")
	}
}
