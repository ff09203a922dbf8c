package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/integration/persistence/model"
)

type fakeTokenRepository struct {
	refreshTokens map[string]uuid.UUID
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{refreshTokens: make(map[string]uuid.UUID)}
}

func (r *fakeTokenRepository) SaveRefreshToken(_ context.Context, token string, userID uuid.UUID, _ time.Time) error {
	r.refreshTokens[token] = userID
	return nil
}

func (r *fakeTokenRepository) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	_, ok := r.refreshTokens[token]
	return ok, nil
}

func (r *fakeTokenRepository) InvalidateRefreshToken(_ context.Context, token string) error {
	delete(r.refreshTokens, token)
	return nil
}

func (r *fakeTokenRepository) SavePasswordResetToken(_ context.Context, _ string, _ uuid.UUID, _ string, _ time.Time) error {
	return nil
}

func (r *fakeTokenRepository) GetPasswordResetToken(_ context.Context, _ string) (*model.PasswordResetTokenModel, error) {
	return nil, nil
}

func (r *fakeTokenRepository) InvalidatePasswordResetToken(_ context.Context, _ string) error {
	return nil
}

func TestGenerateTokenPairRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", newFakeTokenRepository())
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(context.Background(), userID, "ana@example.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	claims, err := svc.ValidateAccessToken(context.Background(), pair.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("Email = %s, want ana@example.com", claims.Email)
	}

	refreshClaims, err := svc.ValidateRefreshToken(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("ValidateRefreshToken() error = %v", err)
	}
	if refreshClaims.UserID != userID {
		t.Errorf("refresh UserID = %s, want %s", refreshClaims.UserID, userID)
	}
}

// Pairs minted back to back land in the same second, and refresh tokens are
// stored under a unique index, so identical token strings would break login.
func TestGenerateTokenPairUniquePerCall(t *testing.T) {
	svc := NewTokenService("test-secret", newFakeTokenRepository())
	userID := uuid.New()

	first, err := svc.GenerateTokenPair(context.Background(), userID, "ana@example.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	second, err := svc.GenerateTokenPair(context.Background(), userID, "ana@example.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if first.RefreshToken == second.RefreshToken {
		t.Error("refresh tokens from consecutive calls must differ")
	}
	if first.AccessToken == second.AccessToken {
		t.Error("access tokens from consecutive calls must differ")
	}
}

func TestValidateAccessTokenRejectsRefreshToken(t *testing.T) {
	svc := NewTokenService("test-secret", newFakeTokenRepository())

	pair, err := svc.GenerateTokenPair(context.Background(), uuid.New(), "ana@example.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if _, err := svc.ValidateAccessToken(context.Background(), pair.RefreshToken); err == nil {
		t.Error("expected a refresh token to fail access token validation")
	}
}

func TestValidateRefreshTokenRejectsRevoked(t *testing.T) {
	svc := NewTokenService("test-secret", newFakeTokenRepository())

	pair, err := svc.GenerateTokenPair(context.Background(), uuid.New(), "ana@example.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if err := svc.InvalidateRefreshToken(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("InvalidateRefreshToken() error = %v", err)
	}
	if _, err := svc.ValidateRefreshToken(context.Background(), pair.RefreshToken); err == nil {
		t.Error("expected a revoked refresh token to fail validation")
	}
}
