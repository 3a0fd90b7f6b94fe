package auth

import (
	"testing"
	"time"

	"passport/config"
	domainerrors "passport/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"
	cfg.SecretKey.Reset = "test_reset_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_SignAndVerifyResetToken(t *testing.T) {
	tokenService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)
	require.NotNil(t, tokenService)

	userID := uuid.New()

	signed, err := tokenService.SignResetToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, signed.Value)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), signed.ExpiresAt, 5*time.Second)

	got, err := tokenService.VerifyResetToken(signed.Value)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_SignSessionToken(t *testing.T) {
	tokenService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	signed, err := tokenService.SignSessionToken(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, signed.Value)
	assert.WithinDuration(t, time.Now().Add(time.Hour), signed.ExpiresAt, 5*time.Second)
}

func TestJWTService_VerifyResetToken_RejectsSessionToken(t *testing.T) {
	tokenService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	// Session tokens are signed with a different key, so the reset
	// verification must not accept them.
	signed, err := tokenService.SignSessionToken(uuid.New())
	require.NoError(t, err)

	got, err := tokenService.VerifyResetToken(signed.Value)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
	assert.True(t, errors.Is(err, domainerrors.ErrSignatureInvalid))
}

func TestJWTService_VerifyResetToken_Garbage(t *testing.T) {
	tokenService, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	got, err := tokenService.VerifyResetToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
	assert.True(t, errors.Is(err, domainerrors.ErrSignatureInvalid))
}

func TestJWTService_VerifyResetToken_ExpiredClaimStillVerifies(t *testing.T) {
	tokenService := &jwtService{
		sessionSecret: "test_session_secret_key_very_long_for_testing",
		resetSecret:   "test_reset_secret_key_very_long_for_testing",
		sessionTTL:    time.Hour,
		resetTTL:      -time.Minute,
	}

	userID := uuid.New()
	signed, err := tokenService.SignResetToken(userID)
	require.NoError(t, err)

	// Expiry is judged against the persisted timestamp, not the claim, so the
	// signature check alone still passes for a token past its exp claim.
	got, err := tokenService.VerifyResetToken(signed.Value)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	tokenService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, tokenService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_Durations(t *testing.T) {
	cfg := testTokenConfig()
	cfg.Token = &config.TokenConfig{
		SessionTTL: 2 * time.Hour,
		ResetTTL:   10 * time.Minute,
	}

	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, tokenService.SessionTokenDuration())
	assert.Equal(t, 10*time.Minute, tokenService.ResetTokenDuration())
}
