// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"passport/config"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	sessionSecret string        // Secret key for signing session tokens.
	resetSecret   string        // Secret key for signing password reset tokens.
	sessionTTL    time.Duration // Time-to-live for session tokens.
	resetTTL      time.Duration // Time-to-live for password reset tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" || cfg.SecretKey.Reset == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	sessionTTL := time.Hour
	resetTTL := 15 * time.Minute
	if cfg.Token != nil {
		if cfg.Token.SessionTTL > 0 {
			sessionTTL = cfg.Token.SessionTTL
		}
		if cfg.Token.ResetTTL > 0 {
			resetTTL = cfg.Token.ResetTTL
		}
	}

	return &jwtService{
		sessionSecret: cfg.SecretKey.Session,
		resetSecret:   cfg.SecretKey.Reset,
		sessionTTL:    sessionTTL,
		resetTTL:      resetTTL,
	}, nil
}

// SignSessionToken creates a signed session token bound to the given user.
func (s *jwtService) SignSessionToken(userID uuid.UUID) (*service.SignedToken, error) {
	return s.sign(userID, s.sessionTTL, s.sessionSecret, "session")
}

// SignResetToken creates a signed password reset token bound to the given user.
func (s *jwtService) SignResetToken(userID uuid.UUID) (*service.SignedToken, error) {
	return s.sign(userID, s.resetTTL, s.resetSecret, "reset")
}

// VerifyResetToken checks a reset token's signature against the reset key and
// returns the embedded user id.
func (s *jwtService) VerifyResetToken(tokenString string) (uuid.UUID, error) {
	// Claim validation is skipped on purpose: expiry is judged against the
	// persisted expiry timestamp, after this signature check, so an expired
	// token still reports as expired rather than as a bad signature.
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.resetSecret), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !token.Valid {
		return uuid.Nil, domainerrors.ErrSignatureInvalid.WrapMessage("reset token signature verification failed")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domainerrors.ErrSignatureInvalid.WrapMessage("unexpected reset token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, domainerrors.ErrSignatureInvalid.WrapMessage("user id missing from reset token")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, domainerrors.ErrSignatureInvalid.WrapMessage("invalid user id in reset token")
	}

	return userID, nil
}

// SessionTokenDuration returns the configured session TTL.
func (s *jwtService) SessionTokenDuration() time.Duration {
	return s.sessionTTL
}

// ResetTokenDuration returns the configured reset TTL.
func (s *jwtService) ResetTokenDuration() time.Duration {
	return s.resetTTL
}

// sign is a private helper to create a JWT with specific claims.
func (s *jwtService) sign(userID uuid.UUID, ttl time.Duration, secret, tokenType string) (*service.SignedToken, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := jwt.MapClaims{
		"sub":  userID.String(),  // Subject (who the token is for)
		"iat":  now.Unix(),       // Issued At
		"exp":  expiresAt.Unix(), // Expiration Time
		"type": tokenType,        // Type of token (session or reset)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &service.SignedToken{Value: signed, ExpiresAt: expiresAt}, nil
}
