// Package auth issues and verifies session tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/William0209/backend-last/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is how long a session token stays valid after issuance.
const TokenValidity = time.Hour

// Claims are the registered claims plus the owning user's id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// TokenIssuer signs and verifies HS256 session tokens with a single secret.
// It holds no mutable state and is safe for concurrent use.
type TokenIssuer struct {
	secretKey []byte
	now       func() time.Time
}

// Option customizes a TokenIssuer.
type Option func(*TokenIssuer)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *TokenIssuer) {
		t.now = now
	}
}

func NewTokenIssuer(secretKey []byte, opts ...Option) (*TokenIssuer, error) {
	if len(secretKey) == 0 {
		return nil, errors.New("token issuer: empty secret key")
	}
	t := &TokenIssuer{secretKey: secretKey, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Issue returns a token for userID valid for TokenValidity. Token times have
// one second precision, so the clock is truncated before use.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	issuedAt := t.now().Truncate(time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenValidity)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(t.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}

// Verify checks the signature and expiry of tokenString and returns the
// embedded user id. A token is still accepted at its exact expiry instant.
// Errors are common.ErrInvalidToken or common.ErrTokenExpired.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return t.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if claims.ExpiresAt == nil || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}
	if t.now().After(claims.ExpiresAt.Time) {
		return "", common.ErrTokenExpired
	}

	return claims.UserID, nil
}
