// Package token issues and verifies the signed access tokens that guard the
// HTTP API. Tokens are HMAC-signed JWTs carrying the account identity and
// role.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// DefaultTTL is the access token lifetime used when none is configured.
const DefaultTTL = 24 * time.Hour

var (
	// ErrSecretIsRequired is returned when constructing an issuer without a
	// signing secret.
	ErrSecretIsRequired = errors.New("token secret is required")
	// ErrTokenIsInvalid is returned when a presented token fails
	// verification for any reason, expiry included.
	ErrTokenIsInvalid = errors.New("token is invalid")
)

// Claims is the payload carried by an access token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies access tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates a token issuer. A non-positive ttl falls back to
// DefaultTTL.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given account. The subject claim carries the
// account identifier.
func (i *Issuer) Issue(userID, username, role string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.ttl)
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify parses and validates a presented token, returning its claims.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenIsInvalid
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrTokenIsInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenIsInvalid
	}
	return claims, nil
}
