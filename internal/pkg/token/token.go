// Package token issues and validates the HS256 access tokens returned by login.
package token

import (
	"errors"
	"fmt"
	"time"

	"trippy/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "trippy"

// Claims carries the authenticated username in the standard subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// Issuer signs and parses access tokens with a shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates an Issuer. secret must be non-empty and ttl positive.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("jwt ttl", fmt.Errorf("%s is not positive", ttl))
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token whose subject is username.
func (i *Issuer) Issue(username string) (string, error) {
	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse validates raw and returns the username it was issued for.
// Every failure is reported as errs.ErrUnauthorized.
func (i *Issuer) Parse(raw string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrUnauthorized, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%w: %w", errs.ErrUnauthorized, errors.New("token has no subject"))
	}
	return claims.Subject, nil
}
