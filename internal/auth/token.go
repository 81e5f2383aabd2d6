package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"creatorhub/internal/apperr"
)

// TokenIssuer signs and verifies stateless session tokens. Tokens stay valid
// until natural expiry; there is no revocation list.
type TokenIssuer struct {
	secret   []byte
	method   jwt.SigningMethod
	lifetime time.Duration
}

// NewTokenIssuer builds an issuer for the named HMAC algorithm.
func NewTokenIssuer(secret, alg string, lifetime time.Duration) (*TokenIssuer, error) {
	method := jwt.GetSigningMethod(alg)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm %q", alg)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not HMAC-based", alg)
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		method:   method,
		lifetime: lifetime,
	}, nil
}

// Issue encodes the user id as subject with an absolute expiry.
func (i *TokenIssuer) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
	}
	token, err := jwt.NewWithClaims(i.method, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify validates signature and expiry and returns the embedded user id.
// Any failure, including a missing or non-numeric subject, is reported as
// Unauthenticated without leaking the cause.
func (i *TokenIssuer) Verify(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != i.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, apperr.Unauthenticated("Invalid authentication")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, apperr.Unauthenticated("Invalid authentication")
	}
	return userID, nil
}
