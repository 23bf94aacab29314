package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMissing is returned when a request carries no bearer token.
	ErrTokenMissing = errors.New("access token is required")
	// ErrTokenInvalid is returned for a malformed, tampered, or expired token.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims defines the JWT claims structure.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies signed bearer tokens. The signing secret is
// process configuration injected once at startup; issuance and verification
// are otherwise pure functions of their input.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer signing with secret. Tokens expire
// after ttl; a non-positive ttl issues tokens with no expiry claim.
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue creates a new signed token embedding the given user ID.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if t.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(t.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks the signature and structure of tokenStr and returns the
// embedded user ID. Any failure, signature mismatch included, surfaces as
// ErrTokenInvalid.
func (t *TokenIssuer) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrTokenInvalid
	}
	return claims.UserID, nil
}
