// Package auth verifies bearer tokens issued by the external identity
// service. This service never issues tokens — it only validates them against
// the pre-shared signing key and extracts the caller identity.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures are split in two because callers surface them as
// different statuses: an absent credential vs a present-but-bad one.
var (
	ErrTokenMissing = errors.New("authorization token is required")
	ErrTokenInvalid = errors.New("token is invalid or has expired")
)

// Identity is the verified caller identity extracted from a valid token.
// It lives for exactly one request and has no persistence of its own.
type Identity struct {
	UserID int64
}

// Verifier validates HS256 access tokens against a pre-shared signing key.
// It performs only in-memory cryptographic work and never blocks.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier.
// secret must be at least 32 characters for HS256 security (enforced by config).
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// accessClaims mirrors the payload of tokens issued by the identity service:
// standard registered claims plus the numeric user_id.
type accessClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// VerifyToken parses and validates an access token and returns the embedded
// identity.
//
// An empty token fails with ErrTokenMissing before any cryptographic work.
// A bad signature, expired token, unexpected signing algorithm, or missing
// user_id claim all fail with ErrTokenInvalid — the specific cryptographic
// cause is not distinguished.
func (v *Verifier) VerifyToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, ErrTokenMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, ErrTokenInvalid
	}

	if claims.UserID <= 0 {
		return Identity{}, fmt.Errorf("%w: missing user_id claim", ErrTokenInvalid)
	}

	return Identity{UserID: claims.UserID}, nil
}
