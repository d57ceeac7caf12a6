// Package auth reads identity claims out of the bearer credential issued by
// the skillfit backend.
//
// Nothing here verifies a signature: the client has no key, so the claims are
// whatever the token asserts. The backend re-checks the role on every request;
// the values decoded here only decide which screens the client offers.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the account kind carried in the credential.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

var (
	ErrMalformedCredential = errors.New("malformed credential")
	ErrMissingRole         = errors.New("credential has no role")
)

// Claims is the client-readable part of a credential.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Expired reports whether the credential carries an expiry at or before now.
// Credentials without "exp" never expire on the client side.
func (c Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Before(c.ExpiresAt.Time)
}

var segmentDecoder = jwt.NewParser()

// Decode extracts Claims from the middle segment of a three-part credential.
// On any failure the zero Claims is returned together with an error wrapping
// ErrMalformedCredential.
func Decode(credential string) (Claims, error) {
	parts := strings.Split(credential, ".")
	if len(parts) != 3 {
		return Claims{}, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedCredential, len(parts))
	}

	payload, err := segmentDecoder.DecodeSegment(parts[1])
	if err != nil {
		return Claims{}, fmt.Errorf("%w: decode payload: %v", ErrMalformedCredential, err)
	}

	var c Claims
	if err := json.Unmarshal(payload, &c); err != nil {
		return Claims{}, fmt.Errorf("%w: parse payload: %v", ErrMalformedCredential, err)
	}

	if c.Role == "" {
		return Claims{}, fmt.Errorf("%w: %w", ErrMalformedCredential, ErrMissingRole)
	}
	if !c.Role.Valid() {
		return Claims{}, fmt.Errorf("%w: unknown role %q", ErrMalformedCredential, c.Role)
	}

	return c, nil
}
