package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims fliitsctl cares about in the admin bearer token.
// The token is issued and verified by the backend; the CLI only decodes it
// to show identity details and to seed the cached role after login.
type TokenClaims struct {
	Subject   string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// ParseToken decodes a JWT bearer token without verifying its signature.
// The CLI has no signing key; verification is the server's job.
func ParseToken(token string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	out := &TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// CanWrite reports whether the role may perform mutations.
// Only admins can write; managers and support staff are read-only.
func CanWrite(role string) bool {
	return strings.ToLower(role) == "admin"
}

// CanRead reports whether the role may use the console at all.
func CanRead(role string) bool {
	switch strings.ToLower(role) {
	case "admin", "manager", "support":
		return true
	}
	return false
}
