package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Profile is the authenticated operator identity from GET /admin/auth/me.
type Profile struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login exchanges credentials for a bearer token. The token field name has
// drifted across backend versions, so both spellings are accepted.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, "/admin/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	var result struct {
		Token       string `json:"token"`
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("failed to parse login response: %w", err)
	}
	token := result.Token
	if token == "" {
		token = result.AccessToken
	}
	if token == "" {
		return "", errors.New("login response contained no token")
	}
	return token, nil
}

// Me returns the identity behind the configured token.
func (c *Client) Me(ctx context.Context) (Profile, error) {
	raw, err := c.get(ctx, "/admin/auth/me")
	if err != nil {
		return Profile{}, err
	}
	var profile Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile response: %w", err)
	}
	return profile, nil
}
