package clients

import (
	"context"
	"net/http"
	"time"

	"mindnest/models"
)

// AuthClient wraps the auth service.
type AuthClient struct {
	*Client
}

// NewAuthClient returns a client for the auth service.
func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{Client: New(baseURL, timeout)}
}

func (c *AuthClient) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result models.AuthResult
	if err := c.Do(ctx, http.MethodPost, "/api/auth/login", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *AuthClient) Register(ctx context.Context, email, password, role string) (*models.AuthResult, error) {
	body := map[string]string{"email": email, "password": password, "role": role}
	var result models.AuthResult
	if err := c.Do(ctx, http.MethodPost, "/api/auth/register", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout notifies the auth service. Callers treat it as best-effort and clear
// local state regardless of the outcome.
func (c *AuthClient) Logout(ctx context.Context, token string) error {
	return c.Do(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil)
}

func (c *AuthClient) Refresh(ctx context.Context, refreshToken string) (*models.AuthResult, error) {
	body := map[string]string{"refreshToken": refreshToken}
	var result models.AuthResult
	if err := c.Do(ctx, http.MethodPost, "/api/auth/refresh-token", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// VerifyToken asks the auth service whether the access token is still valid.
func (c *AuthClient) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.Do(ctx, http.MethodGet, "/api/auth/verify-token", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
