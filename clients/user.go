package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mindnest/models"
)

// UserClient wraps the user service: profile, preferences and account ops.
type UserClient struct {
	*Client
}

// NewUserClient returns a client for the user service.
func NewUserClient(baseURL string, timeout time.Duration) *UserClient {
	return &UserClient{Client: New(baseURL, timeout)}
}

func (c *UserClient) GetProfile(ctx context.Context, token string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.Do(ctx, http.MethodGet, "/api/profile/me", token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *UserClient) UpdateProfile(ctx context.Context, token string, profile models.UserProfile) (*models.UserProfile, error) {
	var updated models.UserProfile
	if err := c.Do(ctx, http.MethodPut, "/api/profile/me", token, profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *UserClient) GetPreferences(ctx context.Context, token string) (*models.Preferences, error) {
	var prefs models.Preferences
	if err := c.Do(ctx, http.MethodGet, "/api/preferences/me", token, nil, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (c *UserClient) UpdatePreferences(ctx context.Context, token string, prefs models.Preferences) (*models.Preferences, error) {
	var updated models.Preferences
	if err := c.Do(ctx, http.MethodPut, "/api/preferences/me", token, prefs, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *UserClient) ResetPreferences(ctx context.Context, token string) (*models.Preferences, error) {
	var prefs models.Preferences
	if err := c.Do(ctx, http.MethodPost, "/api/preferences/me/reset", token, nil, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (c *UserClient) DeleteAccount(ctx context.Context, token string) error {
	return c.Do(ctx, http.MethodDelete, "/api/users/me", token, nil, nil)
}

// ListUsers returns every platform user. Admin-only upstream.
func (c *UserClient) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := c.Do(ctx, http.MethodGet, "/api/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ExportData returns the user's raw data export as the service produced it.
func (c *UserClient) ExportData(ctx context.Context, token string) (json.RawMessage, error) {
	var export json.RawMessage
	if err := c.Do(ctx, http.MethodGet, "/api/users/me/export", token, nil, &export); err != nil {
		return nil, err
	}
	return export, nil
}
