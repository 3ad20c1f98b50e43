package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mindnest/models"
)

// TherapistClient wraps the therapist service: search, public profiles,
// professional profile CRUD, the legacy availability API and client/session
// history.
type TherapistClient struct {
	*Client
}

// NewTherapistClient returns a client for the therapist service.
func NewTherapistClient(baseURL string, timeout time.Duration) *TherapistClient {
	return &TherapistClient{Client: New(baseURL, timeout)}
}

func (c *TherapistClient) Search(ctx context.Context, token string, filters models.TherapistSearchFilters) ([]models.TherapistSummary, error) {
	q := url.Values{}
	if filters.Query != "" {
		q.Set("query", filters.Query)
	}
	if filters.Specialization != "" {
		q.Set("specialization", filters.Specialization)
	}
	if filters.Approach != "" {
		q.Set("approach", filters.Approach)
	}
	if filters.MaxRate > 0 {
		q.Set("maxRate", strconv.FormatFloat(filters.MaxRate, 'f', -1, 64))
	}
	if filters.VerifiedOnly {
		q.Set("verifiedOnly", "true")
	}
	if filters.Page > 0 {
		q.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.PerPage > 0 {
		q.Set("perPage", strconv.Itoa(filters.PerPage))
	}

	path := "/api/therapists/search"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var results []models.TherapistSummary
	if err := c.Do(ctx, http.MethodGet, path, token, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *TherapistClient) GetPublic(ctx context.Context, token, therapistID string) (*models.TherapistProfile, error) {
	var profile models.TherapistProfile
	path := "/api/therapists/public/" + url.PathEscape(therapistID)
	if err := c.Do(ctx, http.MethodGet, path, token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *TherapistClient) GetOwnProfile(ctx context.Context, token string) (*models.TherapistProfile, error) {
	var profile models.TherapistProfile
	if err := c.Do(ctx, http.MethodGet, "/api/therapist-profile/me", token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *TherapistClient) UpdateOwnProfile(ctx context.Context, token string, profile models.TherapistProfile) (*models.TherapistProfile, error) {
	var updated models.TherapistProfile
	if err := c.Do(ctx, http.MethodPut, "/api/therapist-profile/me", token, profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *TherapistClient) ListSpecializations(ctx context.Context, token string) ([]models.Specialization, error) {
	var items []models.Specialization
	if err := c.Do(ctx, http.MethodGet, "/api/therapist-profile/specializations", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *TherapistClient) ListApproaches(ctx context.Context, token string) ([]models.Approach, error) {
	var items []models.Approach
	if err := c.Do(ctx, http.MethodGet, "/api/therapist-profile/approaches", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *TherapistClient) SetSpecializations(ctx context.Context, token string, ids []string) error {
	body := map[string][]string{"specializationIds": ids}
	return c.Do(ctx, http.MethodPut, "/api/therapist-profile/me/specializations", token, body, nil)
}

func (c *TherapistClient) SetApproaches(ctx context.Context, token string, ids []string) error {
	body := map[string][]string{"approachIds": ids}
	return c.Do(ctx, http.MethodPut, "/api/therapist-profile/me/approaches", token, body, nil)
}

// ListAvailability fetches slots from the legacy availability API, which keys
// days numerically and reports a status enum.
func (c *TherapistClient) ListAvailability(ctx context.Context, token, from, to string) ([]models.LegacySlot, error) {
	path := fmt.Sprintf("/api/availability/slots?from=%s&to=%s", url.QueryEscape(from), url.QueryEscape(to))
	var slots []models.LegacySlot
	if err := c.Do(ctx, http.MethodGet, path, token, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// SetSlotStatus flips one legacy slot to the given status enum value.
func (c *TherapistClient) SetSlotStatus(ctx context.Context, token, slotID, status string) error {
	body := map[string]string{"status": status}
	path := "/api/availability/slots/" + url.PathEscape(slotID) + "/status"
	return c.Do(ctx, http.MethodPut, path, token, body, nil)
}

// GetCalendarSummary fetches the pre-aggregated calendar summary when the
// deployment provides one. A 404 means the caller computes it locally.
func (c *TherapistClient) GetCalendarSummary(ctx context.Context, token, from, to string) (*models.CalendarSummary, error) {
	path := fmt.Sprintf("/api/availability/calendar?from=%s&to=%s", url.QueryEscape(from), url.QueryEscape(to))
	var summary models.CalendarSummary
	if err := c.Do(ctx, http.MethodGet, path, token, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListPendingVerification returns therapist profiles awaiting verification.
// Admin-only upstream.
func (c *TherapistClient) ListPendingVerification(ctx context.Context, token string) ([]models.TherapistProfile, error) {
	var items []models.TherapistProfile
	if err := c.Do(ctx, http.MethodGet, "/api/therapist-profile/verification/pending", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *TherapistClient) ListClients(ctx context.Context, token string) ([]models.ClientSummary, error) {
	var items []models.ClientSummary
	if err := c.Do(ctx, http.MethodGet, "/api/clients", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *TherapistClient) ListSessions(ctx context.Context, token, clientID string) ([]models.TherapySession, error) {
	path := "/api/clients/" + url.PathEscape(clientID) + "/sessions"
	var items []models.TherapySession
	if err := c.Do(ctx, http.MethodGet, path, token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
