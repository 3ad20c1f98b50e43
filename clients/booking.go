package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"mindnest/models"
)

// BookingClient wraps the booking service: template CRUD, slot generation and
// listing, and booking lifecycle.
type BookingClient struct {
	*Client
}

// NewBookingClient returns a client for the booking service.
func NewBookingClient(baseURL string, timeout time.Duration) *BookingClient {
	return &BookingClient{Client: New(baseURL, timeout)}
}

func (c *BookingClient) ListTemplates(ctx context.Context, token string) ([]models.TimeSlotTemplate, error) {
	var templates []models.TimeSlotTemplate
	if err := c.Do(ctx, http.MethodGet, "/api/templates", token, nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (c *BookingClient) CreateTemplate(ctx context.Context, token string, tpl models.TimeSlotTemplate) (*models.TimeSlotTemplate, error) {
	var created models.TimeSlotTemplate
	if err := c.Do(ctx, http.MethodPost, "/api/templates", token, tpl, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *BookingClient) UpdateTemplate(ctx context.Context, token string, tpl models.TimeSlotTemplate) (*models.TimeSlotTemplate, error) {
	var updated models.TimeSlotTemplate
	path := "/api/templates/" + url.PathEscape(tpl.ID)
	if err := c.Do(ctx, http.MethodPut, path, token, tpl, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *BookingClient) DeleteTemplate(ctx context.Context, token, templateID string) error {
	return c.Do(ctx, http.MethodDelete, "/api/templates/"+url.PathEscape(templateID), token, nil, nil)
}

// GenerateSlots materializes concrete slots from a template over a date range.
func (c *BookingClient) GenerateSlots(ctx context.Context, token, templateID, from, to string) ([]models.BookingServiceSlot, error) {
	body := map[string]string{"templateId": templateID, "from": from, "to": to}
	var slots []models.BookingServiceSlot
	if err := c.Do(ctx, http.MethodPost, "/api/timeslots/generate", token, body, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// ListSlots fetches slots for a therapist over a date window. Pass the same
// date twice to scope to a single day.
func (c *BookingClient) ListSlots(ctx context.Context, token, therapistID, from, to string) ([]models.BookingServiceSlot, error) {
	path := fmt.Sprintf("/api/timeslots?therapistId=%s&from=%s&to=%s",
		url.QueryEscape(therapistID), url.QueryEscape(from), url.QueryEscape(to))
	var slots []models.BookingServiceSlot
	if err := c.Do(ctx, http.MethodGet, path, token, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *BookingClient) SetSlotActive(ctx context.Context, token, slotID string, active bool) error {
	body := map[string]bool{"isActive": active}
	path := "/api/timeslots/" + url.PathEscape(slotID) + "/active"
	return c.Do(ctx, http.MethodPut, path, token, body, nil)
}

func (c *BookingClient) CreateBooking(ctx context.Context, token string, input models.CreateBookingInput) (*models.Booking, error) {
	var booking models.Booking
	if err := c.Do(ctx, http.MethodPost, "/api/bookings", token, input, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListBookings fetches bookings for the authenticated principal, optionally
// filtered by status.
func (c *BookingClient) ListBookings(ctx context.Context, token, status string) ([]models.Booking, error) {
	path := "/api/bookings"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var bookings []models.Booking
	if err := c.Do(ctx, http.MethodGet, path, token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *BookingClient) GetBooking(ctx context.Context, token, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := c.Do(ctx, http.MethodGet, "/api/bookings/"+url.PathEscape(bookingID), token, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *BookingClient) CancelBooking(ctx context.Context, token, bookingID, reason string) (*models.Booking, error) {
	body := map[string]string{"reason": reason}
	var booking models.Booking
	path := "/api/bookings/" + url.PathEscape(bookingID) + "/cancel"
	if err := c.Do(ctx, http.MethodPost, path, token, body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *BookingClient) CompleteBooking(ctx context.Context, token, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	path := "/api/bookings/" + url.PathEscape(bookingID) + "/complete"
	if err := c.Do(ctx, http.MethodPost, path, token, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *BookingClient) MarkNoShow(ctx context.Context, token, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	path := "/api/bookings/" + url.PathEscape(bookingID) + "/no-show"
	if err := c.Do(ctx, http.MethodPost, path, token, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
