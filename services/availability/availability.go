// File: services/availability/availability.go
package availability

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"mindnest/clients"
	"mindnest/models"

	"go.uber.org/zap"
)

// BookingAPI is the slice of the booking service this service depends on.
type BookingAPI interface {
	ListTemplates(ctx context.Context, token string) ([]models.TimeSlotTemplate, error)
	CreateTemplate(ctx context.Context, token string, tpl models.TimeSlotTemplate) (*models.TimeSlotTemplate, error)
	UpdateTemplate(ctx context.Context, token string, tpl models.TimeSlotTemplate) (*models.TimeSlotTemplate, error)
	DeleteTemplate(ctx context.Context, token, templateID string) error
	GenerateSlots(ctx context.Context, token, templateID, from, to string) ([]models.BookingServiceSlot, error)
	ListSlots(ctx context.Context, token, therapistID, from, to string) ([]models.BookingServiceSlot, error)
	SetSlotActive(ctx context.Context, token, slotID string, active bool) error
}

// SummaryAPI is the slice of the therapist service that serves pre-aggregated
// calendar summaries (not every deployment has it).
type SummaryAPI interface {
	GetCalendarSummary(ctx context.Context, token, from, to string) (*models.CalendarSummary, error)
}

// Service manages a therapist's recurring templates and concrete slots,
// always through the canonical slot model.
type Service interface {
	Templates(ctx context.Context, token string) ([]models.TimeSlotTemplate, error)
	SaveTemplate(ctx context.Context, token string, tpl models.TimeSlotTemplate) (*models.TimeSlotTemplate, error)
	DeleteTemplate(ctx context.Context, token, templateID string) error
	Generate(ctx context.Context, token, templateID, from, to string) ([]models.TimeSlot, error)
	Slots(ctx context.Context, token, therapistID, from, to string) ([]models.TimeSlot, error)
	SetSlotStatus(ctx context.Context, token, slotID string, status models.SlotStatus) error
	Summary(ctx context.Context, token, therapistID, from, to string) (*models.CalendarSummary, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Booking  BookingAPI
	Calendar SummaryAPI
	Logger   *zap.Logger
}

func (s *DefaultService) Templates(ctx context.Context, token string) ([]models.TimeSlotTemplate, error) {
	return s.Booking.ListTemplates(ctx, token)
}

// SaveTemplate creates or updates depending on whether the template carries
// an id, after normalizing the weekday name.
func (s *DefaultService) SaveTemplate(ctx context.Context, token string, tpl models.TimeSlotTemplate) (*models.TimeSlotTemplate, error) {
	day, err := ParseWeekday(string(tpl.Weekday))
	if err != nil {
		return nil, err
	}
	tpl.Weekday = day
	if tpl.ID == "" {
		return s.Booking.CreateTemplate(ctx, token, tpl)
	}
	return s.Booking.UpdateTemplate(ctx, token, tpl)
}

func (s *DefaultService) DeleteTemplate(ctx context.Context, token, templateID string) error {
	return s.Booking.DeleteTemplate(ctx, token, templateID)
}

func (s *DefaultService) Generate(ctx context.Context, token, templateID, from, to string) ([]models.TimeSlot, error) {
	generated, err := s.Booking.GenerateSlots(ctx, token, templateID, from, to)
	if err != nil {
		return nil, err
	}
	return FromBookingServiceAll(generated), nil
}

func (s *DefaultService) Slots(ctx context.Context, token, therapistID, from, to string) ([]models.TimeSlot, error) {
	raw, err := s.Booking.ListSlots(ctx, token, therapistID, from, to)
	if err != nil {
		return nil, err
	}
	return FromBookingServiceAll(raw), nil
}

// SetSlotStatus flips a slot between available and blocked. Booked and
// cancelled are server-owned transitions the front-end must not request.
func (s *DefaultService) SetSlotStatus(ctx context.Context, token, slotID string, status models.SlotStatus) error {
	switch status {
	case models.SlotAvailable:
		return s.Booking.SetSlotActive(ctx, token, slotID, true)
	case models.SlotBlocked:
		return s.Booking.SetSlotActive(ctx, token, slotID, false)
	default:
		return fmt.Errorf("slot status %q is managed by the booking service", status)
	}
}

// Summary prefers the therapist service's pre-aggregated endpoint and falls
// back to computing from the raw slot list when it is absent.
func (s *DefaultService) Summary(ctx context.Context, token, therapistID, from, to string) (*models.CalendarSummary, error) {
	if s.Calendar != nil {
		summary, err := s.Calendar.GetCalendarSummary(ctx, token, from, to)
		if err == nil {
			return summary, nil
		}
		var apiErr *clients.APIError
		if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
			return nil, err
		}
		s.Logger.Debug("No pre-aggregated calendar endpoint, computing locally")
	}

	slots, err := s.Slots(ctx, token, therapistID, from, to)
	if err != nil {
		return nil, err
	}
	summary := Summarize(slots, from, to)
	return &summary, nil
}
