// File: services/wizard/wizard.go
package wizard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"mindnest/models"
	"mindnest/services/availability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// DefaultWindowDays is the size of the initial availability window.
const DefaultWindowDays = 30

// BookingAPI is the slice of the booking service the wizard depends on.
type BookingAPI interface {
	ListSlots(ctx context.Context, token, therapistID, from, to string) ([]models.BookingServiceSlot, error)
	CreateBooking(ctx context.Context, token string, input models.CreateBookingInput) (*models.Booking, error)
}

// Service drives the three-step booking flow. Each step loads the persisted
// session, applies exactly one transition and saves it back; the flow is
// strictly linear with single-step back navigation.
type Service interface {
	Start(ctx context.Context, token, patientID, therapistID string) (*models.WizardSession, error)
	SetWindow(ctx context.Context, token, id, from, to string) (*models.WizardSession, error)
	SelectDate(ctx context.Context, token, id, date string) (*models.WizardSession, error)
	SelectSlot(ctx context.Context, id, slotID string) (*models.WizardSession, error)
	Back(ctx context.Context, id string) (*models.WizardSession, error)
	Confirm(ctx context.Context, token, id, notes string) (*models.Booking, error)
	Cancel(ctx context.Context, id string) error
}

// DefaultService implements Service.
type DefaultService struct {
	Booking BookingAPI
	Store   Store
	Logger  *zap.Logger
	Now     func() time.Time
}

func (s *DefaultService) today() time.Time {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Start resets all wizard state and loads availability for the default
// window of [today, today+30d].
func (s *DefaultService) Start(ctx context.Context, token, patientID, therapistID string) (*models.WizardSession, error) {
	today := s.today()
	session := models.WizardSession{
		ID:          uuid.New().String(),
		PatientID:   patientID,
		TherapistID: therapistID,
		Step:        models.StepSelectDate,
		WindowFrom:  today.Format(dateLayout),
		WindowTo:    today.AddDate(0, 0, DefaultWindowDays).Format(dateLayout),
	}
	if err := s.loadAvailableDates(ctx, token, &session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SetWindow applies an operator-supplied date range. The start is clamped to
// today and the end is clamped to the start, then availability is re-derived.
func (s *DefaultService) SetWindow(ctx context.Context, token, id, from, to string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelectDate {
		return nil, fmt.Errorf("date range can only be changed on the %s step", models.StepSelectDate)
	}

	fromDate, err := time.Parse(dateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", from, err)
	}
	toDate, err := time.Parse(dateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", to, err)
	}
	if today := s.today(); fromDate.Before(today) {
		fromDate = today
	}
	if toDate.Before(fromDate) {
		toDate = fromDate
	}

	session.WindowFrom = fromDate.Format(dateLayout)
	session.WindowTo = toDate.Format(dateLayout)
	if err := s.loadAvailableDates(ctx, token, session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDate fetches slots scoped to the picked date and advances to the
// time-slot step.
func (s *DefaultService) SelectDate(ctx context.Context, token, id, date string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelectDate {
		return nil, fmt.Errorf("cannot select a date on the %s step", session.Step)
	}
	found := false
	for _, d := range session.AvailableDates {
		if d == date {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("date %s has no available slots", date)
	}

	raw, err := s.Booking.ListSlots(ctx, token, session.TherapistID, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots for %s: %w", date, err)
	}
	slots := make([]models.TimeSlot, 0, len(raw))
	for _, r := range raw {
		slot := availability.FromBookingService(r)
		if slot.Open() {
			slots = append(slots, slot)
		}
	}

	session.SelectedDate = date
	session.DateSlots = slots
	session.SelectedSlot = nil
	session.Step = models.StepSelectTime
	if err := s.Store.Save(ctx, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectSlot advances to the confirm step. The slot object is already held;
// no further fetch happens.
func (s *DefaultService) SelectSlot(ctx context.Context, id, slotID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelectTime {
		return nil, fmt.Errorf("cannot select a slot on the %s step", session.Step)
	}
	var selected *models.TimeSlot
	for i := range session.DateSlots {
		if session.DateSlots[i].ID == slotID {
			selected = &session.DateSlots[i]
			break
		}
	}
	if selected == nil {
		return nil, fmt.Errorf("slot %s is not among the fetched slots", slotID)
	}

	session.SelectedSlot = selected
	session.Step = models.StepConfirm
	if err := s.Store.Save(ctx, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back re-enters the prior step and discards the deeper selection. From the
// first step it is a no-op.
func (s *DefaultService) Back(ctx context.Context, id string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch session.Step {
	case models.StepConfirm:
		session.SelectedSlot = nil
		session.Step = models.StepSelectTime
	case models.StepSelectTime:
		session.SelectedSlot = nil
		session.DateSlots = nil
		session.SelectedDate = ""
		session.Step = models.StepSelectDate
	}
	if err := s.Store.Save(ctx, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm submits the booking. On success the wizard session is deleted; on
// failure it stays on the confirm step so the user can retry.
func (s *DefaultService) Confirm(ctx context.Context, token, id, notes string) (*models.Booking, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirm || session.SelectedSlot == nil {
		return nil, fmt.Errorf("no slot selected to confirm")
	}

	booking, err := s.Booking.CreateBooking(ctx, token, models.CreateBookingInput{
		PatientID:  session.PatientID,
		TimeSlotID: session.SelectedSlot.ID,
		Notes:      notes,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Store.Delete(ctx, id); err != nil {
		s.Logger.Warn("Failed to delete completed wizard session", zap.Error(err))
	}
	return booking, nil
}

// Cancel discards the wizard session.
func (s *DefaultService) Cancel(ctx context.Context, id string) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to cancel wizard session: %w", err)
	}
	return nil
}

// loadAvailableDates fetches slots for the session window and derives the
// sorted distinct set of dates that still have at least one open slot.
func (s *DefaultService) loadAvailableDates(ctx context.Context, token string, session *models.WizardSession) error {
	raw, err := s.Booking.ListSlots(ctx, token, session.TherapistID, session.WindowFrom, session.WindowTo)
	if err != nil {
		return fmt.Errorf("failed to fetch availability: %w", err)
	}
	seen := make(map[string]bool)
	var dates []string
	for _, r := range raw {
		slot := availability.FromBookingService(r)
		if slot.Open() && !seen[slot.Date] {
			seen[slot.Date] = true
			dates = append(dates, slot.Date)
		}
	}
	sort.Strings(dates)

	session.AvailableDates = dates
	session.SelectedDate = ""
	session.DateSlots = nil
	session.SelectedSlot = nil
	return nil
}
