package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"mindnest/models"
	"mindnest/services/availability"

	"go.uber.org/zap"
)

type fakeBookingAPI struct {
	bookings []models.Booking
	err      error
}

func (f *fakeBookingAPI) ListBookings(ctx context.Context, token, status string) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	if status == "" {
		return f.bookings, nil
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeTherapistAPI struct {
	profiles map[string]*models.TherapistProfile
	clients  []models.ClientSummary
}

func (f *fakeTherapistAPI) GetPublic(ctx context.Context, token, therapistID string) (*models.TherapistProfile, error) {
	p, ok := f.profiles[therapistID]
	if !ok {
		return nil, errors.New("therapist not found")
	}
	return p, nil
}

func (f *fakeTherapistAPI) ListClients(ctx context.Context, token string) ([]models.ClientSummary, error) {
	return f.clients, nil
}

type fakeUsersAPI struct {
	users []models.User
	err   error
}

func (f *fakeUsersAPI) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

type fakeVerificationAPI struct {
	pending []models.TherapistProfile
}

func (f *fakeVerificationAPI) ListPendingVerification(ctx context.Context, token string) ([]models.TherapistProfile, error) {
	return f.pending, nil
}

type fakeAvailability struct {
	slots   []models.TimeSlot
	summary models.CalendarSummary
}

func (f *fakeAvailability) Templates(ctx context.Context, token string) ([]models.TimeSlotTemplate, error) {
	return nil, nil
}

func (f *fakeAvailability) SaveTemplate(ctx context.Context, token string, tpl models.TimeSlotTemplate) (*models.TimeSlotTemplate, error) {
	return &tpl, nil
}

func (f *fakeAvailability) DeleteTemplate(ctx context.Context, token, templateID string) error {
	return nil
}

func (f *fakeAvailability) Generate(ctx context.Context, token, templateID, from, to string) ([]models.TimeSlot, error) {
	return nil, nil
}

func (f *fakeAvailability) Slots(ctx context.Context, token, therapistID, from, to string) ([]models.TimeSlot, error) {
	return f.slots, nil
}

func (f *fakeAvailability) SetSlotStatus(ctx context.Context, token, slotID string, status models.SlotStatus) error {
	return nil
}

func (f *fakeAvailability) Summary(ctx context.Context, token, therapistID, from, to string) (*models.CalendarSummary, error) {
	s := f.summary
	return &s, nil
}

var _ availability.Service = (*fakeAvailability)(nil)

func fixedNow() time.Time {
	return time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
}

func TestPatientPartitionsAndSortsBookings(t *testing.T) {
	booking := &fakeBookingAPI{bookings: []models.Booking{
		{ID: "b1", TherapistID: "th-1", Date: "2024-06-20", Status: models.BookingConfirmed},
		{ID: "b2", TherapistID: "th-1", Date: "2024-06-12", Status: models.BookingConfirmed},
		{ID: "b3", TherapistID: "th-2", Date: "2024-06-01", Status: models.BookingCompleted},
		{ID: "b4", TherapistID: "th-1", Date: "2024-06-15", Status: models.BookingCancelled},
		{ID: "b5", TherapistID: "th-2", Date: "2024-05-20", Status: models.BookingCompleted},
	}}
	therapist := &fakeTherapistAPI{profiles: map[string]*models.TherapistProfile{
		"th-1": {UserID: "th-1", FirstName: "Ada", LastName: "Mwangi", Verified: true},
	}}
	svc := &DefaultService{
		Booking:    booking,
		Therapists: therapist,
		Logger:     zap.NewNop(),
		Now:        fixedNow,
	}

	dash, err := svc.Patient(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Patient failed: %v", err)
	}

	if len(dash.Upcoming) != 2 {
		t.Fatalf("expected 2 upcoming bookings, got %d", len(dash.Upcoming))
	}
	if dash.Upcoming[0].Booking.ID != "b2" || dash.Upcoming[1].Booking.ID != "b1" {
		t.Fatalf("expected upcoming sorted soonest first, got %s then %s",
			dash.Upcoming[0].Booking.ID, dash.Upcoming[1].Booking.ID)
	}
	if len(dash.Past) != 3 {
		t.Fatalf("expected 3 past bookings, got %d", len(dash.Past))
	}
	if dash.Past[0].Booking.ID != "b4" {
		t.Fatalf("expected past sorted most recent first, got %s", dash.Past[0].Booking.ID)
	}

	// th-1 resolves; th-2 fails and its rows still render without a summary.
	if dash.Upcoming[0].Therapist == nil || dash.Upcoming[0].Therapist.FullName != "Ada Mwangi" {
		t.Fatalf("expected a resolved therapist summary, got %+v", dash.Upcoming[0].Therapist)
	}
	if dash.Past[1].Therapist != nil {
		t.Fatal("expected an unresolvable therapist left nil")
	}
}

func TestTherapistJoinsFourFetches(t *testing.T) {
	booking := &fakeBookingAPI{bookings: []models.Booking{
		{ID: "b1", Date: "2024-06-12", Status: models.BookingConfirmed},
		{ID: "b2", Date: "2024-06-01", Status: models.BookingCompleted},
	}}
	therapist := &fakeTherapistAPI{clients: []models.ClientSummary{
		{UserID: "u-1", FullName: "Sam Otieno", SessionCount: 3},
	}}
	avail := &fakeAvailability{
		slots:   []models.TimeSlot{{ID: "s1", Date: "2024-06-10", Status: models.SlotAvailable}},
		summary: models.CalendarSummary{Total: 20, Booked: 5},
	}
	svc := &DefaultService{
		Booking:      booking,
		Therapists:   therapist,
		Availability: avail,
		Logger:       zap.NewNop(),
		Now:          fixedNow,
	}

	dash, err := svc.Therapist(context.Background(), "tok", "th-1")
	if err != nil {
		t.Fatalf("Therapist failed: %v", err)
	}
	if len(dash.TodaySlots) != 1 || dash.TodaySlots[0].ID != "s1" {
		t.Fatalf("unexpected today slots: %+v", dash.TodaySlots)
	}
	if dash.Summary.Total != 20 || dash.Summary.Booked != 5 {
		t.Fatalf("unexpected summary: %+v", dash.Summary)
	}
	if len(dash.Upcoming) != 1 || dash.Upcoming[0].ID != "b1" {
		t.Fatalf("expected only confirmed bookings, got %+v", dash.Upcoming)
	}
	if len(dash.Clients) != 1 {
		t.Fatalf("unexpected clients: %+v", dash.Clients)
	}
}

func TestAdminComputesStatsLocally(t *testing.T) {
	users := &fakeUsersAPI{users: []models.User{
		{ID: "u1", IsActive: true},
		{ID: "u2", IsActive: true},
		{ID: "u3", IsActive: false},
	}}
	verification := &fakeVerificationAPI{pending: []models.TherapistProfile{
		{UserID: "th-9"},
	}}
	svc := &DefaultService{
		Users:        users,
		Verification: verification,
		Logger:       zap.NewNop(),
		Now:          fixedNow,
	}

	dash, err := svc.Admin(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Admin failed: %v", err)
	}
	if dash.Stats.TotalUsers != 3 || dash.Stats.ActiveUsers != 2 || dash.Stats.PendingVerifications != 1 {
		t.Fatalf("unexpected stats: %+v", dash.Stats)
	}
}

func TestAdminPropagatesFetchErrors(t *testing.T) {
	svc := &DefaultService{
		Users:        &fakeUsersAPI{err: errors.New("user service down")},
		Verification: &fakeVerificationAPI{},
		Logger:       zap.NewNop(),
		Now:          fixedNow,
	}
	if _, err := svc.Admin(context.Background(), "tok"); err == nil {
		t.Fatal("expected the fetch error propagated")
	}
}
