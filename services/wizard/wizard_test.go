package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"mindnest/models"

	"go.uber.org/zap"
)

type memStore struct {
	sessions map[string]models.WizardSession
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]models.WizardSession)}
}

func (m *memStore) Save(ctx context.Context, s models.WizardSession) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *memStore) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := s
	return &cp, nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

type fakeBooking struct {
	slots     []models.BookingServiceSlot
	listCalls [][2]string
	created   []models.CreateBookingInput
	createErr error
}

func (f *fakeBooking) ListSlots(ctx context.Context, token, therapistID, from, to string) ([]models.BookingServiceSlot, error) {
	f.listCalls = append(f.listCalls, [2]string{from, to})
	var out []models.BookingServiceSlot
	for _, s := range f.slots {
		if s.Date >= from && s.Date <= to {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeBooking) CreateBooking(ctx context.Context, token string, input models.CreateBookingInput) (*models.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, input)
	return &models.Booking{ID: "bk-1", TimeSlotID: input.TimeSlotID, Status: models.BookingConfirmed}, nil
}

func slot(id, date string, booked, active bool) models.BookingServiceSlot {
	return models.BookingServiceSlot{
		ID:          id,
		TherapistID: "th-1",
		Date:        date,
		StartTime:   "10:00",
		EndTime:     "11:00",
		IsBooked:    booked,
		IsActive:    active,
	}
}

func newTestService(booking *fakeBooking, store Store) *DefaultService {
	return &DefaultService{
		Booking: booking,
		Store:   store,
		Logger:  zap.NewNop(),
		Now: func() time.Time {
			return time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
		},
	}
}

func TestStartDerivesSortedOpenDates(t *testing.T) {
	booking := &fakeBooking{slots: []models.BookingServiceSlot{
		slot("s3", "2024-06-12", false, true),
		slot("s1", "2024-06-05", false, true),
		slot("s2", "2024-06-05", true, true),  // booked, date still open via s1
		slot("s4", "2024-06-20", true, true),  // booked only, date not open
		slot("s5", "2024-06-21", false, false), // inactive, date not open
		slot("s6", "2024-08-15", false, true), // outside the default window
	}}
	svc := newTestService(booking, newMemStore())

	s, err := svc.Start(context.Background(), "tok", "pat-1", "th-1")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.Step != models.StepSelectDate {
		t.Fatalf("expected step %q, got %q", models.StepSelectDate, s.Step)
	}
	if s.WindowFrom != "2024-06-01" || s.WindowTo != "2024-07-01" {
		t.Fatalf("unexpected window: %s .. %s", s.WindowFrom, s.WindowTo)
	}
	want := []string{"2024-06-05", "2024-06-12"}
	if len(s.AvailableDates) != len(want) {
		t.Fatalf("expected %d available dates, got %v", len(want), s.AvailableDates)
	}
	for i, d := range want {
		if s.AvailableDates[i] != d {
			t.Fatalf("expected dates %v, got %v", want, s.AvailableDates)
		}
	}
}

func TestSetWindowClampsStartToToday(t *testing.T) {
	booking := &fakeBooking{}
	svc := newTestService(booking, newMemStore())

	s, err := svc.Start(context.Background(), "tok", "pat-1", "th-1")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s, err = svc.SetWindow(context.Background(), "tok", s.ID, "2024-05-01", "2024-06-10")
	if err != nil {
		t.Fatalf("SetWindow failed: %v", err)
	}
	if s.WindowFrom != "2024-06-01" {
		t.Fatalf("expected start clamped to today, got %s", s.WindowFrom)
	}
	if s.WindowTo != "2024-06-10" {
		t.Fatalf("expected end untouched, got %s", s.WindowTo)
	}
}

func TestSetWindowClampsEndToStart(t *testing.T) {
	booking := &fakeBooking{}
	svc := newTestService(booking, newMemStore())

	s, err := svc.Start(context.Background(), "tok", "pat-1", "th-1")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s, err = svc.SetWindow(context.Background(), "tok", s.ID, "2024-06-10", "2024-06-03")
	if err != nil {
		t.Fatalf("SetWindow failed: %v", err)
	}
	if s.WindowFrom != "2024-06-10" || s.WindowTo != "2024-06-10" {
		t.Fatalf("expected collapsed window, got %s .. %s", s.WindowFrom, s.WindowTo)
	}
}

func TestSetWindowRejectedOffDateStep(t *testing.T) {
	booking := &fakeBooking{slots: []models.BookingServiceSlot{
		slot("s1", "2024-06-05", false, true),
	}}
	svc := newTestService(booking, newMemStore())

	s, err := svc.Start(context.Background(), "tok", "pat-1", "th-1")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := svc.SelectDate(context.Background(), "tok", s.ID, "2024-06-05"); err != nil {
		t.Fatalf("SelectDate failed: %v", err)
	}
	if _, err := svc.SetWindow(context.Background(), "tok", s.ID, "2024-06-01", "2024-06-10"); err == nil {
		t.Fatal("expected SetWindow to be rejected off the date step")
	}
}

func TestSelectDateFetchesSingleDayAndKeepsOpenSlots(t *testing.T) {
	booking := &fakeBooking{slots: []models.BookingServiceSlot{
		slot("s1", "2024-06-05", false, true),
		slot("s2", "2024-06-05", true, true),
		slot("s3", "2024-06-05", false, false),
	}}
	svc := newTestService(booking, newMemStore())

	s, err := svc.Start(context.Background(), "tok", "pat-1", "th-1")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s, err = svc.SelectDate(context.Background(), "tok", s.ID, "2024-06-05")
	if err != nil {
		t.Fatalf("SelectDate failed: %v", err)
	}

	last := booking.listCalls[len(booking.listCalls)-1]
	if last[0] != "2024-06-05" || last[1] != "2024-06-05" {
		t.Fatalf("expected a single-day fetch, got %v", last)
	}
	if s.Step != models.StepSelectTime {
		t.Fatalf("expected step %q, got %q", models.StepSelectTime, s.Step)
	}
	if len(s.DateSlots) != 1 || s.DateSlots[0].ID != "s1" {
		t.Fatalf("expected only the open slot, got %+v", s.DateSlots)
	}
}

func TestSelectDateRejectsUnavailableDate(t *testing.T) {
	booking := &fakeBooking{slots: []models.BookingServiceSlot{
		slot("s1", "2024-06-05", false, true),
	}}
	svc := newTestService(booking, newMemStore())

	s, err := svc.Start(context.Background(), "tok", "pat-1", "th-1")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := svc.SelectDate(context.Background(), "tok", s.ID, "2024-06-06"); err == nil {
		t.Fatal("expected an error for a date with no open slots")
	}
}

func TestBackDiscardsExactlyOneLevel(t *testing.T) {
	booking := &fakeBooking{slots: []models.BookingServiceSlot{
		slot("s1", "2024-06-05", false, true),
	}}
	svc := newTestService(booking, newMemStore())
	ctx := context.Background()

	s, err := svc.Start(ctx, "tok", "pat-1", "th-1")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := svc.SelectDate(ctx, "tok", s.ID, "2024-06-05"); err != nil {
		t.Fatalf("SelectDate failed: %v", err)
	}
	if _, err := svc.SelectSlot(ctx, s.ID, "s1"); err != nil {
		t.Fatalf("SelectSlot failed: %v", err)
	}

	s, err = svc.Back(ctx, s.ID)
	if err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if s.Step != models.StepSelectTime {
		t.Fatalf("expected step %q after one back, got %q", models.StepSelectTime, s.Step)
	}
	if s.SelectedSlot != nil {
		t.Fatal("expected the slot selection discarded")
	}
	if s.SelectedDate != "2024-06-05" || len(s.DateSlots) != 1 {
		t.Fatal("expected the date selection retained after one back")
	}

	s, err = svc.Back(ctx, s.ID)
	if err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if s.Step != models.StepSelectDate {
		t.Fatalf("expected step %q after two backs, got %q", models.StepSelectDate, s.Step)
	}
	if s.SelectedDate != "" || s.DateSlots != nil {
		t.Fatal("expected the date selection discarded after two backs")
	}

	// Back on the first step is a no-op.
	s, err = svc.Back(ctx, s.ID)
	if err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if s.Step != models.StepSelectDate {
		t.Fatalf("expected step unchanged, got %q", s.Step)
	}
}

func TestConfirmSubmitsVerbatimAndDeletesSession(t *testing.T) {
	booking := &fakeBooking{slots: []models.BookingServiceSlot{
		slot("s1", "2024-06-05", false, true),
	}}
	store := newMemStore()
	svc := newTestService(booking, store)
	ctx := context.Background()

	s, err := svc.Start(ctx, "tok", "pat-1", "th-1")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := svc.SelectDate(ctx, "tok", s.ID, "2024-06-05"); err != nil {
		t.Fatalf("SelectDate failed: %v", err)
	}
	if _, err := svc.SelectSlot(ctx, s.ID, "s1"); err != nil {
		t.Fatalf("SelectSlot failed: %v", err)
	}

	bk, err := svc.Confirm(ctx, "tok", s.ID, "first session, please be gentle")
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if bk.Status != models.BookingConfirmed {
		t.Fatalf("expected a confirmed booking, got %q", bk.Status)
	}
	if len(booking.created) != 1 {
		t.Fatalf("expected exactly one booking created, got %d", len(booking.created))
	}
	in := booking.created[0]
	if in.PatientID != "pat-1" || in.TimeSlotID != "s1" || in.Notes != "first session, please be gentle" {
		t.Fatalf("unexpected booking input: %+v", in)
	}
	if _, err := store.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatal("expected the wizard session deleted after confirmation")
	}
}

func TestConfirmFailureLeavesSessionOnConfirmStep(t *testing.T) {
	booking := &fakeBooking{slots: []models.BookingServiceSlot{
		slot("s1", "2024-06-05", false, true),
	}}
	store := newMemStore()
	svc := newTestService(booking, store)
	ctx := context.Background()

	s, err := svc.Start(ctx, "tok", "pat-1", "th-1")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := svc.SelectDate(ctx, "tok", s.ID, "2024-06-05"); err != nil {
		t.Fatalf("SelectDate failed: %v", err)
	}
	if _, err := svc.SelectSlot(ctx, s.ID, "s1"); err != nil {
		t.Fatalf("SelectSlot failed: %v", err)
	}

	booking.createErr = errors.New("slot already taken")
	if _, err := svc.Confirm(ctx, "tok", s.ID, ""); err == nil {
		t.Fatal("expected Confirm to fail")
	}

	kept, err := store.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("expected the session retained: %v", err)
	}
	if kept.Step != models.StepConfirm || kept.SelectedSlot == nil {
		t.Fatalf("expected the session still on the confirm step, got %+v", kept)
	}
}

func TestConfirmRequiresSelectedSlot(t *testing.T) {
	booking := &fakeBooking{slots: []models.BookingServiceSlot{
		slot("s1", "2024-06-05", false, true),
	}}
	svc := newTestService(booking, newMemStore())

	s, err := svc.Start(context.Background(), "tok", "pat-1", "th-1")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := svc.Confirm(context.Background(), "tok", s.ID, ""); err == nil {
		t.Fatal("expected Confirm rejected before a slot is selected")
	}
}
