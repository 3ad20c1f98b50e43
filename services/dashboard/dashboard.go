// File: services/dashboard/dashboard.go
package dashboard

import (
	"context"
	"sort"
	"sync"
	"time"

	"mindnest/models"
	"mindnest/services/availability"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// resolveWorkers bounds the per-item parallel map that resolves counterpart
// profiles after a booking list is known.
const resolveWorkers = 4

// BookingAPI is the slice of the booking service the dashboards read.
type BookingAPI interface {
	ListBookings(ctx context.Context, token, status string) ([]models.Booking, error)
}

// TherapistAPI resolves counterpart profiles and the therapist's client list.
type TherapistAPI interface {
	GetPublic(ctx context.Context, token, therapistID string) (*models.TherapistProfile, error)
	ListClients(ctx context.Context, token string) ([]models.ClientSummary, error)
}

// UsersAPI is the admin slice of the user service.
type UsersAPI interface {
	ListUsers(ctx context.Context, token string) ([]models.User, error)
}

// VerificationAPI is the admin slice of the therapist service.
type VerificationAPI interface {
	ListPendingVerification(ctx context.Context, token string) ([]models.TherapistProfile, error)
}

// PatientDashboard is the patient landing screen payload.
type PatientDashboard struct {
	Upcoming []models.BookingWithTherapist `json:"upcoming"`
	Past     []models.BookingWithTherapist `json:"past"`
}

// TherapistDashboard is the therapist landing screen payload.
type TherapistDashboard struct {
	TodaySlots []models.TimeSlot      `json:"todaySlots"`
	Summary    models.CalendarSummary `json:"summary"`
	Upcoming   []models.Booking       `json:"upcoming"`
	Clients    []models.ClientSummary `json:"clients"`
}

// PlatformStats is the admin overview aggregate, computed locally from the
// fetched lists.
type PlatformStats struct {
	TotalUsers           int `json:"totalUsers"`
	ActiveUsers          int `json:"activeUsers"`
	PendingVerifications int `json:"pendingVerifications"`
}

// AdminDashboard is the admin landing screen payload.
type AdminDashboard struct {
	Users             []models.User             `json:"users"`
	PendingTherapists []models.TherapistProfile `json:"pendingTherapists"`
	Stats             PlatformStats             `json:"stats"`
}

// Service aggregates upstream data into role-scoped dashboard payloads.
type Service interface {
	Patient(ctx context.Context, token string) (*PatientDashboard, error)
	Therapist(ctx context.Context, token, therapistID string) (*TherapistDashboard, error)
	Admin(ctx context.Context, token string) (*AdminDashboard, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Booking      BookingAPI
	Therapists   TherapistAPI
	Users        UsersAPI
	Verification VerificationAPI
	Availability availability.Service
	Logger       *zap.Logger
	Now          func() time.Time
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Patient fetches the booking list, splits it into upcoming and past, and
// resolves each booking's therapist summary with a bounded parallel map.
func (s *DefaultService) Patient(ctx context.Context, token string) (*PatientDashboard, error) {
	bookings, err := s.Booking.ListBookings(ctx, token, "")
	if err != nil {
		return nil, err
	}

	summaries := s.resolveTherapists(ctx, token, bookings)

	today := s.now().Format(dateLayout)
	dash := &PatientDashboard{
		Upcoming: []models.BookingWithTherapist{},
		Past:     []models.BookingWithTherapist{},
	}
	for _, b := range bookings {
		entry := models.BookingWithTherapist{Booking: b, Therapist: summaries[b.TherapistID]}
		if b.Status == models.BookingConfirmed && b.Date >= today {
			dash.Upcoming = append(dash.Upcoming, entry)
		} else {
			dash.Past = append(dash.Past, entry)
		}
	}
	sort.Slice(dash.Upcoming, func(i, j int) bool {
		return dash.Upcoming[i].Booking.Date < dash.Upcoming[j].Booking.Date
	})
	sort.Slice(dash.Past, func(i, j int) bool {
		return dash.Past[i].Booking.Date > dash.Past[j].Booking.Date
	})
	return dash, nil
}

// resolveTherapists maps distinct therapist ids to summaries. A failed lookup
// is logged and left nil; the screen still renders the booking row.
func (s *DefaultService) resolveTherapists(ctx context.Context, token string, bookings []models.Booking) map[string]*models.TherapistSummary {
	distinct := make(map[string]bool)
	for _, b := range bookings {
		distinct[b.TherapistID] = true
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		summaries = make(map[string]*models.TherapistSummary, len(distinct))
		sem       = make(chan struct{}, resolveWorkers)
	)
	for id := range distinct {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			profile, err := s.Therapists.GetPublic(ctx, token, id)
			if err != nil {
				s.Logger.Warn("Failed to resolve therapist profile", zap.String("therapistId", id), zap.Error(err))
				return
			}
			summary := &models.TherapistSummary{
				UserID:     profile.UserID,
				FullName:   profile.FirstName + " " + profile.LastName,
				Title:      profile.Title,
				HourlyRate: profile.HourlyRate,
				Verified:   profile.Verified,
			}
			for _, sp := range profile.Specializations {
				summary.Specializations = append(summary.Specializations, sp.Name)
			}
			mu.Lock()
			summaries[id] = summary
			mu.Unlock()
		}(id)
	}
	wg.Wait()
	return summaries
}

// Therapist issues the four independent screen fetches concurrently and joins
// them. The summary window covers the coming week.
func (s *DefaultService) Therapist(ctx context.Context, token, therapistID string) (*TherapistDashboard, error) {
	today := s.now().Format(dateLayout)
	weekOut := s.now().AddDate(0, 0, 7).Format(dateLayout)

	var (
		wg    sync.WaitGroup
		dash  TherapistDashboard
		errCh = make(chan error, 4)
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		slots, err := s.Availability.Slots(ctx, token, therapistID, today, today)
		if err != nil {
			errCh <- err
			return
		}
		dash.TodaySlots = slots
	}()
	go func() {
		defer wg.Done()
		summary, err := s.Availability.Summary(ctx, token, therapistID, today, weekOut)
		if err != nil {
			errCh <- err
			return
		}
		dash.Summary = *summary
	}()
	go func() {
		defer wg.Done()
		upcoming, err := s.Booking.ListBookings(ctx, token, models.BookingConfirmed)
		if err != nil {
			errCh <- err
			return
		}
		dash.Upcoming = upcoming
	}()
	go func() {
		defer wg.Done()
		clientList, err := s.Therapists.ListClients(ctx, token)
		if err != nil {
			errCh <- err
			return
		}
		dash.Clients = clientList
	}()
	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}
	return &dash, nil
}

// Admin fetches the user list and the verification queue concurrently and
// derives the platform stats locally.
func (s *DefaultService) Admin(ctx context.Context, token string) (*AdminDashboard, error) {
	var (
		wg    sync.WaitGroup
		dash  AdminDashboard
		errCh = make(chan error, 2)
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		users, err := s.Users.ListUsers(ctx, token)
		if err != nil {
			errCh <- err
			return
		}
		dash.Users = users
	}()
	go func() {
		defer wg.Done()
		pending, err := s.Verification.ListPendingVerification(ctx, token)
		if err != nil {
			errCh <- err
			return
		}
		dash.PendingTherapists = pending
	}()
	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}

	dash.Stats.TotalUsers = len(dash.Users)
	for _, u := range dash.Users {
		if u.IsActive {
			dash.Stats.ActiveUsers++
		}
	}
	dash.Stats.PendingVerifications = len(dash.PendingTherapists)
	return &dash, nil
}
