package models

import "time"

// Booking statuses reported by the booking service.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
	BookingNoShow    = "no_show"
)

// Booking is a confirmed reservation linking a patient, a therapist and a
// time slot. The booking service owns its lifecycle; the front-end only
// renders what it reports.
type Booking struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patientId"`
	TherapistID   string    `json:"therapistId"`
	TimeSlotID    string    `json:"timeSlotId"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CancelReason  string    `json:"cancelReason,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	CancelledByID string    `json:"cancelledById,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateBookingInput is the confirm payload sent to the booking service.
type CreateBookingInput struct {
	PatientID  string `json:"patientId"`
	TimeSlotID string `json:"timeSlotId"`
	Notes      string `json:"notes,omitempty"`
}

// BookingWithTherapist pairs a booking with the resolved counterpart summary
// for dashboard rendering.
type BookingWithTherapist struct {
	Booking   Booking           `json:"booking"`
	Therapist *TherapistSummary `json:"therapist,omitempty"`
}
