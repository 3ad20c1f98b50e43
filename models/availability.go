package models

import "time"

// SlotStatus is the canonical status of a concrete time slot. The two upstream
// availability APIs disagree on representation (status enum vs. boolean
// flags); adapters in services/availability translate both into this one.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotBlocked   SlotStatus = "blocked"
	SlotCancelled SlotStatus = "cancelled"
)

// Weekday is the canonical day representation (lowercase English names, as
// the booking service speaks them).
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// TimeSlotTemplate is a therapist's recurring weekly availability rule.
// CRUD is entirely delegated to the booking service.
type TimeSlotTemplate struct {
	ID              string  `json:"id,omitempty"`
	TherapistID     string  `json:"therapistId"`
	Weekday         Weekday `json:"weekday"`
	StartTime       string  `json:"startTime"` // "09:00"
	EndTime         string  `json:"endTime"`   // "17:00"
	SessionDuration int     `json:"sessionDuration"` // minutes
	BreakDuration   int     `json:"breakDuration"`   // minutes
	IsActive        bool    `json:"isActive"`
}

// TimeSlot is a concrete bookable instance generated from a template for a
// specific date.
type TimeSlot struct {
	ID          string     `json:"id"`
	TemplateID  string     `json:"templateId,omitempty"`
	TherapistID string     `json:"therapistId"`
	Date        string     `json:"date"` // "2024-06-05"
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	Status      SlotStatus `json:"status"`
}

// Open reports whether the slot can still be booked.
func (s TimeSlot) Open() bool {
	return s.Status == SlotAvailable
}

// CalendarSummary is the aggregate the therapist dashboard shows. Some
// deployments return it pre-aggregated; otherwise it is computed from the raw
// slot list.
type CalendarSummary struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	Total       int     `json:"total"`
	Available   int     `json:"available"`
	Booked      int     `json:"booked"`
	Blocked     int     `json:"blocked"`
	Utilization float64 `json:"utilization"` // booked / (booked + available), percent
}

// LegacySlot is the therapist service's availability shape: day-of-week as a
// number (0 = Sunday) and a status enum.
type LegacySlot struct {
	ID        string    `json:"id"`
	DayOfWeek int       `json:"dayOfWeek"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Status    string    `json:"status"` // available | booked | cancelled | blocked
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// BookingServiceSlot is the booking service's slot shape: day name plus
// boolean isBooked/isActive flags.
type BookingServiceSlot struct {
	ID          string `json:"id"`
	TemplateID  string `json:"templateId,omitempty"`
	TherapistID string `json:"therapistId"`
	Day         string `json:"day"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsBooked    bool   `json:"isBooked"`
	IsActive    bool   `json:"isActive"`
}
