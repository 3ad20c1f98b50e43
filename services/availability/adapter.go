// File: services/availability/adapter.go
package availability

import (
	"fmt"
	"strings"

	"mindnest/models"
)

// weekdaysByNumber follows the legacy therapist-service convention: 0 = Sunday.
var weekdaysByNumber = []models.Weekday{
	models.Sunday,
	models.Monday,
	models.Tuesday,
	models.Wednesday,
	models.Thursday,
	models.Friday,
	models.Saturday,
}

// WeekdayFromNumber translates the legacy numeric day-of-week.
func WeekdayFromNumber(n int) (models.Weekday, error) {
	if n < 0 || n >= len(weekdaysByNumber) {
		return "", fmt.Errorf("invalid day-of-week number: %d", n)
	}
	return weekdaysByNumber[n], nil
}

// WeekdayNumber translates a canonical weekday back to the legacy number.
func WeekdayNumber(d models.Weekday) (int, error) {
	for i, wd := range weekdaysByNumber {
		if wd == d {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday: %q", d)
}

// ParseWeekday normalizes a day name to the canonical representation.
func ParseWeekday(name string) (models.Weekday, error) {
	d := models.Weekday(strings.ToLower(strings.TrimSpace(name)))
	if _, err := WeekdayNumber(d); err != nil {
		return "", err
	}
	return d, nil
}

// FromLegacy converts a therapist-service slot (numeric day, status enum)
// into the canonical shape. Unrecognized statuses become blocked so the slot
// is never shown as bookable by mistake.
func FromLegacy(s models.LegacySlot) models.TimeSlot {
	var status models.SlotStatus
	switch s.Status {
	case "available":
		status = models.SlotAvailable
	case "booked":
		status = models.SlotBooked
	case "cancelled":
		status = models.SlotCancelled
	case "blocked":
		status = models.SlotBlocked
	default:
		status = models.SlotBlocked
	}
	return models.TimeSlot{
		ID:        s.ID,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Status:    status,
	}
}

// FromBookingService converts a booking-service slot (day name, boolean
// flags) into the canonical shape. An inactive slot reads as blocked.
func FromBookingService(s models.BookingServiceSlot) models.TimeSlot {
	status := models.SlotAvailable
	if !s.IsActive {
		status = models.SlotBlocked
	} else if s.IsBooked {
		status = models.SlotBooked
	}
	return models.TimeSlot{
		ID:          s.ID,
		TemplateID:  s.TemplateID,
		TherapistID: s.TherapistID,
		Date:        s.Date,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Status:      status,
	}
}

// FromBookingServiceAll converts a slot list.
func FromBookingServiceAll(in []models.BookingServiceSlot) []models.TimeSlot {
	out := make([]models.TimeSlot, 0, len(in))
	for _, s := range in {
		out = append(out, FromBookingService(s))
	}
	return out
}

// Summarize computes the calendar aggregate from a raw slot list, for
// deployments whose therapist service has no pre-aggregated endpoint.
func Summarize(slots []models.TimeSlot, from, to string) models.CalendarSummary {
	summary := models.CalendarSummary{From: from, To: to}
	for _, s := range slots {
		summary.Total++
		switch s.Status {
		case models.SlotAvailable:
			summary.Available++
		case models.SlotBooked:
			summary.Booked++
		case models.SlotBlocked:
			summary.Blocked++
		}
	}
	if bookable := summary.Available + summary.Booked; bookable > 0 {
		summary.Utilization = float64(summary.Booked) / float64(bookable) * 100
	}
	return summary
}
